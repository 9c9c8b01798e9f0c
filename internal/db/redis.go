package db

import (
	"context"
	"time"

	"rps_server/internal/logger"

	redis "github.com/redis/go-redis/v9"
)

// ConnectRedis opens the Redis client backing the room store.
// Unreachable Redis at startup is fatal: the service cannot hold any
// room state without it.
func ConnectRedis(addr, password string, dbIndex int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbIndex,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to ping redis", "addr", addr, "error", err)
	}

	logger.Info("redis connected", "addr", addr)
	return client
}
