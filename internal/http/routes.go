package http

import (
	"rps_server/internal/events"
	"rps_server/internal/http/handlers"
	"rps_server/internal/http/middleware"
	"rps_server/internal/repository"
	"rps_server/internal/room"
	"rps_server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"
)

// RegisterRoutes wires the room core onto the router: Redis as the
// room store and event channel, Postgres for identities and round
// history.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, rdb *redis.Client, version string) {
	roomStore := store.NewRedisStore(rdb)
	publisher := events.NewRedisPublisher(rdb)
	players := repository.NewPlayerRepository(db)
	history := repository.NewRoundHistoryRepository(db)

	manager := room.NewManager(roomStore, players, publisher)
	resolver := room.NewResolver(roomStore, history, publisher)

	h := handlers.NewHandler(manager, resolver, history)
	healthHandler := handlers.NewHealthHandler(db, rdb, version)

	// Health checks
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Metrics())
	registerAPIRoutes(v1, h)

	// Legacy /api routes (kept for older clients)
	api := r.Group("/api")
	api.Use(middleware.Metrics())
	api.GET("/health", healthHandler.Health)
	registerAPIRoutes(api, h)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	api.POST("/rooms", h.CreateRoom)
	api.GET("/rooms/:roomId", h.GetRoom)
	api.POST("/rooms/:roomId/join", h.JoinRoom)
	api.PUT("/rooms/:roomId/move", h.SubmitMove)
	api.POST("/rooms/:roomId/reset", h.ResetRound)
	api.GET("/rooms/:roomId/history", h.RoundHistory)
}
