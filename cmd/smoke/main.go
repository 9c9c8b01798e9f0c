package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// Plays one full round against a running server: create, join, two
// moves, check the result, reset.
func main() {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	base := fmt.Sprintf("http://127.0.0.1:%s/api/v1", port)

	client := &http.Client{Timeout: 5 * time.Second}

	created := request(client, http.MethodPost, base+"/rooms", map[string]any{
		"ownerName": "smokeA",
	})
	roomID, _ := created["roomId"].(string)
	if roomID == "" {
		log.Fatalf("create: no roomId in response: %v", created)
	}
	log.Printf("created room %s", roomID)

	request(client, http.MethodPost, base+"/rooms/"+roomID+"/join", map[string]any{
		"guestName": "smokeB",
	})
	log.Printf("guest joined")

	first := request(client, http.MethodPut, base+"/rooms/"+roomID+"/move", map[string]any{
		"playerNumber": 1,
		"move":         "piedra",
	})
	if first["status"] != "awaiting_opponent" {
		log.Fatalf("first move: expected awaiting_opponent, got %v", first["status"])
	}

	second := request(client, http.MethodPut, base+"/rooms/"+roomID+"/move", map[string]any{
		"playerNumber": 2,
		"move":         "tijera",
	})
	if second["status"] != "game_over" || second["result"] != "player1Wins" {
		log.Fatalf("second move: expected game_over/player1Wins, got %v/%v", second["status"], second["result"])
	}
	log.Printf("round resolved: %v", second["result"])

	request(client, http.MethodPost, base+"/rooms/"+roomID+"/reset", nil)
	log.Printf("round reset")

	log.Println("smoke test finished")
}

func request(client *http.Client, method, url string, body map[string]any) map[string]any {
	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			log.Fatalf("marshal %s: %v", url, err)
		}
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		log.Fatalf("build %s %s: %v", method, url, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var obj map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		log.Fatalf("decode %s %s: %v", method, url, err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("%s %s: status %d: %v", method, url, resp.StatusCode, obj)
	}
	return obj
}
