// internal/handlers/status.go
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nahtanPNG/spy-game-backend/internal/room"
)

// IndexHandler reports that the service is up along with a stats snapshot.
func IndexHandler(registry *room.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":   "spy game server is running",
			"status":    "online",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"stats":     registry.Stats(),
		})
	}
}

// HealthHandler is a minimal liveness probe.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
