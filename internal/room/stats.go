package room

import "github.com/nahtanPNG/spy-game-backend/internal/models"

// Stats scans the store and aggregates room and player counts. The scan is
// snapshot-consistent, not transactional: counts reflect one pass over the
// rooms held under the registry lock.
func (reg *Registry) Stats() models.Stats {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	var stats models.Stats
	for _, r := range reg.store.List() {
		stats.TotalRooms++
		stats.TotalPlayers += len(r.Players)
		switch r.Status {
		case models.StatusWaiting:
			stats.RoomsWaiting++
		case models.StatusInProgress:
			stats.RoomsInProgress++
		}
	}
	return stats
}
