package room

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nahtanPNG/spy-game-backend/internal/models"
)

// JoinRoom seats a player in the room identified by code, creating the room if
// the caller is joining as host. Non-host joins into a missing room fail with
// ErrRoomNotFound; joins into a started, full, or name-colliding room fail with
// the corresponding error and leave the room untouched.
func (reg *Registry) JoinRoom(code, name, connectionID string, isHost bool) (*models.Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.store.Get(code)
	if !ok {
		if !isHost {
			return nil, ErrRoomNotFound
		}
		host := models.NewPlayer(name, connectionID, true)
		r = models.NewRoom(code, host, time.Now())
		reg.store.Set(code, r)
		reg.logger.WithFields(logrus.Fields{
			"room": code,
			"host": name,
		}).Info("room created")
		return r, nil
	}

	if r.Status != models.StatusWaiting {
		return nil, ErrGameAlreadyStarted
	}
	if len(r.Players) >= r.MaxPlayers {
		return nil, ErrRoomFull
	}
	if r.HasName(name) {
		return nil, ErrNameTaken
	}

	r.Players = append(r.Players, models.NewPlayer(name, connectionID, false))
	reg.store.Set(code, r)

	reg.logger.WithFields(logrus.Fields{
		"room":    code,
		"player":  name,
		"players": len(r.Players),
	}).Info("player joined")
	return r, nil
}

// LeaveRoom removes the player bound to connectionID from the room. It returns
// the updated room and the removed player; either may be nil when the room or
// player does not exist. Deleting the last player deletes the room. If the host
// leaves, the first remaining player in seat order is promoted.
func (reg *Registry) LeaveRoom(code, connectionID string) (*models.Room, *models.Player) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.store.Get(code)
	if !ok {
		return nil, nil
	}

	idx := -1
	for i, p := range r.Players {
		if p.ConnectionID == connectionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return r, nil
	}

	removed := r.Players[idx]
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)

	if len(r.Players) == 0 {
		reg.store.Delete(code)
		reg.logger.WithField("room", code).Info("room deleted, no players left")
		return nil, removed
	}

	if removed.IsHost {
		r.Players[0].IsHost = true
		reg.logger.WithFields(logrus.Fields{
			"room": code,
			"host": r.Players[0].Name,
		}).Info("host reassigned")
	}

	reg.store.Set(code, r)
	reg.logger.WithFields(logrus.Fields{
		"room":    code,
		"player":  removed.Name,
		"players": len(r.Players),
	}).Info("player left")
	return r, removed
}
