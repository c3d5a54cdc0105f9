package room

import (
	"github.com/sirupsen/logrus"

	"github.com/nahtanPNG/spy-game-backend/internal/models"
)

// StartGame begins a round in a waiting room. Only the host's connection may
// start, at least MinPlayers must be seated, and the room must still be
// waiting. On success roles are dealt: one uniformly drawn spy, everyone else
// holding the same uniformly drawn location.
func (reg *Registry) StartGame(code, connectionID string) (*models.Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.store.Get(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	requester := r.PlayerByConnection(connectionID)
	if requester == nil || !requester.IsHost {
		return nil, ErrNotHost
	}
	if len(r.Players) < MinPlayers {
		return nil, ErrInsufficientPlayers
	}
	if r.Status != models.StatusWaiting {
		return nil, ErrAlreadyStarted
	}

	reg.assignRoles(r)
	reg.logger.WithFields(logrus.Fields{
		"room":     code,
		"location": r.Location,
		"players":  len(r.Players),
	}).Info("game started")
	return r, nil
}

// RestartGame re-deals a room that already played: same preconditions as
// StartGame except the room may be in progress or finished. A fresh location
// and spy are drawn.
func (reg *Registry) RestartGame(code, connectionID string) (*models.Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.store.Get(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	requester := r.PlayerByConnection(connectionID)
	if requester == nil || !requester.IsHost {
		return nil, ErrNotHost
	}
	if len(r.Players) < MinPlayers {
		return nil, ErrInsufficientPlayers
	}

	reg.assignRoles(r)
	reg.logger.WithFields(logrus.Fields{
		"room":     code,
		"location": r.Location,
	}).Info("game restarted")
	return r, nil
}

// RevealCard flips the card of the player bound to connectionID face up. It is
// idempotent: revealing twice is the same as revealing once. Returns nils or a
// nil player when the room or player is missing.
func (reg *Registry) RevealCard(code, connectionID string) (*models.Room, *models.Player) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.store.Get(code)
	if !ok {
		return nil, nil
	}
	p := r.PlayerByConnection(connectionID)
	if p == nil {
		return r, nil
	}

	p.CardRevealed = true
	reg.store.Set(code, r)
	reg.logger.WithFields(logrus.Fields{
		"room":   code,
		"player": p.Name,
	}).Debug("card revealed")
	return r, p
}

// assignRoles runs the role-assignment procedure: draw a location from the
// catalog, draw one player as the spy, deal everyone else the location card,
// and move the room into progress. Caller must hold reg.mu.
func (reg *Registry) assignRoles(r *models.Room) {
	location := reg.catalog[reg.rng.Intn(len(reg.catalog))]
	spyIdx := reg.rng.Intn(len(r.Players))

	for i, p := range r.Players {
		if i == spyIdx {
			p.Card = models.SpyCard()
		} else {
			p.Card = models.LocationCard(location)
		}
		p.CardRevealed = false
	}

	r.Location = location
	r.SpyPlayerID = r.Players[spyIdx].ID
	r.Status = models.StatusInProgress
	reg.store.Set(r.Code, r)
}
