package models

import "github.com/google/uuid"

// Player is one seated member of a room. ConnectionID ties the player to a single
// live transport connection; at most one player per connection.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Card         Card   `json:"card"`
	CardRevealed bool   `json:"cardRevealed"`
	IsHost       bool   `json:"isHost"`
	ConnectionID string `json:"-"`
}

// NewPlayer creates a player with a fresh UUID and an unassigned card.
func NewPlayer(name, connectionID string, isHost bool) *Player {
	return &Player{
		ID:           uuid.NewString(),
		Name:         name,
		Card:         UnassignedCard(),
		CardRevealed: false,
		IsHost:       isHost,
		ConnectionID: connectionID,
	}
}
