package models

import (
	"strings"
	"time"
)

// RoomStatus is the lifecycle state of a room.
type RoomStatus string

const (
	StatusWaiting    RoomStatus = "waiting"
	StatusInProgress RoomStatus = "in_progress"
	StatusFinished   RoomStatus = "finished"
)

// MaxPlayers is the seat limit for every room.
const MaxPlayers = 15

// Room is a named, bounded group of players sharing one game session. Player
// order is significant: when the host leaves, the first remaining player is
// promoted. The room code is the registry key and never changes.
type Room struct {
	Code        string     `json:"code"`
	Players     []*Player  `json:"players"`
	Location    string     `json:"location"`
	SpyPlayerID string     `json:"spyPlayerId"`
	Status      RoomStatus `json:"status"`
	MaxPlayers  int        `json:"maxPlayers"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewRoom creates a waiting room containing only its host.
func NewRoom(code string, host *Player, now time.Time) *Room {
	return &Room{
		Code:       code,
		Players:    []*Player{host},
		Status:     StatusWaiting,
		MaxPlayers: MaxPlayers,
		CreatedAt:  now,
	}
}

// PlayerByConnection returns the player bound to the given connection, or nil.
func (r *Room) PlayerByConnection(connectionID string) *Player {
	for _, p := range r.Players {
		if p.ConnectionID == connectionID {
			return p
		}
	}
	return nil
}

// HasName reports whether any seated player already uses name, compared
// case-insensitively.
func (r *Room) HasName(name string) bool {
	for _, p := range r.Players {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

// Host returns the current host, or nil for an empty room.
func (r *Room) Host() *Player {
	for _, p := range r.Players {
		if p.IsHost {
			return p
		}
	}
	return nil
}

// Stats is the point-in-time aggregate the registry reports over all rooms.
type Stats struct {
	TotalRooms      int `json:"totalRooms"`
	RoomsWaiting    int `json:"roomsWaiting"`
	RoomsInProgress int `json:"roomsInProgress"`
	TotalPlayers    int `json:"totalPlayers"`
}
