package room

import "errors"

// Typed failures returned by registry operations. Every failure leaves the room
// exactly as it was before the call; the transport layer decides whether to
// surface the specific kind or collapse it into a generic message.
var (
	// ErrRoomNotFound is returned when no room exists for the given code.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomFull is returned when a join would exceed the room's seat limit.
	ErrRoomFull = errors.New("room is full")

	// ErrGameAlreadyStarted is returned when joining a room that is no longer waiting.
	ErrGameAlreadyStarted = errors.New("game already started")

	// ErrAlreadyStarted is returned when starting a room that is no longer waiting.
	ErrAlreadyStarted = errors.New("game already in progress")

	// ErrNameTaken is returned when the requested name is already used in the room
	// (names are compared case-insensitively).
	ErrNameTaken = errors.New("player name already taken")

	// ErrNotHost is returned when a non-host connection tries a host-only operation.
	ErrNotHost = errors.New("requester is not the room host")

	// ErrInsufficientPlayers is returned when a game is started with fewer than
	// MinPlayers seated.
	ErrInsufficientPlayers = errors.New("not enough players to start")

	// ErrPlayerNotFound is returned when no player matches the given connection.
	ErrPlayerNotFound = errors.New("player not found")
)
