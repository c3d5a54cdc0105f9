// internal/handlers/ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nahtanPNG/spy-game-backend/internal/middleware"
	"github.com/nahtanPNG/spy-game-backend/internal/room"
)

// clientMessage is the envelope every client event arrives in. Code names the
// room the event targets; Name and IsHost only matter for join_room.
type clientMessage struct {
	Type   string `json:"type"`
	Code   string `json:"code"`
	Name   string `json:"name,omitempty"`
	IsHost bool   `json:"isHost,omitempty"`
}

// WSHandler upgrades the request and runs the connection's read loop. Each
// connection gets a fresh UUID as its identity; that UUID is the connectionId
// the registry maps to a player.
func WSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: gs.Origins,
		})
		if err != nil {
			logger.Warnf("websocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler finished")

		connID := uuid.NewString()
		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		conn := &clientConn{
			ID:      connID,
			Cancel:  cancel,
			OutChan: make(chan map[string]interface{}, 16),
		}

		middleware.LogWebSocketConnect(logger, r.RemoteAddr, connID)

		go writePump(ctx, c, conn, logger)
		readErr := readPump(ctx, c, gs, conn, logger)

		// A dropped connection counts as leaving: remove the player from
		// whatever room the connection was seated in.
		if conn.RoomCode != "" {
			gs.handleLeave(conn, conn.RoomCode)
		}
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, connID, readErr)

		c.Close(websocket.StatusNormalClosure, "bye")
	}
}

// readPump handles incoming messages until the connection closes or errors.
func readPump(ctx context.Context, c *websocket.Conn, gs *GameServer, conn *clientConn, logger *logrus.Logger) error {
	for {
		typ, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				return nil
			}
			if strings.Contains(err.Error(), "context canceled") {
				return nil
			}
			return err
		}
		if typ != websocket.MessageText {
			continue
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.WithField("connection", conn.ID).Warnf("invalid json: %v", err)
			conn.writeError(logger, "invalid message format")
			continue
		}

		gs.dispatch(conn, msg)
	}
}

// writePump owns all writes to the socket: queued messages plus a periodic
// ping to keep the connection alive.
func writePump(ctx context.Context, c *websocket.Conn, conn *clientConn, logger *logrus.Logger) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-conn.OutChan:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			data, err := json.Marshal(msg)
			if err == nil {
				err = c.Write(writeCtx, websocket.MessageText, data)
			}
			cancel()
			if err != nil {
				logger.WithField("connection", conn.ID).Debugf("write failed: %v", err)
				return
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := c.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}
		}
	}
}

// dispatch routes one client event to the matching registry operation.
func (s *GameServer) dispatch(conn *clientConn, msg clientMessage) {
	switch msg.Type {
	case "join_room":
		s.handleJoin(conn, msg)
	case "start_game":
		s.handleStart(conn, msg.Code)
	case "restart_game":
		s.handleRestart(conn, msg.Code)
	case "reveal_card":
		s.handleReveal(conn, msg.Code)
	case "leave_room":
		s.handleLeave(conn, msg.Code)
	default:
		conn.writeError(s.Logger, "unknown message type")
	}
}

func (s *GameServer) handleJoin(conn *clientConn, msg clientMessage) {
	if msg.Code == "" || msg.Name == "" {
		conn.writeError(s.Logger, "code and name are required")
		return
	}

	r, err := s.Registry.JoinRoom(msg.Code, msg.Name, conn.ID, msg.IsHost)
	if err != nil {
		conn.writeError(s.Logger, joinErrorMessage(err))
		return
	}

	s.track(msg.Code, conn)

	s.broadcast(msg.Code, map[string]interface{}{
		"type": "room_updated",
		"room": r,
	})
	if p := r.PlayerByConnection(conn.ID); p != nil {
		s.broadcastOthers(msg.Code, conn.ID, map[string]interface{}{
			"type":   "player_joined",
			"player": p,
		})
	}
}

func (s *GameServer) handleLeave(conn *clientConn, code string) {
	r, removed := s.Registry.LeaveRoom(code, conn.ID)
	s.untrack(code, conn)

	if removed == nil {
		return
	}
	if r != nil {
		s.broadcast(code, map[string]interface{}{
			"type":     "player_left",
			"playerId": removed.ID,
		})
		s.broadcast(code, map[string]interface{}{
			"type": "room_updated",
			"room": r,
		})
	}
}

func (s *GameServer) handleStart(conn *clientConn, code string) {
	r, err := s.Registry.StartGame(code, conn.ID)
	if err != nil {
		conn.writeError(s.Logger, err.Error())
		return
	}
	s.broadcast(code, map[string]interface{}{
		"type": "game_started",
		"room": r,
	})
	s.broadcast(code, map[string]interface{}{
		"type": "room_updated",
		"room": r,
	})
}

func (s *GameServer) handleRestart(conn *clientConn, code string) {
	r, err := s.Registry.RestartGame(code, conn.ID)
	if err != nil {
		conn.writeError(s.Logger, err.Error())
		return
	}
	s.broadcast(code, map[string]interface{}{
		"type": "game_restarted",
		"room": r,
	})
	s.broadcast(code, map[string]interface{}{
		"type": "room_updated",
		"room": r,
	})
}

func (s *GameServer) handleReveal(conn *clientConn, code string) {
	r, p := s.Registry.RevealCard(code, conn.ID)
	if p == nil {
		// Preserve the distinction between a missing room and a missing player
		// even though both surface as an error to the client.
		if r == nil {
			conn.writeError(s.Logger, room.ErrRoomNotFound.Error())
		} else {
			conn.writeError(s.Logger, room.ErrPlayerNotFound.Error())
		}
		return
	}
	s.broadcast(code, map[string]interface{}{
		"type":     "card_revealed",
		"playerId": p.ID,
	})
	s.broadcast(code, map[string]interface{}{
		"type": "room_updated",
		"room": r,
	})
}

// joinErrorMessage maps join failures to user-facing text. The registry error
// kinds stay distinct; only the wording is presentation.
func joinErrorMessage(err error) string {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return "room not found, check the code"
	case errors.Is(err, room.ErrGameAlreadyStarted):
		return "the game in this room has already started"
	case errors.Is(err, room.ErrRoomFull):
		return "this room is full"
	case errors.Is(err, room.ErrNameTaken):
		return "that name is already taken, try another"
	default:
		return err.Error()
	}
}
