// internal/handlers/server.go
package handlers

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nahtanPNG/spy-game-backend/internal/room"
)

// GameServer is the transport layer around the room registry. It tracks live
// WebSocket connections per room so registry mutations fan out to every member.
type GameServer struct {
	Registry *room.Registry
	Logger   *logrus.Logger
	Origins  []string

	mu    sync.Mutex
	rooms map[string]map[string]*clientConn // room code -> connectionID -> conn
}

// NewGameServer wires a transport layer over the given registry.
func NewGameServer(registry *room.Registry, logger *logrus.Logger, origins []string) *GameServer {
	return &GameServer{
		Registry: registry,
		Logger:   logger,
		Origins:  origins,
		rooms:    make(map[string]map[string]*clientConn),
	}
}

// clientConn wraps a single client's live connection. Outgoing messages go
// through OutChan so the write pump owns all writes to the socket.
type clientConn struct {
	ID       string
	RoomCode string
	Cancel   func()
	OutChan  chan map[string]interface{}
}

// write pushes a message onto the connection's OutChan non-blockingly. A full
// or closed channel drops the message rather than stalling the caller.
func (c *clientConn) write(logger *logrus.Logger, msg map[string]interface{}) {
	select {
	case c.OutChan <- msg:
	default:
		msgType, _ := msg["type"].(string)
		logger.WithFields(logrus.Fields{
			"connection": c.ID,
			"msgType":    msgType,
		}).Warn("outgoing channel full, dropped message")
	}
}

// writeError is a convenience to send an error object to one client.
func (c *clientConn) writeError(logger *logrus.Logger, msg string) {
	c.write(logger, map[string]interface{}{
		"type":    "error",
		"message": msg,
	})
}

// track binds a connection to a room so it receives that room's broadcasts.
func (s *GameServer) track(code string, conn *clientConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rooms[code] == nil {
		s.rooms[code] = make(map[string]*clientConn)
	}
	s.rooms[code][conn.ID] = conn
	conn.RoomCode = code
}

// untrack removes a connection from its room's broadcast set.
func (s *GameServer) untrack(code string, conn *clientConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if members, ok := s.rooms[code]; ok {
		delete(members, conn.ID)
		if len(members) == 0 {
			delete(s.rooms, code)
		}
	}
	conn.RoomCode = ""
}

// broadcast sends a message to every live connection in the room.
func (s *GameServer) broadcast(code string, msg map[string]interface{}) {
	s.mu.Lock()
	conns := make([]*clientConn, 0, len(s.rooms[code]))
	for _, c := range s.rooms[code] {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		c.write(s.Logger, msg)
	}
}

// broadcastOthers sends a message to everyone in the room except one connection.
func (s *GameServer) broadcastOthers(code, exceptID string, msg map[string]interface{}) {
	s.mu.Lock()
	conns := make([]*clientConn, 0, len(s.rooms[code]))
	for id, c := range s.rooms[code] {
		if id != exceptID {
			conns = append(conns, c)
		}
	}
	s.mu.Unlock()

	for _, c := range conns {
		c.write(s.Logger, msg)
	}
}
