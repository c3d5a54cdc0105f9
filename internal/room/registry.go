package room

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nahtanPNG/spy-game-backend/internal/models"
)

const (
	// MinPlayers is the minimum number of seated players required to start a game.
	MinPlayers = 3

	// DefaultRetention is how long a room lives after creation before the janitor
	// deletes it. The window is anchored to creation time only, not activity.
	DefaultRetention = 24 * time.Hour
)

// Rand is the uniform draw used for location and spy selection. *rand.Rand
// satisfies it; tests inject a seeded source to assert exact picks.
type Rand interface {
	Intn(n int) int
}

// Registry owns every active room and enforces membership, host and lifecycle
// rules over them. All operations serialize on a registry-wide mutex: each one
// is a read-modify-write on a room value, so without exclusion concurrent joins
// could overfill a room or concurrent leaves could promote two hosts.
//
// The registry is an explicit instance. Construct one in main (or per test) and
// hand it to the transport layer; there is no package-level singleton.
type Registry struct {
	mu        sync.Mutex
	store     *Store
	catalog   []string
	rng       Rand
	Retention time.Duration
	logger    *logrus.Logger
}

// New creates a registry over the given location catalog, seeding its own
// non-cryptographic random source.
func New(catalog []string, logger *logrus.Logger) *Registry {
	return NewWithRand(catalog, logger, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a registry with an injected random source.
func NewWithRand(catalog []string, logger *logrus.Logger, rng Rand) *Registry {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Registry{
		store:     NewStore(),
		catalog:   catalog,
		rng:       rng,
		Retention: DefaultRetention,
		logger:    logger,
	}
}

// GetRoom returns the room for code, or nil if none exists.
func (reg *Registry) GetRoom(code string) *models.Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	r, ok := reg.store.Get(code)
	if !ok {
		return nil
	}
	return r
}

// GetPlayerByConnection returns the player bound to connectionID in the given
// room, or nil if the room or player does not exist.
func (reg *Registry) GetPlayerByConnection(code, connectionID string) *models.Player {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	r, ok := reg.store.Get(code)
	if !ok {
		return nil
	}
	return r.PlayerByConnection(connectionID)
}
