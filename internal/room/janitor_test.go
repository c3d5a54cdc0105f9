// internal/room/janitor_test.go
package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepExpiredRemovesOldRooms(t *testing.T) {
	reg := newTestRegistry(t)
	seatPlayers(t, reg, "OLD1", "Alice")
	seatPlayers(t, reg, "NEW1", "Bob")

	created := reg.GetRoom("OLD1").CreatedAt
	reg.GetRoom("OLD1").CreatedAt = created.Add(-25 * time.Hour)

	count := reg.SweepExpired(time.Now())
	assert.Equal(t, 1, count)
	assert.Nil(t, reg.GetRoom("OLD1"))
	assert.NotNil(t, reg.GetRoom("NEW1"))
}

func TestSweepExpiredIgnoresActivity(t *testing.T) {
	// Expiry is anchored to creation time only: a join one hour after creation
	// does not extend the room's life.
	reg := newTestRegistry(t)
	created := time.Now()
	seatPlayers(t, reg, "ABCD", "Alice")
	reg.GetRoom("ABCD").CreatedAt = created

	_, err := reg.JoinRoom("ABCD", "Bob", connFor("Bob"), false)
	require.NoError(t, err)

	count := reg.SweepExpired(created.Add(25 * time.Hour))
	assert.Equal(t, 1, count)
	assert.Nil(t, reg.GetRoom("ABCD"))
}

func TestSweepExpiredKeepsRoomsInsideWindow(t *testing.T) {
	reg := newTestRegistry(t)
	seatPlayers(t, reg, "ABCD", "Alice")

	count := reg.SweepExpired(time.Now().Add(23 * time.Hour))
	assert.Equal(t, 0, count)
	assert.NotNil(t, reg.GetRoom("ABCD"))
}

func TestSweepHonorsConfiguredRetention(t *testing.T) {
	reg := newTestRegistry(t)
	reg.Retention = time.Hour
	seatPlayers(t, reg, "ABCD", "Alice")

	count := reg.SweepExpired(time.Now().Add(2 * time.Hour))
	assert.Equal(t, 1, count)
}
