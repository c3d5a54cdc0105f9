// internal/room/lifecycle_test.go
package room

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahtanPNG/spy-game-backend/internal/models"
)

// requireRolesDealt checks the in-progress invariant: exactly one spy, everyone
// else holding the identical location card, spyPlayerId pointing at the spy.
func requireRolesDealt(t *testing.T, r *models.Room) {
	t.Helper()
	require.Equal(t, models.StatusInProgress, r.Status)
	require.Contains(t, testCatalog, r.Location)

	spies := 0
	for _, p := range r.Players {
		require.False(t, p.CardRevealed)
		if p.Card.IsSpy() {
			spies++
			assert.Equal(t, r.SpyPlayerID, p.ID)
		} else {
			require.Equal(t, models.CardLocation, p.Card.Kind)
			assert.Equal(t, r.Location, p.Card.Location)
		}
	}
	require.Equal(t, 1, spies, "exactly one spy expected")
}

func TestStartGameDealsRoles(t *testing.T) {
	reg := newTestRegistry(t)
	seatPlayers(t, reg, "ABCD", "Alice", "Bob", "Cara")

	r, err := reg.StartGame("ABCD", connFor("Alice"))
	require.NoError(t, err)
	requireRolesDealt(t, r)
	requireInvariants(t, r)
}

func TestStartGameExactDraws(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	// First draw picks the location index, second picks the spy index.
	reg := NewWithRand(testCatalog, logger, &scriptedRand{draws: []int{2, 1}})
	seatPlayers(t, reg, "ABCD", "Alice", "Bob", "Cara")

	r, err := reg.StartGame("ABCD", connFor("Alice"))
	require.NoError(t, err)

	assert.Equal(t, "Hospital", r.Location)
	assert.Equal(t, r.Players[1].ID, r.SpyPlayerID)
	assert.True(t, r.Players[1].Card.IsSpy())
	assert.Equal(t, "Hospital", r.Players[0].Card.Location)
	assert.Equal(t, "Hospital", r.Players[2].Card.Location)
}

func TestStartGameMissingRoom(t *testing.T) {
	reg := newTestRegistry(t)
	_, err := reg.StartGame("NOPE", "conn-x")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestStartGameRequiresHost(t *testing.T) {
	reg := newTestRegistry(t)
	seatPlayers(t, reg, "ABCD", "Alice", "Bob", "Cara")

	_, err := reg.StartGame("ABCD", connFor("Bob"))
	assert.ErrorIs(t, err, ErrNotHost)

	_, err = reg.StartGame("ABCD", "conn-stranger")
	assert.ErrorIs(t, err, ErrNotHost)

	assert.Equal(t, models.StatusWaiting, reg.GetRoom("ABCD").Status)
}

func TestStartGameInsufficientPlayers(t *testing.T) {
	reg := newTestRegistry(t)
	seatPlayers(t, reg, "ABCD", "Alice", "Bob")

	_, err := reg.StartGame("ABCD", connFor("Alice"))
	assert.ErrorIs(t, err, ErrInsufficientPlayers)

	r := reg.GetRoom("ABCD")
	assert.Equal(t, models.StatusWaiting, r.Status)
	for _, p := range r.Players {
		assert.Equal(t, models.CardUnassigned, p.Card.Kind)
	}
}

func TestStartGameTwiceFails(t *testing.T) {
	reg := newTestRegistry(t)
	seatPlayers(t, reg, "ABCD", "Alice", "Bob", "Cara")

	_, err := reg.StartGame("ABCD", connFor("Alice"))
	require.NoError(t, err)

	_, err = reg.StartGame("ABCD", connFor("Alice"))
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestRestartGameRedeals(t *testing.T) {
	reg := newTestRegistry(t)
	seatPlayers(t, reg, "ABCD", "Alice", "Bob", "Cara")

	r, err := reg.StartGame("ABCD", connFor("Alice"))
	require.NoError(t, err)

	// Reveal a card so the restart has state to reset.
	_, p := reg.RevealCard("ABCD", connFor("Bob"))
	require.NotNil(t, p)
	require.True(t, p.CardRevealed)

	r, err = reg.RestartGame("ABCD", connFor("Alice"))
	require.NoError(t, err)
	requireRolesDealt(t, r)
	requireInvariants(t, r)
}

func TestRestartGameLegalWhileWaiting(t *testing.T) {
	// Restart does not require a prior start, only host and enough players.
	reg := newTestRegistry(t)
	seatPlayers(t, reg, "ABCD", "Alice", "Bob", "Cara")

	r, err := reg.RestartGame("ABCD", connFor("Alice"))
	require.NoError(t, err)
	requireRolesDealt(t, r)
}

func TestRestartGameRequiresHost(t *testing.T) {
	reg := newTestRegistry(t)
	seatPlayers(t, reg, "ABCD", "Alice", "Bob", "Cara")

	_, err := reg.StartGame("ABCD", connFor("Alice"))
	require.NoError(t, err)

	_, err = reg.RestartGame("ABCD", connFor("Cara"))
	assert.ErrorIs(t, err, ErrNotHost)
}

func TestRevealCardIdempotent(t *testing.T) {
	reg := newTestRegistry(t)
	seatPlayers(t, reg, "ABCD", "Alice", "Bob", "Cara")
	_, err := reg.StartGame("ABCD", connFor("Alice"))
	require.NoError(t, err)

	r1, p1 := reg.RevealCard("ABCD", connFor("Cara"))
	require.NotNil(t, p1)
	assert.True(t, p1.CardRevealed)

	r2, p2 := reg.RevealCard("ABCD", connFor("Cara"))
	require.NotNil(t, p2)
	assert.True(t, p2.CardRevealed)
	assert.Equal(t, p1.ID, p2.ID)
	assert.Equal(t, r1, r2)
}

func TestRevealCardMissingRoomOrPlayer(t *testing.T) {
	reg := newTestRegistry(t)

	r, p := reg.RevealCard("NOPE", "conn-x")
	assert.Nil(t, r)
	assert.Nil(t, p)

	seatPlayers(t, reg, "ABCD", "Alice")
	r, p = reg.RevealCard("ABCD", "conn-stranger")
	require.NotNil(t, r)
	assert.Nil(t, p)
}
