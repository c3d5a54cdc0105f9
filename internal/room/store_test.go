// internal/room/store_test.go
package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahtanPNG/spy-game-backend/internal/models"
)

func testRoom(code string) *models.Room {
	host := models.NewPlayer("Host", "conn-host-"+code, true)
	return models.NewRoom(code, host, time.Now())
}

func TestStoreSetGetDelete(t *testing.T) {
	s := NewStore()

	_, ok := s.Get("ABCD")
	assert.False(t, ok)

	r := testRoom("ABCD")
	s.Set("ABCD", r)

	got, ok := s.Get("ABCD")
	require.True(t, ok)
	assert.Same(t, r, got)
	assert.Equal(t, 1, s.Len())

	s.Delete("ABCD")
	_, ok = s.Get("ABCD")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStoreListIsACopy(t *testing.T) {
	s := NewStore()
	s.Set("AAAA", testRoom("AAAA"))
	s.Set("BBBB", testRoom("BBBB"))

	list := s.List()
	assert.Len(t, list, 2)

	// Mutating the snapshot must not affect the store.
	delete(list, "AAAA")
	_, ok := s.Get("AAAA")
	assert.True(t, ok)
}
