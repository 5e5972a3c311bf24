package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawshop/internal/domain/favorites"
)

func newTestStore(t *testing.T, ttl time.Duration) (*FavoritesStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := Open(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewFavoritesStore(client, ttl), mr
}

func TestFavoritesStore_RoundTrip(t *testing.T) {
	s, mr := newTestStore(t, 30*time.Minute)
	ctx := context.Background()

	_, err := s.Load(ctx, "s1")
	assert.ErrorIs(t, err, favorites.ErrNotFound)

	require.NoError(t, s.Save(ctx, "s1", map[int]bool{1: true, 2: false, 5: true}))
	assert.Equal(t, "1", mr.HGet("pawshop:favorites:s1", "1"))
	assert.Equal(t, "0", mr.HGet("pawshop:favorites:s1", "2"))

	got, err := s.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: false, 5: true}, got)

	// Save reemplaza el hash entero
	require.NoError(t, s.Save(ctx, "s1", map[int]bool{3: true}))
	got, err = s.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{3: true}, got)

	// otra sesión no se ve
	_, err = s.Load(ctx, "s2")
	assert.ErrorIs(t, err, favorites.ErrNotFound)
}

func TestFavoritesStore_EmptyMapSurvives(t *testing.T) {
	s, mr := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "s1", map[int]bool{}))
	assert.True(t, mr.Exists("pawshop:favorites:s1"))

	got, err := s.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFavoritesStore_TTL(t *testing.T) {
	s, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "s1", map[int]bool{1: true}))
	assert.Equal(t, time.Minute, mr.TTL("pawshop:favorites:s1"))

	mr.FastForward(2 * time.Minute)
	_, err := s.Load(ctx, "s1")
	assert.ErrorIs(t, err, favorites.ErrNotFound)
}

func TestFavoritesStore_Delete(t *testing.T) {
	s, _ := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "s1", map[int]bool{1: true}))
	require.NoError(t, s.Delete(ctx, "s1"))
	assert.ErrorIs(t, s.Delete(ctx, "s1"), favorites.ErrNotFound)

	_, err := s.Load(ctx, "s1")
	assert.ErrorIs(t, err, favorites.ErrNotFound)
}

func TestFavoritesStore_CorruptField(t *testing.T) {
	s, mr := newTestStore(t, 0)

	mr.HSet("pawshop:favorites:s1", "abc", "1")
	_, err := s.Load(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, favorites.ErrNotFound)
}

func TestFavoritesStore_BackendDown(t *testing.T) {
	s, mr := newTestStore(t, 0)
	mr.SetError("ERR backend unavailable")

	_, err := s.Load(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, favorites.ErrNotFound)
}

func TestOpen_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := Open(ctx, "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}

var _ favorites.Store = (*FavoritesStore)(nil)
