package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawshop/internal/domain/favorites"
)

type favoritesStore struct {
	mu        sync.RWMutex
	bySession map[string]map[int]bool
}

func NewFavoritesStore() favorites.Store {
	return &favoritesStore{
		bySession: make(map[string]map[int]bool),
	}
}

func (s *favoritesStore) Load(ctx context.Context, sessionID string) (map[int]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.bySession[sessionID]
	if !ok {
		return nil, favorites.ErrNotFound
	}
	return copyFavs(m), nil
}

func (s *favoritesStore) Save(ctx context.Context, sessionID string, favs map[int]bool) error {
	if strings.TrimSpace(sessionID) == "" {
		return errors.New("session id required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.bySession[sessionID] = copyFavs(favs)
	return nil
}

func (s *favoritesStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bySession[sessionID]; !ok {
		return favorites.ErrNotFound
	}
	delete(s.bySession, sessionID)
	return nil
}

func copyFavs(in map[int]bool) map[int]bool {
	out := make(map[int]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
