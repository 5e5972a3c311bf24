package favorites

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownItem  = errors.New("unknown product")
)

// Seeder da el estado inicial (isFavorite de cada producto del catálogo).
type Seeder interface {
	DefaultFavorites(ctx context.Context) (map[int]bool, error)
}

// Service mantiene un único registro por sesión, compartido por
// el listado y la ficha de producto.
type Service struct {
	store Store
	seed  Seeder

	// load-toggle-save tiene que ser atómico por sesión
	mu sync.Mutex
}

func NewService(store Store, seed Seeder) *Service {
	return &Service{store: store, seed: seed}
}

// Registry devuelve el registro de la sesión, sembrándolo la primera vez.
func (s *Service) Registry(ctx context.Context, sessionID string) (Registry, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Registry{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadOrSeed(ctx, sessionID)
}

// Toggle invierte el favorito de productID y devuelve el valor nuevo.
func (s *Service) Toggle(ctx context.Context, sessionID string, productID int) (bool, error) {
	if strings.TrimSpace(sessionID) == "" || productID <= 0 {
		return false, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reg, err := s.loadOrSeed(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if _, known := reg.m[productID]; !known {
		return false, ErrUnknownItem
	}

	v := reg.Toggle(productID)
	if err := s.store.Save(ctx, sessionID, reg.Snapshot()); err != nil {
		return false, fmt.Errorf("save favorites: %w", err)
	}
	return v, nil
}

// Forget descarta el registro (fin de sesión).
func (s *Service) Forget(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Delete(ctx, sessionID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

func (s *Service) loadOrSeed(ctx context.Context, sessionID string) (Registry, error) {
	m, err := s.store.Load(ctx, sessionID)
	if err == nil {
		return NewRegistry(m), nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Registry{}, fmt.Errorf("load favorites: %w", err)
	}

	seed, err := s.seed.DefaultFavorites(ctx)
	if err != nil {
		return Registry{}, fmt.Errorf("seed favorites: %w", err)
	}
	reg := NewRegistry(seed)
	if err := s.store.Save(ctx, sessionID, reg.Snapshot()); err != nil {
		return Registry{}, fmt.Errorf("save favorites: %w", err)
	}
	return reg, nil
}
