package favorites

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store guarda un FavoriteMap por sesión.
// Load devuelve ErrNotFound si la sesión todavía no tiene registro.
type Store interface {
	Load(ctx context.Context, sessionID string) (map[int]bool, error)
	Save(ctx context.Context, sessionID string, favs map[int]bool) error
	Delete(ctx context.Context, sessionID string) error
}
