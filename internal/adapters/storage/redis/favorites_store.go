package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"pawshop/internal/domain/favorites"

	goredis "github.com/redis/go-redis/v9"
)

// emptyMarker: ningún producto tiene id 0.
const emptyMarker = "0"

// FavoritesStore guarda cada FavoriteMap como un hash
// pawshop:favorites:<session> -> {productID: "1"|"0"} con TTL de sesión.
type FavoritesStore struct {
	client    *goredis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewFavoritesStore(client *goredis.Client, ttl time.Duration) *FavoritesStore {
	return &FavoritesStore{
		client:    client,
		keyPrefix: "pawshop:favorites:",
		ttl:       ttl,
	}
}

func (s *FavoritesStore) key(sessionID string) string {
	return s.keyPrefix + sessionID
}

func (s *FavoritesStore) Load(ctx context.Context, sessionID string) (map[int]bool, error) {
	raw, err := s.client.HGetAll(ctx, s.key(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites for session %s: %w", sessionID, err)
	}
	// HGETALL sobre una key inexistente devuelve un mapa vacío, no redis.Nil
	if len(raw) == 0 {
		return nil, favorites.ErrNotFound
	}

	out := make(map[int]bool, len(raw))
	for field, val := range raw {
		if field == emptyMarker {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("failed to parse product id %q: %w", field, err)
		}
		out[id] = val == "1"
	}
	return out, nil
}

func (s *FavoritesStore) Save(ctx context.Context, sessionID string, favs map[int]bool) error {
	values := make(map[string]any, len(favs))
	for id, v := range favs {
		if v {
			values[strconv.Itoa(id)] = "1"
		} else {
			values[strconv.Itoa(id)] = "0"
		}
	}
	if len(values) == 0 {
		// un hash vacío no existe en redis
		values[emptyMarker] = "0"
	}

	key := s.key(sessionID)
	_, err := s.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Del(ctx, key)
		p.HSet(ctx, key, values)
		if s.ttl > 0 {
			p.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save favorites for session %s: %w", sessionID, err)
	}
	return nil
}

func (s *FavoritesStore) Delete(ctx context.Context, sessionID string) error {
	n, err := s.client.Del(ctx, s.key(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete favorites for session %s: %w", sessionID, err)
	}
	if n == 0 {
		return favorites.ErrNotFound
	}
	return nil
}

// Open crea el cliente y verifica la conexión con un PING.
func Open(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}
