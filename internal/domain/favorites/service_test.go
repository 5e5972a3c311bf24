package favorites

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test store (in-memory)
// -------------------------

type testStore struct {
	mu      sync.Mutex
	data    map[string]map[int]bool
	saves   int
	failGet error
}

func newTestStore() *testStore {
	return &testStore{data: map[string]map[int]bool{}}
}

func (s *testStore) Load(ctx context.Context, sessionID string) (map[int]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet != nil {
		return nil, s.failGet
	}
	m, ok := s.data[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(map[int]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out, nil
}

func (s *testStore) Save(ctx context.Context, sessionID string, favs map[int]bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = favs
	s.saves++
	return nil
}

func (s *testStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[sessionID]; !ok {
		return ErrNotFound
	}
	delete(s.data, sessionID)
	return nil
}

type fixedSeed map[int]bool

func (f fixedSeed) DefaultFavorites(context.Context) (map[int]bool, error) {
	out := make(map[int]bool, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out, nil
}

func newTestService() (*Service, *testStore) {
	st := newTestStore()
	return NewService(st, fixedSeed{1: false, 2: true, 3: false, 5: true}), st
}

func TestService_RegistrySeedsOnce(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()

	reg, err := svc.Registry(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, reg.IDs())
	assert.Equal(t, 1, st.saves)

	_, err = svc.Registry(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, st.saves)
}

func TestService_ToggleIsPerSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	v, err := svc.Toggle(ctx, "s1", 1)
	require.NoError(t, err)
	assert.True(t, v)

	reg1, _ := svc.Registry(ctx, "s1")
	reg2, _ := svc.Registry(ctx, "s2")
	assert.True(t, reg1.IsFavorite(1))
	assert.False(t, reg2.IsFavorite(1))

	v, err = svc.Toggle(ctx, "s1", 1)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestService_ToggleErrors(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Toggle(ctx, "s1", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Toggle(ctx, "s1", 99)
	assert.ErrorIs(t, err, ErrUnknownItem)

	_, err = svc.Registry(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_StoreFailureIsWrapped(t *testing.T) {
	svc, st := newTestService()
	boom := errors.New("redis down")
	st.failGet = boom

	_, err := svc.Toggle(context.Background(), "s1", 1)
	assert.ErrorIs(t, err, boom)
}

func TestService_ForgetResetsToSeed(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "s1", 3)
	require.NoError(t, err)
	require.NoError(t, svc.Forget(ctx, "s1"))

	// olvidar dos veces no es error
	require.NoError(t, svc.Forget(ctx, "s1"))

	reg, err := svc.Registry(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, reg.IsFavorite(3))
}

func TestService_ConcurrentTogglesAreSerialized(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Toggle(ctx, "s1", 1)
		}()
	}
	wg.Wait()

	// 50 toggles => vuelve al valor inicial
	reg, err := svc.Registry(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, reg.IsFavorite(1))
}
