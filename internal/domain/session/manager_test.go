package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	leaves []View
	ends   []string
}

func (r *recorder) onLeave(_ context.Context, _ string, from View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaves = append(r.leaves, from)
}

func (r *recorder) onEnd(_ context.Context, sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ends = append(r.ends, sid)
}

func newTestManager(mock *clock.Mock, ttl time.Duration) (*Manager, *recorder) {
	m := NewManager(Options{TTL: ttl, InitialCart: 2, Clock: mock})
	rec := &recorder{}
	m.OnLeave(rec.onLeave)
	m.OnEnd(rec.onEnd)
	return m, rec
}

func TestManager_TouchCreatesWithDefaults(t *testing.T) {
	m, _ := newTestManager(clock.NewMock(), 0)
	id := NewID()

	s, err := m.Touch(id)
	require.NoError(t, err)
	assert.Equal(t, RouteHome, s.ActiveView.Route)
	assert.Equal(t, 2, s.CartCount)
	assert.Equal(t, 30*time.Minute, m.TTL())

	_, err = m.Touch("nope")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestManager_NavigateFiresLeaveOnlyOnChange(t *testing.T) {
	m, rec := newTestManager(clock.NewMock(), time.Minute)
	ctx := context.Background()
	id := uuid.NewString()

	product := View{Route: RouteProduct, ProductID: 1}
	require.NoError(t, m.Navigate(ctx, id, product))
	require.NoError(t, m.Navigate(ctx, id, product))
	require.NoError(t, m.Navigate(ctx, id, View{Route: RouteListing}))

	assert.Equal(t, []View{{Route: RouteHome}, product}, rec.leaves)

	s, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, RouteListing, s.ActiveView.Route)

	assert.ErrorIs(t, m.Navigate(ctx, "bad", product), ErrInvalidID)
}

func TestManager_NavigateCreatesMissingSession(t *testing.T) {
	m, _ := newTestManager(clock.NewMock(), time.Minute)
	id := NewID()

	require.NoError(t, m.Navigate(context.Background(), id, View{Route: RouteListing}))

	s, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, RouteListing, s.ActiveView.Route)
	assert.Equal(t, 2, s.CartCount)
}

func TestManager_NavigateConcurrentWithEnd(t *testing.T) {
	m, _ := newTestManager(clock.NewMock(), time.Minute)
	ctx := context.Background()
	id := NewID()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, m.Navigate(ctx, id, View{Route: RouteProduct, ProductID: i%3 + 1}))
		}(i)
		go func() {
			defer wg.Done()
			m.End(ctx, id)
		}()
	}
	wg.Wait()

	// sigue siendo usable después de la carrera
	require.NoError(t, m.Navigate(ctx, id, View{Route: RouteHome}))
	_, ok := m.Get(id)
	assert.True(t, ok)
}

func TestManager_CartCount(t *testing.T) {
	m, _ := newTestManager(clock.NewMock(), time.Minute)
	id := NewID()

	assert.Equal(t, 2, m.CartCount(id))
	assert.Equal(t, 0, m.AddToCart(id, 3))

	_, _ = m.Touch(id)
	assert.Equal(t, 5, m.AddToCart(id, 3))
	assert.Equal(t, 5, m.AddToCart(id, -1))
	assert.Equal(t, 5, m.CartCount(id))
}

func TestManager_SweepExpiresIdleSessions(t *testing.T) {
	mock := clock.NewMock()
	m, rec := newTestManager(mock, time.Minute)
	ctx := context.Background()

	idle := NewID()
	active := NewID()
	require.NoError(t, m.Navigate(ctx, idle, View{Route: RouteProduct, ProductID: 1}))
	rec.leaves = nil

	mock.Add(45 * time.Second)
	_, _ = m.Touch(active)
	mock.Add(30 * time.Second)

	expired := m.Sweep(ctx)
	assert.Equal(t, []string{idle}, expired)
	assert.Equal(t, []View{{Route: RouteProduct, ProductID: 1}}, rec.leaves)
	assert.Equal(t, []string{idle}, rec.ends)
	assert.Equal(t, 1, m.Len())

	_, ok := m.Get(idle)
	assert.False(t, ok)
}

func TestManager_End(t *testing.T) {
	m, rec := newTestManager(clock.NewMock(), time.Minute)
	id := NewID()
	_, _ = m.Touch(id)

	assert.True(t, m.End(context.Background(), id))
	assert.False(t, m.End(context.Background(), id))
	assert.Equal(t, []string{id}, rec.ends)
}

func TestManager_RunSweepsOnTicker(t *testing.T) {
	mock := clock.NewMock()
	m, _ := newTestManager(mock, time.Minute)
	_, _ = m.Touch(NewID())
	mock.Add(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan []string, 1)
	done := make(chan error, 1)
	go func() {
		done <- m.Run(ctx, 10*time.Second, func(expired []string) { swept <- expired })
	}()

	// dejar que Run registre el ticker antes de avanzar el reloj
	time.Sleep(20 * time.Millisecond)
	mock.Add(10 * time.Second)

	select {
	case ids := <-swept:
		assert.Len(t, ids, 1)
	case <-time.After(time.Second):
		t.Fatal("sweep did not run")
	}

	cancel()
	require.NoError(t, <-done)
}
