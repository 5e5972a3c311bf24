package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

var (
	ErrInvalidID = errors.New("invalid session id")
)

// Route identifica la pantalla activa de la sesión.
type Route string

const (
	RouteHome    Route = "home"
	RouteListing Route = "listing"
	RouteProduct Route = "product"
)

type View struct {
	Route     Route
	ProductID int // solo para RouteProduct
}

type Session struct {
	ID         string
	CreatedAt  time.Time
	LastSeen   time.Time
	ActiveView View
	CartCount  int
}

// LeaveFunc se llama al salir de una vista (navegación o fin de sesión).
type LeaveFunc func(ctx context.Context, sessionID string, from View)

// EndFunc se llama cuando la sesión expira o se cierra.
type EndFunc func(ctx context.Context, sessionID string)

type Options struct {
	TTL         time.Duration
	InitialCart int // badge mock de la bolsa
	Clock       clock.Clock
}

type Manager struct {
	mu   sync.Mutex
	byID map[string]*Session

	ttl         time.Duration
	initialCart int
	clock       clock.Clock

	onLeave []LeaveFunc
	onEnd   []EndFunc
}

func NewManager(opts Options) *Manager {
	c := opts.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Manager{
		byID:        make(map[string]*Session),
		ttl:         ttl,
		initialCart: opts.InitialCart,
		clock:       c,
	}
}

func (m *Manager) OnLeave(fn LeaveFunc) { m.onLeave = append(m.onLeave, fn) }
func (m *Manager) OnEnd(fn EndFunc)     { m.onEnd = append(m.onEnd, fn) }

func (m *Manager) TTL() time.Duration { return m.ttl }

// NewID genera un id de sesión nuevo.
func NewID() string {
	return uuid.NewString()
}

// ValidID acepta solo UUIDs: el id viaja en cookie/header controlados por el cliente.
func ValidID(id string) bool {
	_, err := uuid.Parse(strings.TrimSpace(id))
	return err == nil
}

// Touch crea la sesión si no existe y refresca LastSeen.
func (m *Manager) Touch(id string) (Session, error) {
	if !ValidID(id) {
		return Session{}, ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.getOrCreateLocked(id)
	s.LastSeen = m.clock.Now()
	return *s, nil
}

// getOrCreateLocked requiere m.mu tomado.
func (m *Manager) getOrCreateLocked(id string) *Session {
	s, ok := m.byID[id]
	if !ok {
		s = &Session{
			ID:         id,
			CreatedAt:  m.clock.Now(),
			ActiveView: View{Route: RouteHome},
			CartCount:  m.initialCart,
		}
		m.byID[id] = s
	}
	return s
}

func (m *Manager) Get(id string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.byID[id]
	if !ok {
		return Session{}, false
	}
	return *s, true
}

// Navigate cambia la vista activa. Si la vista anterior es distinta,
// se notifica a los listeners para que la desmonten.
func (m *Manager) Navigate(ctx context.Context, id string, to View) error {
	if !ValidID(id) {
		return ErrInvalidID
	}

	m.mu.Lock()
	s := m.getOrCreateLocked(id)
	from := s.ActiveView
	s.ActiveView = to
	s.LastSeen = m.clock.Now()
	m.mu.Unlock()

	if from != to {
		for _, fn := range m.onLeave {
			fn(ctx, id, from)
		}
	}
	return nil
}

// AddToCart suma qty al badge de la bolsa y devuelve el total.
func (m *Manager) AddToCart(id string, qty int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.byID[id]
	if !ok {
		return 0
	}
	if qty > 0 {
		s.CartCount += qty
	}
	return s.CartCount
}

// CartCount devuelve el badge; para sesiones desconocidas, el valor inicial.
func (m *Manager) CartCount(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.byID[id]; ok {
		return s.CartCount
	}
	return m.initialCart
}

// End cierra la sesión y dispara los listeners de salida y fin.
func (m *Manager) End(ctx context.Context, id string) bool {
	m.mu.Lock()
	s, ok := m.byID[id]
	if ok {
		delete(m.byID, id)
	}
	m.mu.Unlock()

	if !ok {
		return false
	}
	m.finish(ctx, id, s.ActiveView)
	return true
}

// Sweep elimina sesiones inactivas más de TTL y devuelve sus ids.
func (m *Manager) Sweep(ctx context.Context) []string {
	cutoff := m.clock.Now().Add(-m.ttl)

	m.mu.Lock()
	expired := make(map[string]View)
	for id, s := range m.byID {
		if s.LastSeen.Before(cutoff) {
			expired[id] = s.ActiveView
			delete(m.byID, id)
		}
	}
	m.mu.Unlock()

	out := make([]string, 0, len(expired))
	for id, v := range expired {
		m.finish(ctx, id, v)
		out = append(out, id)
	}
	return out
}

// Run ejecuta Sweep cada interval hasta que ctx se cancele.
func (m *Manager) Run(ctx context.Context, interval time.Duration, onSweep func(expired []string)) error {
	if interval <= 0 {
		interval = time.Minute
	}
	t := m.clock.Ticker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			expired := m.Sweep(ctx)
			if onSweep != nil && len(expired) > 0 {
				onSweep(expired)
			}
		}
	}
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

func (m *Manager) finish(ctx context.Context, id string, from View) {
	for _, fn := range m.onLeave {
		fn(ctx, id, from)
	}
	for _, fn := range m.onEnd {
		fn(ctx, id)
	}
}
