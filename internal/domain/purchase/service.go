package purchase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"pawshop/internal/domain/catalog"
	"pawshop/internal/domain/session"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotMounted   = errors.New("product page not mounted")
)

// Cart es el badge de la bolsa de la sesión.
type Cart interface {
	AddToCart(sessionID string, qty int) int
	CartCount(sessionID string) int
}

type Options struct {
	Clock clock.Clock
	Delay time.Duration
}

// Service guarda, por sesión, el selector de la ficha montada.
// Una sesión tiene como mucho una ficha montada a la vez.
type Service struct {
	mu        sync.Mutex
	bySession map[string]*Selector

	cart  Cart
	clock clock.Clock
	delay time.Duration
}

func NewService(cart Cart, opts Options) *Service {
	c := opts.Clock
	if c == nil {
		c = clock.New()
	}
	return &Service{
		bySession: make(map[string]*Selector),
		cart:      cart,
		clock:     c,
		delay:     opts.Delay,
	}
}

// Mount devuelve el selector de la ficha si ya estaba montada para ese
// producto; si no, desmonta la anterior y crea uno nuevo.
func (s *Service) Mount(sessionID string, p catalog.FeaturedProduct) (*Selector, error) {
	if strings.TrimSpace(sessionID) == "" || p.ID <= 0 {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.bySession[sessionID]; ok {
		if cur.Product().ID == p.ID {
			return cur, nil
		}
		cur.Close()
	}
	sel := NewSelector(p, s.clock, s.delay)
	s.bySession[sessionID] = sel
	return sel, nil
}

// Current devuelve el selector montado para productID.
func (s *Service) Current(sessionID string, productID int) (*Selector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.bySession[sessionID]
	if !ok || cur.Product().ID != productID {
		return nil, ErrNotMounted
	}
	return cur, nil
}

// Unmount cierra la ficha de la sesión (si la hay).
func (s *Service) Unmount(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.bySession[sessionID]
	if !ok {
		return false
	}
	cur.Close()
	delete(s.bySession, sessionID)
	return true
}

// AddToCart marca la ficha como añadida y suma la cantidad al badge.
func (s *Service) AddToCart(sessionID string, sel *Selector) (Selection, int, error) {
	snap, err := sel.AddToCart()
	if err != nil {
		return snap, s.cart.CartCount(sessionID), err
	}
	badge := s.cart.AddToCart(sessionID, snap.Quantity)
	return snap, badge, nil
}

func (s *Service) CartCount(sessionID string) int {
	return s.cart.CartCount(sessionID)
}

// OnLeave se registra en session.Manager: salir de la ficha la desmonta.
func (s *Service) OnLeave(_ context.Context, sessionID string, from session.View) {
	if from.Route != session.RouteProduct {
		return
	}
	s.Unmount(sessionID)
}

func (s *Service) Mounted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bySession)
}
