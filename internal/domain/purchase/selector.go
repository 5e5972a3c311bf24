package purchase

import (
	"errors"
	"sync"
	"time"

	"pawshop/internal/domain/catalog"

	"github.com/benbjohnson/clock"
)

var (
	ErrInvalidSize = errors.New("size not offered for this product")
	ErrClosed      = errors.New("selector closed")
)

// AddedResetDelay es lo que dura el "Added to Basket!" antes de volver a idle.
const AddedResetDelay = 2000 * time.Millisecond

// Selection es el estado visible del selector.
type Selection struct {
	ProductID   int
	Size        string
	Quantity    int
	AddedToCart bool
}

// Selector es el PurchaseSelection de una ficha montada.
//
// Cada AddToCart programa su propio reset y ninguna llamada cancela
// los resets anteriores: con dos clicks separados 1.5s el flag vuelve a
// false a los 2s del primero. Close descarta todos los resets pendientes.
type Selector struct {
	mu sync.Mutex

	product  catalog.FeaturedProduct
	size     string
	quantity int
	added    bool

	clock  clock.Clock
	delay  time.Duration
	nextID uint64
	timers map[uint64]*clock.Timer
	closed bool
}

func NewSelector(p catalog.FeaturedProduct, c clock.Clock, delay time.Duration) *Selector {
	if c == nil {
		c = clock.New()
	}
	if delay <= 0 {
		delay = AddedResetDelay
	}
	return &Selector{
		product:  p,
		size:     p.InitialSize(),
		quantity: 1,
		clock:    c,
		delay:    delay,
		timers:   make(map[uint64]*clock.Timer),
	}
}

func (s *Selector) Product() catalog.FeaturedProduct {
	return s.product
}

// SetSize solo acepta tamaños de la lista del producto.
func (s *Selector) SetSize(size string) error {
	if !s.product.HasSize(size) {
		return ErrInvalidSize
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.size = size
	return nil
}

// Increment no tiene tope.
func (s *Selector) Increment() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quantity++
	return s.quantity
}

// Decrement nunca baja de 1; en 1 es un no-op.
func (s *Selector) Decrement() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quantity > 1 {
		s.quantity--
	}
	return s.quantity
}

// AddToCart pasa a "added" y programa la vuelta a idle tras el delay.
func (s *Selector) AddToCart() (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.snapshotLocked(), ErrClosed
	}

	s.added = true
	id := s.nextID
	s.nextID++
	s.timers[id] = s.clock.AfterFunc(s.delay, func() { s.reset(id) })

	return s.snapshotLocked(), nil
}

func (s *Selector) reset(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, pending := s.timers[id]; !pending {
		return // descartado por Close
	}
	delete(s.timers, id)
	s.added = false
}

// Close desmonta la ficha: los resets pendientes no tienen efecto.
func (s *Selector) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending es la cantidad de resets programados que aún no corrieron.
func (s *Selector) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *Selector) Snapshot() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Selector) snapshotLocked() Selection {
	return Selection{
		ProductID:   s.product.ID,
		Size:        s.size,
		Quantity:    s.quantity,
		AddedToCart: s.added,
	}
}

// LineTotal = price × quantity.
func (s *Selector) LineTotal() catalog.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.product.Price.Times(s.quantity)
}

// OriginalLineTotal = originalPrice × quantity, nil si no hay descuento.
func (s *Selector) OriginalLineTotal() *catalog.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.product.OriginalPrice == nil {
		return nil
	}
	v := s.product.OriginalPrice.Times(s.quantity)
	return &v
}
