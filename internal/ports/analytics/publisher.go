package analytics

import (
	"context"
	"time"
)

type EventType string

const (
	EventListingViewed   EventType = "listing_viewed"
	EventProductViewed   EventType = "product_viewed"
	EventAddedToBasket   EventType = "added_to_basket"
	EventFavoriteToggled EventType = "favorite_toggled"
)

// Event es un evento de cliente. Payload debe ser serializable a JSON.
type Event struct {
	Type      EventType      `json:"type"`
	SessionID string         `json:"session_id"`
	At        time.Time      `json:"at"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Publisher no debe bloquear el request: los errores se loguean en el adapter.
type Publisher interface {
	Publish(ctx context.Context, e Event)
	Close()
}

// Nop se usa cuando no hay brokers configurados.
type Nop struct{}

func (Nop) Publish(context.Context, Event) {}
func (Nop) Close()                         {}
