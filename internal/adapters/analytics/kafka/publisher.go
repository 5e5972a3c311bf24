package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"pawshop/internal/platform/logger"
	"pawshop/internal/ports/analytics"

	"github.com/twmb/franz-go/pkg/kgo"
)

var _ analytics.Publisher = (*Publisher)(nil)

// Publisher produce eventos de cliente como JSON, con key = session id
// para que los eventos de una sesión queden ordenados en la misma partición.
type Publisher struct {
	cl    *kgo.Client
	topic string
	log   logger.Logger
}

func NewPublisher(seedBrokers []string, topic string, log logger.Logger) (*Publisher, error) {
	const op = "kafka.NewPublisher"

	if len(seedBrokers) == 0 || topic == "" {
		return nil, fmt.Errorf("%s: seed brokers and topic are required", op)
	}

	cl, err := kgo.NewClient(
		kgo.SeedBrokers(seedBrokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Publisher{
		cl:    cl,
		topic: topic,
		log:   log.With(map[string]any{"component": "analytics", "topic": topic}),
	}, nil
}

// Publish es asíncrono: el resultado llega al callback de kgo.
func (p *Publisher) Publish(ctx context.Context, e analytics.Event) {
	b, err := json.Marshal(e)
	if err != nil {
		p.log.Error("failed to encode event", map[string]any{"type": e.Type, "err": err})
		return
	}

	rec := &kgo.Record{Key: []byte(e.SessionID), Value: b}

	// contexto propio: el del request se cancela antes de que el broker responda
	p.cl.Produce(context.WithoutCancel(ctx), rec, func(r *kgo.Record, err error) {
		if err != nil {
			p.log.Warn("failed to produce event", map[string]any{"type": e.Type, "err": err})
			return
		}
		p.log.Debug("event produced", map[string]any{
			"type":      e.Type,
			"partition": r.Partition,
			"offset":    r.Offset,
		})
	})
}

func (p *Publisher) Close() {
	p.log.Info("closing producer...", nil)
	if err := p.cl.Flush(context.Background()); err != nil {
		p.log.Warn("failed to flush producer", map[string]any{"err": err})
	}
	p.cl.Close()
	p.log.Info("producer is closed", nil)
}
