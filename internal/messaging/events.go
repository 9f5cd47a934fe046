package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Event types published after successful writes
const (
	EventRouteAssigned  = "route.assigned"
	EventRouteRemoved   = "route.removed"
	EventRouteUVAdded   = "route_uv.added"
	EventRouteUVRemoved = "route_uv.removed"
	EventSaleCreated    = "sale.created"
	EventSaleUpdated    = "sale.updated"
	EventSaleDeleted    = "sale.deleted"
)

// Event is the envelope of a domain event
type Event struct {
	Type       string      `json:"type"`
	Aggregate  string      `json:"aggregate"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// Publisher publishes domain events. Publishing never fails the caller.
type Publisher interface {
	Publish(ctx context.Context, eventType, aggregate string, data interface{})
}

type publisher struct {
	client ServiceBusClient
	log    *logrus.Logger
	now    func() time.Time
}

// NewPublisher creates an event publisher on top of a Service Bus client
func NewPublisher(client ServiceBusClient, log *logrus.Logger) Publisher {
	return &publisher{
		client: client,
		log:    log,
		now:    time.Now,
	}
}

// Publish sends the event using the aggregate as session id, so events of
// the same aggregate are delivered in order
func (p *publisher) Publish(ctx context.Context, eventType, aggregate string, data interface{}) {
	event := Event{
		Type:       eventType,
		Aggregate:  aggregate,
		OccurredAt: p.now().UTC(),
		Data:       data,
	}
	if err := p.client.SendMessage(ctx, event, aggregate); err != nil {
		p.log.WithError(err).WithFields(logrus.Fields{
			"event":     eventType,
			"aggregate": aggregate,
		}).Error("Failed to publish event")
	}
}

// Aggregate builds the aggregate key of an entity
func Aggregate(kind string, id uint) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, string, string, interface{}) {}
