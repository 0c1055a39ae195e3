package live

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	pkgevents "github.com/ghuser/giftregistry/pkg/events"
	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/domain/events"
)

// maxRelayAge drops bus events older than this. A fresh consumer group
// starts from the beginning of the topic, and replaying history to clients
// that are already up to date is pointless.
const maxRelayAge = time.Minute

// MessagePublisher is the publishing half of *pkgevents.EventBus.
type MessagePublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// MessageSubscriber is the subscribing half of *pkgevents.EventBus.
type MessageSubscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// BusPublisher sends domain events to the inventory events topic instead of
// a local hub, so every API instance running a Relay sees them.
type BusPublisher struct {
	bus MessagePublisher
	log logger.Logger
}

// NewBusPublisher returns a BusPublisher writing to bus.
func NewBusPublisher(bus MessagePublisher, log logger.Logger) *BusPublisher {
	return &BusPublisher{bus: bus, log: log}
}

// Publish implements events.Publisher. Failures are logged and dropped:
// live delivery is best effort.
func (p *BusPublisher) Publish(ctx context.Context, ev events.DomainEvent) {
	msg, err := pkgevents.NewJSONMessage(ev)
	if err != nil {
		p.log.ErrorContext(ctx, "live: encode bus event", "error", err, "type", ev.Type)
		return
	}
	msg.Metadata.Set("inventory_id", ev.InventoryID.String())
	msg.Metadata.Set("event_type", string(ev.Type))
	if err := p.bus.Publish(ctx, events.TopicInventoryEvents, msg); err != nil {
		p.log.WarnContext(ctx, "live: publish to bus failed",
			"error", err,
			"type", ev.Type,
			"inventory_id", ev.InventoryID,
		)
	}
}

// Relay subscribes to the inventory events topic and hands every event to
// target. It returns once the subscription is registered; delivery stops
// when ctx is cancelled or the bus is closed.
func Relay(ctx context.Context, bus MessageSubscriber, target events.Publisher, log logger.Logger) error {
	errCh, err := bus.Subscribe(ctx, events.TopicInventoryEvents, relayHandler(target, log, time.Now))
	if err != nil {
		return fmt.Errorf("live: relay subscribe: %w", err)
	}
	go func() {
		for err := range errCh {
			log.ErrorContext(ctx, "live: relay handler error", "error", err)
		}
	}()
	return nil
}

func relayHandler(target events.Publisher, log logger.Logger, now func() time.Time) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var ev events.DomainEvent
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			// Redelivery cannot fix a malformed payload.
			log.WarnContext(ctx, "live: dropping undecodable bus event", "error", err, "message_id", msg.UUID)
			return nil
		}
		if age := now().Sub(time.UnixMilli(ev.Timestamp)); age > maxRelayAge {
			log.DebugContext(ctx, "live: dropping stale bus event", "type", ev.Type, "age", age)
			return nil
		}
		target.Publish(ctx, ev)
		return nil
	}
}
