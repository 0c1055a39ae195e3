// Package live fans inventory events out to connected browsers over
// server-sent events.
//
// A Hub keeps, per inventory, the set of open streams and, per user, how many
// streams that user holds. Delivery never blocks: a stream whose buffer is
// full is treated as dead and removed. Removal is idempotent whichever path
// triggers it (client disconnect, failed publish, failed heartbeat) and
// releases the user's connection slot exactly once.
package live

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/pkg/telemetry"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/events"
)

// Stream event names that are not domain events.
const (
	EventConnected = "connected"
	EventHeartbeat = "heartbeat"
)

const (
	defaultMaxPerUser = 5
	defaultBuffer     = 64
	defaultHeartbeat  = 30 * time.Second
)

// Config tunes a Hub. Zero values fall back to the defaults.
type Config struct {
	// MaxPerUser caps concurrent streams per user across all inventories.
	MaxPerUser int
	// BufferSize is the per-stream queue length.
	BufferSize int
	// HeartbeatInterval is the period of Run's heartbeat.
	HeartbeatInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxPerUser <= 0 {
		c.MaxPerUser = defaultMaxPerUser
	}
	if c.BufferSize <= 0 {
		c.BufferSize = defaultBuffer
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = defaultHeartbeat
	}
	return c
}

// Hub is the process-wide registry of live streams.
type Hub struct {
	cfg Config
	log logger.Logger

	mu          sync.Mutex
	byInventory map[uuid.UUID]map[*Stream]struct{}
	byUser      map[uuid.UUID]int
	closed      bool

	subscriptions metric.Int64UpDownCounter
	failures      metric.Int64Counter
}

// NewHub returns an empty Hub. Metrics go to the global OTel meter provider.
func NewHub(cfg Config, log logger.Logger) *Hub {
	h := &Hub{
		cfg:         cfg.withDefaults(),
		log:         log,
		byInventory: make(map[uuid.UUID]map[*Stream]struct{}),
		byUser:      make(map[uuid.UUID]int),
	}

	meter := telemetry.Meter("live")
	var err error
	if h.subscriptions, err = meter.Int64UpDownCounter("registry.live.subscriptions",
		metric.WithDescription("Open live event streams")); err != nil {
		h.subscriptions = noop.Int64UpDownCounter{}
	}
	if h.failures, err = meter.Int64Counter("registry.live.delivery_failures",
		metric.WithDescription("Deliveries that removed a stream")); err != nil {
		h.failures = noop.Int64Counter{}
	}
	return h
}

// HeartbeatInterval reports the configured heartbeat period.
func (h *Hub) HeartbeatInterval() time.Duration {
	return h.cfg.HeartbeatInterval
}

// Subscribe opens a stream on inventoryID for userID. It fails with a
// conflict when the user already holds MaxPerUser streams. The connected
// event is queued before Subscribe returns.
func (h *Hub) Subscribe(inventoryID, userID uuid.UUID) (*Stream, error) {
	payload, err := json.Marshal(struct {
		InventoryID uuid.UUID `json:"inventoryId"`
	}{inventoryID})
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, domain.Conflict("live updates are shutting down")
	}
	if h.byUser[userID] >= h.cfg.MaxPerUser {
		return nil, domain.Conflict("Too many live connections (maximum %d)", h.cfg.MaxPerUser)
	}

	s := newStream(inventoryID, userID, h.cfg.BufferSize)
	set, ok := h.byInventory[inventoryID]
	if !ok {
		set = make(map[*Stream]struct{})
		h.byInventory[inventoryID] = set
	}
	set[s] = struct{}{}
	h.byUser[userID]++
	h.subscriptions.Add(context.Background(), 1)

	s.offer(Message{Event: EventConnected, Data: payload})
	return s, nil
}

// Unsubscribe removes s. Calling it more than once, or after the hub has
// already dropped s, is a no-op.
func (h *Hub) Unsubscribe(s *Stream) {
	if h.remove(s) {
		h.log.Debug("live stream removed",
			"inventory_id", s.InventoryID,
			"user_id", s.UserID,
		)
	}
}

func (h *Hub) remove(s *Stream) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.removeLocked(s)
}

func (h *Hub) removeLocked(s *Stream) bool {
	set, ok := h.byInventory[s.InventoryID]
	if !ok {
		return false
	}
	if _, ok := set[s]; !ok {
		return false
	}
	delete(set, s)
	if len(set) == 0 {
		delete(h.byInventory, s.InventoryID)
	}
	if n := h.byUser[s.UserID] - 1; n > 0 {
		h.byUser[s.UserID] = n
	} else {
		delete(h.byUser, s.UserID)
	}
	s.close()
	h.subscriptions.Add(context.Background(), -1)
	return true
}

// Publish delivers ev to every stream of its inventory. Streams that cannot
// take the event are removed; the error never reaches the caller.
func (h *Hub) Publish(ctx context.Context, ev events.DomainEvent) {
	targets := h.snapshot(ev.InventoryID)
	if len(targets) == 0 {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		h.log.ErrorContext(ctx, "live: marshal event", "error", err, "type", ev.Type)
		return
	}
	h.deliver(ctx, targets, Message{Event: ev.Name(), Data: data}, string(ev.Type))
}

// Heartbeat sends a heartbeat to every open stream.
func (h *Hub) Heartbeat(ctx context.Context) {
	targets := h.snapshot(uuid.Nil)
	if len(targets) == 0 {
		return
	}
	data, err := json.Marshal(struct {
		Timestamp int64 `json:"timestamp"`
	}{time.Now().UnixMilli()})
	if err != nil {
		return
	}
	h.deliver(ctx, targets, Message{Event: EventHeartbeat, Data: data}, EventHeartbeat)
}

// snapshot copies the streams of inventoryID, or of every inventory when
// inventoryID is uuid.Nil, so delivery happens outside the lock.
func (h *Hub) snapshot(inventoryID uuid.UUID) []*Stream {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []*Stream
	if inventoryID != uuid.Nil {
		for s := range h.byInventory[inventoryID] {
			out = append(out, s)
		}
		return out
	}
	for _, set := range h.byInventory {
		for s := range set {
			out = append(out, s)
		}
	}
	return out
}

func (h *Hub) deliver(ctx context.Context, targets []*Stream, m Message, kind string) {
	for _, s := range targets {
		if s.offer(m) {
			continue
		}
		// A stream unsubscribed since the snapshot is not a failure.
		if !h.remove(s) {
			continue
		}
		h.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("event", kind)))
		h.log.WarnContext(ctx, "live: delivery failed, stream removed",
			"event", kind,
			"inventory_id", s.InventoryID,
			"user_id", s.UserID,
		)
	}
}

// Run sends heartbeats every HeartbeatInterval until ctx is done.
func (h *Hub) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.cfg.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			h.Heartbeat(ctx)
		}
	}
}

// Close removes every stream and refuses new subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for _, set := range h.byInventory {
		for s := range set {
			h.removeLocked(s)
		}
	}
}

// Connections reports how many streams userID holds.
func (h *Hub) Connections(userID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.byUser[userID]
}

// Subscribers reports how many streams are open on inventoryID.
func (h *Hub) Subscribers(inventoryID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.byInventory[inventoryID])
}

// Streams reports how many streams are open in this process.
func (h *Hub) Streams() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, c := range h.byUser {
		n += c
	}
	return n
}
