// Package events provides a PostgreSQL-backed pub/sub EventBus built on Watermill.
//
// Delivery semantics:
//   - The default consumer group (<service>-consumer) load-balances messages
//     across instances, so each message is processed once. The worker uses it
//     to warm the all-claims view cache.
//   - WithConsumerGroup(unique name) gives an instance its own offsets so it
//     sees every message. API instances use this to relay inventory events to
//     their live subscribers.
//
// Handlers should be idempotent. A failing handler is retried with
// exponential backoff and the message Nacked once retries run out.
//
// Trace context is injected into message metadata on Publish and restored
// before the handler runs, so spans continue across the bus.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/giftregistry/pkg/config"
	"github.com/ghuser/giftregistry/pkg/logger"
)

const (
	shutdownTimeout = 30 * time.Second
	errChanSize     = 100
)

// Handler processes one message. Returning an error triggers a retry.
type Handler func(context.Context, *message.Message) error

// EventBus is a pub/sub bus over Watermill's SQL transport, which uses
// FOR UPDATE SKIP LOCKED for concurrent-safe delivery.
type EventBus struct {
	publisher    message.Publisher // direct SQL publisher, or forwarder-wrapped
	subscriber   *watermillsql.Subscriber
	fwd          *forwarder.Forwarder // set by StartForwarder
	db           *sql.DB
	log          logger.Logger
	opts         busOptions
	wg           sync.WaitGroup
	useForwarder bool
}

// Option customises an EventBus.
type Option func(*busOptions)

type busOptions struct {
	consumerGroup  string
	forwarderGroup string
	retry          retryPolicy
}

// WithConsumerGroup overrides the subscriber's consumer group.
func WithConsumerGroup(group string) Option {
	return func(o *busOptions) { o.consumerGroup = group }
}

// WithRetry sets how many times a handler runs before its message is Nacked,
// and the delay before the first retry. Later retries double the delay.
func WithRetry(attempts int, baseDelay time.Duration) Option {
	return func(o *busOptions) { o.retry = retryPolicy{attempts: attempts, baseDelay: baseDelay} }
}

func defaultOptions(cfg *config.Config) busOptions {
	return busOptions{
		consumerGroup:  cfg.ServiceName + "-consumer",
		forwarderGroup: cfg.ServiceName + "-forwarder",
		retry:          defaultRetry,
	}
}

// NewEventBus connects to cfg.DatabaseURL and sets up a Watermill SQL
// publisher and subscriber. Schema tables are created on first use.
func NewEventBus(cfg *config.Config, log logger.Logger, opts ...Option) (*EventBus, error) {
	return newEventBus(cfg, log, false, opts...)
}

// NewEventBusWithForwarder creates an EventBus whose Publish writes to a
// durable forwarder queue instead of the target topic. The forwarder daemon,
// started with StartForwarder, moves messages to their topics, so an event
// accepted by Publish survives a crash of the publishing process.
func NewEventBusWithForwarder(cfg *config.Config, log logger.Logger, opts ...Option) (*EventBus, error) {
	return newEventBus(cfg, log, true, opts...)
}

func newEventBus(cfg *config.Config, log logger.Logger, useForwarder bool, opts ...Option) (*EventBus, error) {
	if cfg.DatabaseDriver == config.DriverSQLite {
		return nil, fmt.Errorf("events: the event bus requires postgres")
	}
	o := defaultOptions(cfg)
	for _, opt := range opts {
		opt(&o)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}
	wlog := newWatermillLogger(log)

	pub, err := newSQLPublisher(db, wlog)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	var publisher message.Publisher = pub
	if useForwarder {
		publisher = forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: forwarderTopic})
	}

	sub, err := newSQLSubscriber(db, o.consumerGroup, wlog)
	if err != nil {
		_ = pub.Close()
		_ = db.Close()
		return nil, err
	}

	return &EventBus{
		publisher:    publisher,
		subscriber:   sub,
		db:           db,
		log:          log,
		opts:         o,
		useForwarder: useForwarder,
	}, nil
}

func newSQLPublisher(db *sql.DB, wlog watermill.LoggerAdapter) (*watermillsql.Publisher, error) {
	pub, err := watermillsql.NewPublisher(db, watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: true,
	}, wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}
	return pub, nil
}

func newSQLSubscriber(db *sql.DB, group string, wlog watermill.LoggerAdapter) (*watermillsql.Subscriber, error) {
	sub, err := watermillsql.NewSubscriber(db, watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}, wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new subscriber (%s): %w", group, err)
	}
	return sub, nil
}

// Publish sends msgs to topic with the trace context of ctx attached.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	injectTrace(ctx, msgs)
	if err := q.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// NewJSONMessage marshals v into a new message with a random UUID.
func NewJSONMessage(v any) (*message.Message, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("content_type", "application/json")
	return msg, nil
}

// Subscribe runs handler for every message on topic until ctx is cancelled
// or the bus closes. Each handler call gets the publisher's trace context.
//
// A handler returning nil Acks the message. Errors are retried per the bus
// retry policy; after the last attempt the message is Nacked and the error
// sent on the returned channel, which callers must drain:
//
//	errCh, err := bus.Subscribe(ctx, topic, handler)
//	go func() { for err := range errCh { log.ErrorContext(ctx, "subscriber error", "error", err) } }()
//
// Close waits for in-flight handlers.
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error) {
	ch, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, errChanSize)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)
		for msg := range ch {
			q.dispatch(extractTrace(ctx, msg), topic, msg, handler, errCh)
		}
	}()
	return errCh, nil
}

func (q *EventBus) dispatch(ctx context.Context, topic string, msg *message.Message, handler Handler, errCh chan<- error) {
	if err := q.opts.retry.run(ctx, msg, handler, q.log); err != nil {
		msg.Nack()
		select {
		case errCh <- err:
		default:
			q.log.ErrorContext(ctx, "events: error channel full, dropping error",
				"error", err, "topic", topic, "message_id", msg.UUID)
		}
		return
	}
	msg.Ack()
}

func injectTrace(ctx context.Context, msgs []*message.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
}

func extractTrace(ctx context.Context, msg *message.Message) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(msg.Metadata))
}

// Ping checks the EventBus database connection health.
func (q *EventBus) Ping(ctx context.Context) error {
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops the subscriber and forwarder, waits up to 30s for in-flight
// handlers, then closes the publisher and the database connection.
func (q *EventBus) Close() error {
	if err := q.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}
	if q.fwd != nil {
		if err := q.fwd.Close(); err != nil {
			return fmt.Errorf("events: close forwarder: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		q.log.Error("events: timed out waiting for in-flight handlers to complete")
	}

	if err := q.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	return q.db.Close()
}
