package events

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/giftregistry/pkg/config"
)

func TestTracePropagation(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "claim.create")
	defer span.End()

	msgs := []*message.Message{message.NewMessage("a", nil), message.NewMessage("b", nil)}
	injectTrace(ctx, msgs)

	for _, msg := range msgs {
		got := trace.SpanFromContext(extractTrace(context.Background(), msg)).SpanContext()
		if !got.IsValid() {
			t.Fatalf("message %s: extracted span context is not valid", msg.UUID)
		}
		if got.TraceID() != span.SpanContext().TraceID() {
			t.Errorf("message %s: trace ID mismatch: want %s, got %s", msg.UUID, span.SpanContext().TraceID(), got.TraceID())
		}
	}
}

func TestNewJSONMessage(t *testing.T) {
	msg, err := NewJSONMessage(map[string]string{"type": "CLAIM_CREATED"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(msg.Payload) != `{"type":"CLAIM_CREATED"}` {
		t.Errorf("unexpected payload %s", msg.Payload)
	}
	if msg.UUID == "" {
		t.Error("expected message UUID")
	}
	if got := msg.Metadata.Get("content_type"); got != "application/json" {
		t.Errorf("content_type: got %q", got)
	}

	if _, err := NewJSONMessage(make(chan int)); err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestNewEventBus_RejectsSQLite(t *testing.T) {
	cfg := &config.Config{DatabaseDriver: config.DriverSQLite, ServiceName: "test"}
	if _, err := NewEventBus(cfg, nopLogger()); err == nil {
		t.Fatal("expected error for sqlite driver")
	}
	if _, err := NewEventBusWithForwarder(cfg, nopLogger()); err == nil {
		t.Fatal("expected error for sqlite driver")
	}
}

func TestOptions(t *testing.T) {
	o := defaultOptions(&config.Config{ServiceName: "giftregistry"})
	if o.consumerGroup != "giftregistry-consumer" || o.forwarderGroup != "giftregistry-forwarder" {
		t.Errorf("unexpected defaults %+v", o)
	}
	if o.retry != defaultRetry {
		t.Errorf("unexpected default retry %+v", o.retry)
	}

	WithConsumerGroup("giftregistry-live-api-1")(&o)
	WithRetry(5, 10*time.Millisecond)(&o)
	if o.consumerGroup != "giftregistry-live-api-1" {
		t.Errorf("consumer group: got %q", o.consumerGroup)
	}
	if o.retry.attempts != 5 || o.retry.baseDelay != 10*time.Millisecond {
		t.Errorf("retry: got %+v", o.retry)
	}
}

func TestStartForwarder_NonForwarderMode(t *testing.T) {
	bus := &EventBus{useForwarder: false}
	if err := bus.StartForwarder(context.Background()); err == nil {
		t.Fatal("expected error for non-forwarder EventBus")
	}
}
