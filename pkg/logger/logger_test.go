package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func newTestLogger(buf *bytes.Buffer) Logger {
	return NewWithWriter(buf, "debug")
}

func setupTracer(t *testing.T) {
	t.Helper()
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
}

func parseLastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var m map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &m); err != nil {
		t.Fatalf("failed to parse log line %q: %v", lines[len(lines)-1], err)
	}
	return m
}

func TestContextHandler_Trace(t *testing.T) {
	setupTracer(t)

	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.InfoContext(context.Background(), "no span")
	entry := parseLastLine(t, &buf)
	if _, ok := entry["trace_id"]; ok {
		t.Error("trace_id should not be present without an active span")
	}

	ctx, parent := otel.Tracer("test").Start(context.Background(), "claim.create")
	log.ErrorContext(ctx, "claim failed", "error", errors.New("boom"))
	parentEntry := parseLastLine(t, &buf)

	ctx, child := otel.Tracer("test").Start(ctx, "claims.insert")
	log.InfoContext(ctx, "child")
	childEntry := parseLastLine(t, &buf)
	child.End()
	parent.End()

	if parentEntry["trace_id"] == nil || parentEntry["trace_id"] != childEntry["trace_id"] {
		t.Errorf("expected shared trace_id: %v vs %v", parentEntry["trace_id"], childEntry["trace_id"])
	}
	if parentEntry["span_id"] == childEntry["span_id"] {
		t.Error("expected different span_ids for parent and child")
	}
	if parentEntry["error"] != "boom" {
		t.Errorf("expected error=boom, got %v", parentEntry["error"])
	}
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	ctx := WithAttrs(context.Background(), "user_id", "u-1")
	ctx = WithAttrs(ctx, slog.String("inventory_id", "inv-1"))
	log.InfoContext(ctx, "claim created", "item_id", "it-1")

	entry := parseLastLine(t, &buf)
	for k, want := range map[string]string{"user_id": "u-1", "inventory_id": "inv-1", "item_id": "it-1"} {
		if entry[k] != want {
			t.Errorf("%s: got %v, want %q", k, entry[k], want)
		}
	}

	// The outer context is unchanged.
	log.InfoContext(context.Background(), "plain")
	if _, ok := parseLastLine(t, &buf)["user_id"]; ok {
		t.Error("user_id leaked into unrelated context")
	}
}

func TestWithAttrs_OddArgs(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.InfoContext(WithAttrs(context.Background(), "dangling"), "odd")
	if parseLastLine(t, &buf)["!BADKEY"] != "dangling" {
		t.Errorf("expected !BADKEY for dangling key, got %s", buf.String())
	}
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	tests := []struct {
		level    string
		wantInfo bool
	}{
		{level: "debug", wantInfo: true},
		{level: "info", wantInfo: true},
		{level: "warn", wantInfo: false},
		{level: "ERROR", wantInfo: false},
		{level: "bogus", wantInfo: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			NewWithWriter(&buf, tt.level).Info("hello")
			if got := buf.Len() > 0; got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
			}
		})
	}
}
