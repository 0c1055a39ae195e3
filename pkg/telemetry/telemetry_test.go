package telemetry

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/giftregistry/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "giftregistry-test",
		ServiceVersion: "test",
		Environment:    "testing",
		LiveFanout:     config.FanoutLocal,
		LiveInstanceID: "api-1",
		OtelEndpoint:   "", // disabled
	}
}

func TestSetup_NoOtelEndpoint(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected non-nil shutdown")
	}
	if handler == nil {
		t.Fatal("expected non-nil metrics handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestNewResource_RegistryAttributes(t *testing.T) {
	res, err := newResource(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}
	set := res.Set()

	if v, ok := set.Value(AttrLiveFanout); !ok || v.AsString() != config.FanoutLocal {
		t.Errorf("live fanout attribute = %v (present %v)", v.AsString(), ok)
	}
	if v, ok := set.Value(AttrInstanceID); !ok || v.AsString() != "api-1" {
		t.Errorf("instance id attribute = %v (present %v)", v.AsString(), ok)
	}

	cfg := baseConfig()
	cfg.LiveInstanceID = ""
	res, err = newResource(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}
	if _, ok := res.Set().Value(AttrInstanceID); ok {
		t.Error("expected no instance id attribute when unset")
	}
}

func TestSetup_MetricsHandlerExportsRegistryMeters(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	counter, err := Meter("live").Int64UpDownCounter("registry.test.streams")
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	counter.Add(context.Background(), 2)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/plain") {
		t.Errorf("expected text/plain content-type, got %q", ct)
	}
	body, _ := io.ReadAll(rr.Body)
	if !strings.Contains(string(body), "test_streams") && !strings.Contains(string(body), "test.streams") {
		t.Errorf("expected registry meter in output, got:\n%s", body)
	}
}

func TestCaptureRequestError_WithoutHub(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/inventories", http.NoBody)
	// No middleware ran, so there is no hub on the context.
	CaptureRequestError(r, errors.New("boom"))
}
