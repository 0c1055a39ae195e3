package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/giftregistry/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

func down() *stubChecker { return &stubChecker{err: errors.New("conn refused")} }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		checks     httpx.HealthChecks
		wantCode   int
		wantStatus string
		wantDB     string
		wantRedis  string
		wantBus    string
	}{
		{
			name:     "all healthy",
			checks:   httpx.HealthChecks{Database: &stubChecker{}, Redis: &stubChecker{}, EventBus: &stubChecker{}},
			wantCode: http.StatusOK, wantStatus: "ok", wantDB: "ok", wantRedis: "ok", wantBus: "ok",
		},
		{
			name:     "database down",
			checks:   httpx.HealthChecks{Database: down(), Redis: &stubChecker{}, EventBus: &stubChecker{}},
			wantCode: http.StatusServiceUnavailable, wantStatus: "degraded", wantDB: "unreachable", wantRedis: "ok", wantBus: "ok",
		},
		{
			name:     "redis down",
			checks:   httpx.HealthChecks{Database: &stubChecker{}, Redis: down(), EventBus: &stubChecker{}},
			wantCode: http.StatusServiceUnavailable, wantStatus: "degraded", wantDB: "ok", wantRedis: "unreachable", wantBus: "ok",
		},
		{
			name:     "event bus down",
			checks:   httpx.HealthChecks{Database: &stubChecker{}, Redis: &stubChecker{}, EventBus: down()},
			wantCode: http.StatusServiceUnavailable, wantStatus: "degraded", wantDB: "ok", wantRedis: "ok", wantBus: "unreachable",
		},
		{
			name:     "local fan-out has no bus",
			checks:   httpx.HealthChecks{Database: &stubChecker{}, Redis: &stubChecker{}},
			wantCode: http.StatusOK, wantStatus: "ok", wantDB: "ok", wantRedis: "ok", wantBus: "disabled",
		},
		{
			name:     "all down",
			checks:   httpx.HealthChecks{Database: down(), Redis: down(), EventBus: down()},
			wantCode: http.StatusServiceUnavailable, wantStatus: "degraded", wantDB: "unreachable", wantRedis: "unreachable", wantBus: "unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			httpx.HealthHandler(tt.checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

			if rr.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
				t.Errorf("Content-Type: got %q", ct)
			}
			var resp httpx.HealthResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != tt.wantStatus || resp.Database != tt.wantDB || resp.Redis != tt.wantRedis || resp.EventBus != tt.wantBus {
				t.Errorf("unexpected response: %+v", resp)
			}
			if resp.LiveStreams != nil {
				t.Errorf("expected no live_streams without a counter, got %d", *resp.LiveStreams)
			}
		})
	}
}

func TestHealthHandler_LiveStreams(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{
		Database:    &stubChecker{},
		Redis:       &stubChecker{},
		LiveStreams: func() int { return 3 },
	})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	var resp httpx.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.LiveStreams == nil || *resp.LiveStreams != 3 {
		t.Errorf("expected live_streams 3, got %v", resp.LiveStreams)
	}
}
