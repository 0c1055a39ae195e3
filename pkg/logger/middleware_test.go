package logger

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
)

func TestMiddleware_LogsRequest(t *testing.T) {
	setupTracer(t)

	var buf bytes.Buffer
	log := newTestLogger(&buf)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(Middleware(log))
	r.Post("/api/v1/inventories", func(w http.ResponseWriter, req *http.Request) {
		_, span := otel.Tracer("test").Start(req.Context(), "handler")
		defer span.End()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"x"}`))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/inventories", http.NoBody))

	entry := parseLastLine(t, &buf)
	if _, ok := entry["request_id"]; !ok {
		t.Error("expected request_id in request log")
	}
	if entry["method"] != "POST" || entry["status"] != float64(http.StatusCreated) {
		t.Errorf("unexpected entry %v", entry)
	}
	if entry["bytes"] != float64(len(`{"id":"x"}`)) {
		t.Errorf("expected bytes written, got %v", entry["bytes"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("expected INFO, got %v", entry["level"])
	}
}

func TestMiddleware_ProbesLogAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	h := Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	if buf.Len() != 0 {
		t.Errorf("expected /health to be filtered at info level, got %q", buf.String())
	}
}

func TestMiddleware_PreservesFlusher(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	var flushErr error
	h := Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("event: connected\n\n"))
		flushErr = http.NewResponseController(w).Flush()
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/inventories/x/events", http.NoBody))

	if flushErr != nil {
		t.Fatalf("flush through middleware: %v", flushErr)
	}
	if !rr.Flushed {
		t.Error("expected recorder to be flushed")
	}
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantCode int
		wantBody string
	}{
		{
			name:     "panic before response",
			handler:  func(http.ResponseWriter, *http.Request) { panic("nil claim") },
			wantCode: http.StatusInternalServerError,
			wantBody: "Internal Server Error",
		},
		{
			name: "panic mid-stream keeps committed status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("event: connected\n\n"))
				panic("stream broke")
			},
			wantCode: http.StatusOK,
			wantBody: "event: connected\n\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rr := httptest.NewRecorder()
			Recovery(newTestLogger(&buf))(tt.handler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			if rr.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rr.Code)
			}
			if !strings.HasPrefix(rr.Body.String(), tt.wantBody) {
				t.Errorf("unexpected body %q", rr.Body.String())
			}
			entry := parseLastLine(t, &buf)
			if entry["msg"] != "panic recovered" || entry["stack"] == nil {
				t.Errorf("expected panic log with stack, got %v", entry)
			}
		})
	}
}

func TestRecovery_RepanicsAbort(t *testing.T) {
	defer func() {
		if recover() != http.ErrAbortHandler {
			t.Error("expected ErrAbortHandler to propagate")
		}
	}()
	h := Recovery(Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody).WithContext(context.Background()))
}
