package httpx

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (database.DB, RedisClient, EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the dependencies probed by the health endpoint.
// A nil EventBus is reported as "disabled" and does not degrade the status;
// it is only wired when live fan-out runs through the bus.
type HealthChecks struct {
	Database HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
	// LiveStreams, when set, reports the event streams open on this instance.
	LiveStreams func() int
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Redis       string `json:"redis"`
	EventBus    string `json:"event_bus"`
	LiveStreams *int   `json:"live_streams,omitempty"`
}

const healthProbeTimeout = 2 * time.Second

// HealthHandler probes every dependency in parallel and answers 503 with
// status "degraded" if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		defer cancel()

		resp := HealthResponse{Status: "ok", EventBus: "disabled"}

		// Each goroutine owns one field of resp; the errgroup is only used
		// to wait, probes never return an error.
		var g errgroup.Group
		g.Go(func() error { resp.Database = probe(ctx, checks.Database); return nil })
		g.Go(func() error { resp.Redis = probe(ctx, checks.Redis); return nil })
		if checks.EventBus != nil {
			g.Go(func() error { resp.EventBus = probe(ctx, checks.EventBus); return nil })
		}
		_ = g.Wait()

		for _, s := range []string{resp.Database, resp.Redis, resp.EventBus} {
			if s == "unreachable" {
				resp.Status = "degraded"
			}
		}
		if checks.LiveStreams != nil {
			n := checks.LiveStreams()
			resp.LiveStreams = &n
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}

func probe(ctx context.Context, c HealthChecker) string {
	if err := c.Ping(ctx); err != nil {
		return "unreachable"
	}
	return "ok"
}
