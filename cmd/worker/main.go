// Command worker keeps the cached all-claims views warm. It consumes the
// inventory events topic under the shared consumer group, so each event is
// handled by one worker, and rebuilds the view of every inventory whose
// claims changed.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/ghuser/giftregistry/pkg/app"
	"github.com/ghuser/giftregistry/pkg/cache"
	"github.com/ghuser/giftregistry/pkg/config"
	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/pkg/events"
	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/pkg/telemetry"
	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
	domainevents "github.com/ghuser/giftregistry/services/registry/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg).With("process", "worker")

	// With local fan-out nothing is published to the bus, so there is
	// nothing to consume.
	if cfg.LiveFanout != config.FanoutBus {
		log.Error("the worker consumes the event bus; set LIVE_FANOUT=bus", "live_fanout", cfg.LiveFanout)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	db, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer db.Close() //nolint:errcheck

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	// Close waits up to 30s for in-flight handlers.
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck

	a := &app.Application{
		Config:   cfg,
		Db:       db,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	svcs := appsvcs.New(a, nil)
	handler, err := newViewWarmer(svcs.Aggregator, log)
	if err != nil {
		log.Error("failed to create metrics", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	if err := subscribe(ctx, eventBus, handler.Handle, log); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := chi.NewRouter()
	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{Database: db, Redis: redisClient, EventBus: eventBus}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	srv := httpx.NewServer(cfg.WorkerHTTPAddr, r)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("worker probes listening", "addr", srv.Addr, "topic", domainevents.TopicInventoryEvents)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down worker...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("worker error", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("worker stopped")
}

type messageSubscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// subscribe registers handler on the inventory events topic and drains the
// subscriber's error channel in the background.
func subscribe(ctx context.Context, bus messageSubscriber, handler func(context.Context, *message.Message) error, log logger.Logger) error {
	errCh, err := bus.Subscribe(ctx, domainevents.TopicInventoryEvents, handler)
	if err != nil {
		return err
	}
	go func() {
		for err := range errCh {
			log.ErrorContext(ctx, "subscriber error", "topic", domainevents.TopicInventoryEvents, "error", err)
		}
	}()
	log.Info("event subscribers registered", "topics", []string{domainevents.TopicInventoryEvents})
	return nil
}

type viewRefresher interface {
	Refresh(ctx context.Context, inventoryID uuid.UUID) error
}

// viewWarmer rebuilds the cached all-claims view of an event's inventory,
// so the next GetAllClaims after a change is served from Redis.
type viewWarmer struct {
	views     viewRefresher
	log       logger.Logger
	refreshed metric.Int64Counter
}

func newViewWarmer(views viewRefresher, log logger.Logger) (*viewWarmer, error) {
	refreshed, err := telemetry.Meter("worker").Int64Counter("registry.worker.views_refreshed",
		metric.WithDescription("All-claims views rebuilt after an inventory event"))
	if err != nil {
		return nil, err
	}
	return &viewWarmer{views: views, log: log, refreshed: refreshed}, nil
}

// Handle is the bus handler. Undecodable payloads are dropped since a retry
// cannot fix them; refresh failures are returned so the bus retries.
func (w *viewWarmer) Handle(ctx context.Context, msg *message.Message) error {
	var evt domainevents.DomainEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		w.log.WarnContext(ctx, "dropping undecodable inventory event", "message_id", msg.UUID, "error", err)
		return nil
	}
	if !evt.AffectsClaims() {
		return nil
	}

	ctx = logger.WithAttrs(ctx, "inventory_id", evt.InventoryID, "type", evt.Type)
	if err := w.views.Refresh(ctx, evt.InventoryID); err != nil {
		return err
	}
	w.refreshed.Add(ctx, 1, metric.WithAttributes(attribute.String("event", string(evt.Type))))
	w.log.DebugContext(ctx, "claims view warmed")
	return nil
}
