package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	_ "github.com/ghuser/giftregistry/docs/swagger"
	"github.com/ghuser/giftregistry/pkg/app"
	"github.com/ghuser/giftregistry/pkg/auth"
	"github.com/ghuser/giftregistry/pkg/cache"
	"github.com/ghuser/giftregistry/pkg/config"
	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/pkg/events"
	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/pkg/telemetry"
	registryApi "github.com/ghuser/giftregistry/services/registry/application/api"
	"github.com/ghuser/giftregistry/services/registry/application/live"
	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
	domainevents "github.com/ghuser/giftregistry/services/registry/domain/events"
	"github.com/ghuser/giftregistry/services/registry/infrastructure/persistence/sqlstore"
)

// @title					Gift Registry API
// @version				1.0
// @description			Shared inventories where members claim items and admins assign them.
// @contact.name			API Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api/v1
// @schemes				http https
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

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry: OTel tracing + metrics
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	db, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer db.Close() //nolint:errcheck
	log.Info("database connected", "driver", db.Dialect())

	// Postgres is migrated by migrations/registry; a SQLite file is
	// brought up to date on every start.
	if db.Dialect() == database.SQLite {
		if err := sqlstore.Migrate(ctx, db, log); err != nil {
			log.Error("failed to migrate sqlite database", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	sessionStore := auth.NewSessionStore(redisClient, auth.SessionConfig{
		AuthKey:       []byte(cfg.SessionAuthKey),
		EncryptionKey: []byte(cfg.SessionEncryptionKey),
		Secure:        cfg.Environment == config.EnvProduction,
		MaxAge:        cfg.SessionMaxAge,
	})
	log.Info("session store initialized", "backend", "redis")

	hub := live.NewHub(live.Config{
		MaxPerUser:        cfg.LiveMaxConnectionsPerUser,
		BufferSize:        cfg.LiveBufferSize,
		HeartbeatInterval: cfg.LiveHeartbeatInterval,
	}, log)

	appConfig := &app.Application{
		Config:       cfg,
		Db:           db,
		Logger:       log,
		Redis:        redisClient,
		SessionStore: sessionStore,
	}

	// In local mode events go straight into the hub. In bus mode they go
	// through the event bus and every instance relays the topic into its
	// own hub under a private consumer group.
	var publisher domainevents.Publisher = hub
	if cfg.LiveFanout == config.FanoutBus {
		eventBus, err := events.NewEventBusWithForwarder(cfg, log,
			events.WithConsumerGroup(cfg.ServiceName+"-live-"+instanceID(cfg)))
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer eventBus.Close() //nolint:errcheck

		if err := eventBus.StartForwarder(ctx); err != nil {
			log.Error("failed to start event forwarder", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		if err := live.Relay(ctx, eventBus, hub, log); err != nil {
			log.Error("failed to start live relay", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		appConfig.EventBus = eventBus
		publisher = live.NewBusPublisher(eventBus, log)
		log.Info("live fan-out through event bus", "topic", domainevents.TopicInventoryEvents)
	}

	svcs := appsvcs.New(appConfig, publisher)

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.HTTPRateLimitPerMinute,
			MaxBodyBytes:       cfg.HTTPMaxBodyBytes,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	checks := httpx.HealthChecks{Database: db, Redis: redisClient, LiveStreams: hub.Streams}
	if appConfig.EventBus != nil {
		checks.EventBus = appConfig.EventBus
	}
	r.With(httpx.Timeout()).Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	registryApi.RegistryRoutes(r, appConfig, svcs, hub)

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(gctx)
	})
	g.Go(func() error {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "live_fanout", cfg.LiveFanout)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down...")

		// Streams never finish on their own; closing the hub ends them so
		// Shutdown only waits for ordinary requests.
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("server stopped")
}

func instanceID(cfg *config.Config) string {
	if cfg.LiveInstanceID != "" {
		return cfg.LiveInstanceID
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "default"
}
