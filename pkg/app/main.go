package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/giftregistry/pkg/cache"
	"github.com/ghuser/giftregistry/pkg/config"
	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/pkg/events"
	"github.com/ghuser/giftregistry/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to the registry Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "claim created", "claim_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
//
// EventBus is nil unless LIVE_FANOUT=bus; Redis may be nil in tests, in which
// case the claims view is always rebuilt from the database.
type Application struct {
	Config       *config.Config
	Db           *database.Database
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient
	SessionStore sessions.Store // Redis-backed session store; nil in worker process
}
