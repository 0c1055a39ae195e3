package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/giftregistry/pkg/logger"
)

var defaultRetry = retryPolicy{attempts: 3, baseDelay: time.Second}

type retryPolicy struct {
	attempts  int
	baseDelay time.Duration
}

// run calls handler until it succeeds or attempts run out, doubling the
// delay between tries. It returns the last handler error, or ctx.Err() if
// ctx ends while waiting.
func (p retryPolicy) run(ctx context.Context, msg *message.Message, handler Handler, log logger.Logger) error {
	attempts := max(p.attempts, 1)
	delay := p.baseDelay

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		log.WarnContext(ctx, "events: handler failed, retrying",
			"attempt", attempt,
			"max_attempts", attempts,
			"next_delay", delay,
			"message_id", msg.UUID,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("events: handler failed after %d attempts: %w", attempts, err)
}
