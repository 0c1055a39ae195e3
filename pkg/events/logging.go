package events

import (
	"github.com/ThreeDotsLabs/watermill"

	"github.com/ghuser/giftregistry/pkg/logger"
)

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter. Watermill
// reports every poll and offset commit at info level, so Info is demoted to
// debug; Trace is dropped.
type slogAdapter struct{ log logger.Logger }

func newWatermillLogger(log logger.Logger) *slogAdapter {
	return &slogAdapter{log: log.With("component", "watermill")}
}

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}

func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}

func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}

func (a *slogAdapter) Trace(string, watermill.LogFields) {}

func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
