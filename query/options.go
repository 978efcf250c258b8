package query

import (
	"log/slog"
	"time"
)

type Option func(e *Engine)

// WithLogger specifies the logger for the engine
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithNow specifies the clock used for period cutoffs
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}
