package ingest

import (
	"log/slog"
	"time"
)

type Option func(p *Pipeline)

// WithLogger specifies the logger for the pipeline
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithInterval specifies the time between ingestion rounds.
// Defaults to 15m
func WithInterval(d time.Duration) Option {
	return func(p *Pipeline) {
		p.interval = d
	}
}

// WithFetchTimeout specifies the per-provider fetch timeout
// within a single round. Defaults to 10s
func WithFetchTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		p.fetchTimeout = d
	}
}

// WithNow specifies the clock used for snapshot timestamps
func WithNow(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}
