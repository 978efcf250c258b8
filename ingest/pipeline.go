package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sig-0/uahrates/storage"
	"github.com/sig-0/uahrates/storage/types"
)

var (
	errInvalidProvider  = errors.New("invalid provider")
	errDuplicateSource  = errors.New("duplicate provider source")
	errUnknownSource    = errors.New("unknown provider source")
	errSnapshotNotSaved = errors.New("unable to save snapshot")
)

const (
	defaultInterval     = 15 * time.Minute
	defaultFetchTimeout = 10 * time.Second
)

// sourceResult is a single provider's contribution to a round
type sourceResult struct {
	err    error
	quotes []types.Quote
	source types.Source
	name   string
}

// Pipeline runs ingestion rounds over the registered providers,
// appending one snapshot to storage per round
type Pipeline struct {
	storage storage.Storage
	logger  *slog.Logger

	providers []Provider

	interval     time.Duration
	fetchTimeout time.Duration

	now      func() time.Time
	location *time.Location
}

// New creates a new Pipeline instance
func New(storage storage.Storage, opts ...Option) *Pipeline {
	p := &Pipeline{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		storage:      storage,
		interval:     defaultInterval,
		fetchTimeout: defaultFetchTimeout,
		now:          time.Now,
		location:     types.KyivLocation(),
	}

	// Apply the options
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Register registers a new provider with the pipeline.
// Each snapshot source can be fed by at most one provider
func (p *Pipeline) Register(provider Provider) error {
	if provider == nil || provider.Name() == "" {
		return errInvalidProvider
	}

	known := false

	for _, src := range types.Sources() {
		if provider.Source() == src {
			known = true

			break
		}
	}

	if !known {
		return fmt.Errorf("%w: %s", errUnknownSource, provider.Source())
	}

	for _, registered := range p.providers {
		if registered.Source() == provider.Source() {
			return fmt.Errorf("%w: %s", errDuplicateSource, provider.Source())
		}
	}

	p.providers = append(p.providers, provider)

	p.logger.Info(
		"registered new provider",
		"name", provider.Name(),
		"source", provider.Source().String(),
	)

	return nil
}

// Run executes a single ingestion round: all providers are fetched
// concurrently, each under its own timeout, and whatever subset
// succeeded is appended as one snapshot. A failed provider contributes
// an empty quote list and never fails the round; a storage failure
// fails the round with nothing persisted
func (p *Pipeline) Run(ctx context.Context) error {
	snapshot := types.NewSnapshot(p.now().In(p.location))

	resCh := make(chan *sourceResult, len(p.providers))

	for _, provider := range p.providers {
		go func(provider Provider) {
			fetchCtx, cancelFn := context.WithTimeout(ctx, p.fetchTimeout)
			defer cancelFn()

			quotes, err := provider.Fetch(fetchCtx)

			resCh <- &sourceResult{
				err:    err,
				quotes: quotes,
				source: provider.Source(),
				name:   provider.Name(),
			}
		}(provider)
	}

	// Block until every provider has returned or timed out
	for range p.providers {
		res := <-resCh

		if res.err != nil {
			p.logger.Warn(
				"provider fetch failed",
				"name", res.name,
				"source", res.source.String(),
				"err", res.err,
			)

			continue // the source keeps its empty list
		}

		snapshot.SetQuotes(res.source, res.quotes)

		p.logger.Info(
			"provider fetch complete",
			"name", res.name,
			"source", res.source.String(),
			"quotes", len(res.quotes),
		)
	}

	if err := p.storage.SaveSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("%w: %s", errSnapshotNotSaved, err)
	}

	p.logger.Info(
		"snapshot appended",
		"timestamp", snapshot.Timestamp.Format(time.RFC3339),
	)

	return nil
}

// Start starts the periodic ingestion loop [BLOCKING].
// One round runs immediately on start, then on every interval tick.
// Failed rounds are logged and retried on the next tick
func (p *Pipeline) Start(ctx context.Context) error {
	runRound := func() {
		if err := p.Run(ctx); err != nil {
			p.logger.Error(
				"ingestion round failed",
				"err", err,
			)
		}
	}

	// Initial round on boot
	runRound()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("ingestion pipeline shut down")

			return nil
		case <-ticker.C:
			runRound()
		}
	}
}
