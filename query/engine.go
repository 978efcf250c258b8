package query

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sig-0/uahrates/storage"
	"github.com/sig-0/uahrates/storage/types"
)

// Engine answers read queries over the snapshot log
type Engine struct {
	storage storage.Storage
	logger  *slog.Logger

	now      func() time.Time
	location *time.Location
}

// New creates a new query engine over the given storage
func New(storage storage.Storage, opts ...Option) *Engine {
	e := &Engine{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		storage:  storage,
		now:      time.Now,
		location: types.KyivLocation(),
	}

	// Apply the options
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ByCurrency returns the latest snapshot filtered down to quotes for
// the given currency. The result is nil when the log is empty; a
// currency with no matching quotes yields three empty lists instead
func (e *Engine) ByCurrency(ctx context.Context, code types.Currency) (*types.CurrencyRates, error) {
	latest, err := e.storage.LatestSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch latest snapshot: %w", err)
	}

	if latest == nil {
		return nil, nil //nolint:nilnil // valid case, no data yet
	}

	return &types.CurrencyRates{
		Timestamp:  latest.Timestamp,
		Raiffeisen: filterQuotes(latest.Raiffeisen, code),
		PrivatBank: filterQuotes(latest.PrivatBank, code),
		Bestobmin:  filterQuotes(latest.Bestobmin, code),
	}, nil
}

// ByCurrencyForPeriod returns the downsampled quote history for the
// given currency over the trailing period. Sampled points where no
// source matched the currency are dropped.
// Period validation is the caller's concern
func (e *Engine) ByCurrencyForPeriod(
	ctx context.Context,
	code types.Currency,
	periodDays int,
) (*types.PeriodRates, error) {
	cutoff := e.now().In(e.location).AddDate(0, 0, -periodDays)

	snapshots, err := e.storage.SnapshotsSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch snapshot range: %w", err)
	}

	result := &types.PeriodRates{
		Currency:   code,
		PeriodDays: periodDays,
		Data:       []types.PeriodPoint{},
	}

	for _, snapshot := range sampleSnapshots(snapshots, periodDays, e.location) {
		rates := make(map[types.Source][]types.Quote)

		for _, src := range types.Sources() {
			if matched := filterQuotes(snapshot.QuotesFor(src), code); len(matched) > 0 {
				rates[src] = matched
			}
		}

		if len(rates) == 0 {
			continue
		}

		result.Data = append(result.Data, types.PeriodPoint{
			Timestamp: snapshot.Timestamp,
			Rates:     rates,
		})
	}

	return result, nil
}

// filterQuotes narrows the quote list down to exact currency matches
func filterQuotes(quotes []types.Quote, code types.Currency) []types.Quote {
	matched := []types.Quote{}

	for _, quote := range quotes {
		if quote.Currency == code {
			matched = append(matched, quote)
		}
	}

	return matched
}
