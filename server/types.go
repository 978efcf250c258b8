package server

import (
	"context"

	"github.com/sig-0/uahrates/storage/types"
)

// Rates is the query surface consumed by the HTTP layer
type Rates interface {
	// ByCurrency returns the latest quotes for the currency,
	// or nil when no data has been ingested yet
	ByCurrency(context.Context, types.Currency) (*types.CurrencyRates, error)

	// ByCurrencyForPeriod returns the downsampled quote history
	// for the currency over the trailing period
	ByCurrencyForPeriod(context.Context, types.Currency, int) (*types.PeriodRates, error)
}

type ErrorResponse struct {
	Error string `json:"error"`
}
