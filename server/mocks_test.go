package server

import (
	"context"

	"github.com/sig-0/uahrates/storage/types"
)

type (
	byCurrencyDelegate          func(context.Context, types.Currency) (*types.CurrencyRates, error)
	byCurrencyForPeriodDelegate func(context.Context, types.Currency, int) (*types.PeriodRates, error)
)

type mockRates struct {
	byCurrencyFn          byCurrencyDelegate
	byCurrencyForPeriodFn byCurrencyForPeriodDelegate
}

func (m *mockRates) ByCurrency(
	ctx context.Context,
	currency types.Currency,
) (*types.CurrencyRates, error) {
	if m.byCurrencyFn != nil {
		return m.byCurrencyFn(ctx, currency)
	}

	return nil, nil //nolint:nilnil // empty log default
}

func (m *mockRates) ByCurrencyForPeriod(
	ctx context.Context,
	currency types.Currency,
	periodDays int,
) (*types.PeriodRates, error) {
	if m.byCurrencyForPeriodFn != nil {
		return m.byCurrencyForPeriodFn(ctx, currency, periodDays)
	}

	return nil, nil //nolint:nilnil // empty log default
}
