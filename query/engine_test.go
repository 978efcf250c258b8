package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-0/uahrates/provider/currencies"
	"github.com/sig-0/uahrates/storage/memory"
	"github.com/sig-0/uahrates/storage/mock"
	"github.com/sig-0/uahrates/storage/types"
)

func usdQuote(buy, sell string) types.Quote {
	return types.Quote{
		Currency:     currencies.USD,
		BaseCurrency: currencies.UAH,
		RateBuy:      buy,
		RateSell:     sell,
	}
}

func TestEngine_ByCurrency(t *testing.T) {
	t.Parallel()

	t.Run("empty log", func(t *testing.T) {
		t.Parallel()

		e := New(memory.NewStorage())

		rates, err := e.ByCurrency(context.Background(), currencies.USD)

		require.NoError(t, err)
		assert.Nil(t, rates)
	})

	t.Run("storage error", func(t *testing.T) {
		t.Parallel()

		storage := &mock.Storage{
			LatestSnapshotFn: func(_ context.Context) (*types.Snapshot, error) {
				return nil, errors.New("storage error")
			},
		}

		e := New(storage)

		rates, err := e.ByCurrency(context.Background(), currencies.USD)

		require.Error(t, err)
		assert.Nil(t, rates)
	})

	t.Run("no matching quotes yields empty lists", func(t *testing.T) {
		t.Parallel()

		var (
			store = memory.NewStorage()
			e     = New(store)

			snapshot = types.NewSnapshot(
				time.Date(2025, time.March, 10, 12, 0, 0, 0, types.KyivLocation()),
			)
		)

		snapshot.SetQuotes(types.SourcePrivatBank, []types.Quote{
			usdQuote("41.40", "42.02"),
		})

		require.NoError(t, store.SaveSnapshot(context.Background(), snapshot))

		rates, err := e.ByCurrency(context.Background(), currencies.EUR)

		require.NoError(t, err)
		require.NotNil(t, rates)

		// All three source lists present, all empty
		assert.NotNil(t, rates.Raiffeisen)
		assert.Empty(t, rates.Raiffeisen)
		assert.NotNil(t, rates.PrivatBank)
		assert.Empty(t, rates.PrivatBank)
		assert.NotNil(t, rates.Bestobmin)
		assert.Empty(t, rates.Bestobmin)
	})

	t.Run("latest snapshot filtered by currency", func(t *testing.T) {
		t.Parallel()

		var (
			store = memory.NewStorage()
			e     = New(store)

			older = types.NewSnapshot(
				time.Date(2025, time.March, 10, 11, 0, 0, 0, types.KyivLocation()),
			)
			newer = types.NewSnapshot(
				time.Date(2025, time.March, 10, 12, 0, 0, 0, types.KyivLocation()),
			)
		)

		older.SetQuotes(types.SourcePrivatBank, []types.Quote{
			usdQuote("41.00", "41.50"),
		})

		newer.SetQuotes(types.SourcePrivatBank, []types.Quote{
			usdQuote("41.40", "42.02"),
			{
				Currency:     currencies.EUR,
				BaseCurrency: currencies.UAH,
				RateBuy:      "43.17",
				RateSell:     "44.05",
			},
		})

		require.NoError(t, store.SaveSnapshot(context.Background(), older))
		require.NoError(t, store.SaveSnapshot(context.Background(), newer))

		rates, err := e.ByCurrency(context.Background(), currencies.USD)

		require.NoError(t, err)
		require.NotNil(t, rates)

		assert.True(t, rates.Timestamp.Equal(newer.Timestamp))

		require.Len(t, rates.PrivatBank, 1)
		assert.Equal(t, usdQuote("41.40", "42.02"), rates.PrivatBank[0])

		assert.Empty(t, rates.Raiffeisen)
		assert.Empty(t, rates.Bestobmin)
	})
}

func TestEngine_ByCurrencyForPeriod(t *testing.T) {
	t.Parallel()

	var (
		loc = types.KyivLocation()
		now = time.Date(2025, time.March, 12, 12, 0, 0, 0, loc)
	)

	t.Run("empty log", func(t *testing.T) {
		t.Parallel()

		e := New(
			memory.NewStorage(),
			WithNow(func() time.Time {
				return now
			}),
		)

		rates, err := e.ByCurrencyForPeriod(context.Background(), currencies.USD, 7)

		require.NoError(t, err)
		require.NotNil(t, rates)

		assert.Equal(t, currencies.USD, rates.Currency)
		assert.Equal(t, 7, rates.PeriodDays)
		assert.Empty(t, rates.Data)
	})

	t.Run("storage error", func(t *testing.T) {
		t.Parallel()

		storage := &mock.Storage{
			SnapshotsSinceFn: func(_ context.Context, _ time.Time) ([]*types.Snapshot, error) {
				return nil, errors.New("storage error")
			},
		}

		e := New(storage)

		rates, err := e.ByCurrencyForPeriod(context.Background(), currencies.USD, 7)

		require.Error(t, err)
		assert.Nil(t, rates)
	})

	t.Run("cutoff respects the period", func(t *testing.T) {
		t.Parallel()

		var capturedCutoff time.Time

		storage := &mock.Storage{
			SnapshotsSinceFn: func(_ context.Context, cutoff time.Time) ([]*types.Snapshot, error) {
				capturedCutoff = cutoff

				return nil, nil
			},
		}

		e := New(
			storage,
			WithNow(func() time.Time {
				return now
			}),
		)

		_, err := e.ByCurrencyForPeriod(context.Background(), currencies.USD, 7)

		require.NoError(t, err)
		assert.True(t, capturedCutoff.Equal(now.AddDate(0, 0, -7)))
	})

	t.Run("sampled, filtered, empty points dropped", func(t *testing.T) {
		t.Parallel()

		store := memory.NewStorage()

		// Day one: two snapshots, 18h wins the bucket; only it carries USD
		withUSD := types.NewSnapshot(time.Date(2025, time.March, 10, 18, 0, 0, 0, loc))
		withUSD.SetQuotes(types.SourcePrivatBank, []types.Quote{
			usdQuote("41.40", "42.02"),
		})

		require.NoError(t, store.SaveSnapshot(
			context.Background(),
			types.NewSnapshot(time.Date(2025, time.March, 10, 9, 0, 0, 0, loc)),
		))
		require.NoError(t, store.SaveSnapshot(context.Background(), withUSD))

		// Day two: only EUR quotes, so the whole point is dropped
		withEUR := types.NewSnapshot(time.Date(2025, time.March, 11, 18, 0, 0, 0, loc))
		withEUR.SetQuotes(types.SourceRaiffeisen, []types.Quote{
			{
				Currency:     currencies.EUR,
				BaseCurrency: currencies.UAH,
				RateBuy:      "43.13",
				RateSell:     "43.82",
			},
		})

		require.NoError(t, store.SaveSnapshot(context.Background(), withEUR))

		e := New(
			store,
			WithNow(func() time.Time {
				return now
			}),
		)

		rates, err := e.ByCurrencyForPeriod(context.Background(), currencies.USD, 7)

		require.NoError(t, err)
		require.NotNil(t, rates)

		require.Len(t, rates.Data, 1)

		point := rates.Data[0]

		assert.True(t, point.Timestamp.Equal(withUSD.Timestamp))

		// Only the matching source appears in the point
		require.Len(t, point.Rates, 1)
		require.Len(t, point.Rates[types.SourcePrivatBank], 1)
		assert.Equal(t, usdQuote("41.40", "42.02"), point.Rates[types.SourcePrivatBank][0])
	})
}
