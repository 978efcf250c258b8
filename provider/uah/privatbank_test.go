package uah

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-0/uahrates/provider/currencies"
)

func TestPrivatBank_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("valid response", func(t *testing.T) {
		t.Parallel()

		rates := []privatBankRate{
			{
				Ccy:     "USD",
				BaseCcy: "UAH",
				Buy:     "41.40",
				Sale:    "42.02",
			},
			{
				Ccy:     "EUR",
				BaseCcy: "UAH",
				Buy:     "43.05",
				Sale:    "43.95",
			},
		}

		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")

				require.NoError(t, json.NewEncoder(w).Encode(rates))
			},
		))
		defer srv.Close()

		p := NewPrivatBankProvider(srv.URL, time.Second*5)

		assert.Equal(t, "PrivatBank", p.Name())

		quotes, err := p.Fetch(context.Background())

		require.NoError(t, err)
		require.Len(t, quotes, len(rates))

		for i, quote := range quotes {
			assert.Equal(t, rates[i].Ccy, string(quote.Currency))
			assert.Equal(t, currencies.UAH, quote.BaseCurrency)
			assert.Equal(t, rates[i].Buy, quote.RateBuy)
			assert.Equal(t, rates[i].Sale, quote.RateSell)
		}
	})

	t.Run("malformed response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not JSON"))
			},
		))
		defer srv.Close()

		p := NewPrivatBankProvider(srv.URL, time.Second*5)

		quotes, err := p.Fetch(context.Background())

		require.Error(t, err)
		assert.Nil(t, quotes)
	})

	t.Run("invalid status code", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		))
		defer srv.Close()

		p := NewPrivatBankProvider(srv.URL, time.Second*5)

		_, err := p.Fetch(context.Background())

		assert.Error(t, err)
	})
}
