package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sig-0/uahrates/storage/types"
)

var (
	errUnableToFetchRates = errors.New("unable to fetch rates")

	errInvalidCurrency = errors.New("invalid currency (must be 3 letters A-Z)")
	errInvalidPeriod   = errors.New("period must be numeric")
)

// ExchangeRates answers GET /api/exchange_rates?currency=XXX
// with the latest quotes for the currency
func (s *Server) ExchangeRates(w http.ResponseWriter, r *http.Request) {
	currency, err := parseCurrencyCode(r.URL.Query().Get("currency"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)

		return
	}

	rates, err := s.rates.ByCurrency(r.Context(), currency)
	if err != nil {
		s.logger.Debug(
			"unable to fetch rates",
			"currency", currency.String(),
			"err", err,
		)

		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchRates,
		)

		return
	}

	if rates == nil {
		// No data yet; an empty body, not an error
		writeJSON(w, http.StatusOK, struct{}{})

		return
	}

	writeJSON(w, http.StatusOK, rates)
}

// ExchangeRatesPeriod answers GET /api/exchange_rates_period?currency=XXX&period=N
// with the downsampled quote history over the trailing period
func (s *Server) ExchangeRatesPeriod(w http.ResponseWriter, r *http.Request) {
	currency, err := parseCurrencyCode(r.URL.Query().Get("currency"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)

		return
	}

	periodDays, err := parsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)

		return
	}

	rates, err := s.rates.ByCurrencyForPeriod(r.Context(), currency, periodDays)
	if err != nil {
		s.logger.Debug(
			"unable to fetch period rates",
			"currency", currency.String(),
			"period", periodDays,
			"err", err,
		)

		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchRates,
		)

		return
	}

	writeJSON(w, http.StatusOK, rates)
}

func parseCurrencyCode(v string) (types.Currency, error) {
	s := strings.ToUpper(strings.TrimSpace(v))
	if len(s) != 3 {
		return "", errInvalidCurrency
	}

	for i := 0; i < 3; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return "", errInvalidCurrency
		}
	}

	return types.Currency(s), nil
}

func parsePeriod(v string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, errInvalidPeriod
	}

	if !types.IsAllowedPeriod(days) {
		return 0, fmt.Errorf("allowed period values: %v", types.AllowedPeriods)
	}

	return days, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // Fine to ignore
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := &ErrorResponse{
		Error: err.Error(),
	}

	writeJSON(w, status, resp)
}
