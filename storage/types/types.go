package types

import "time"

type Currency string

const (
	CurrencyUAH Currency = "UAH"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) String() string {
	return string(c)
}

type Source string

const (
	SourceRaiffeisen Source = "Raiffeisen" // https://raiffeisen.ua/
	SourcePrivatBank Source = "PrivatBank" // https://api.privatbank.ua/
	SourceBestobmin  Source = "Bestobmin"  // https://bestobmin.com.ua/
)

func (s Source) String() string {
	return string(s)
}

// Sources returns the fixed source set, in canonical order
func Sources() []Source {
	return []Source{
		SourceRaiffeisen,
		SourcePrivatBank,
		SourceBestobmin,
	}
}

// Quote is a single normalized buy / sell quote for a currency.
// Rates are kept as the exact decimal strings emitted by the source,
// since sources differ in precision and formatting
type Quote struct {
	Currency     Currency `json:"currency"`
	BaseCurrency Currency `json:"base_currency"`
	RateBuy      string   `json:"rate_buy"`
	RateSell     string   `json:"rate_sell"`
}

// Snapshot is one ingestion round's set of per-source quote lists.
// All three source fields are always present on the wire, an empty
// list (never null) marks a source that yielded no quotes.
// A snapshot is immutable once appended to storage
type Snapshot struct {
	ID         string    `json:"id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Raiffeisen []Quote   `json:"Raiffeisen"`
	PrivatBank []Quote   `json:"PrivatBank"`
	Bestobmin  []Quote   `json:"Bestobmin"`
}

// NewSnapshot creates an empty snapshot with all source lists initialized
func NewSnapshot(timestamp time.Time) *Snapshot {
	return &Snapshot{
		Timestamp:  timestamp,
		Raiffeisen: []Quote{},
		PrivatBank: []Quote{},
		Bestobmin:  []Quote{},
	}
}

// QuotesFor returns the quote list for the given source
func (s *Snapshot) QuotesFor(src Source) []Quote {
	switch src {
	case SourceRaiffeisen:
		return s.Raiffeisen
	case SourcePrivatBank:
		return s.PrivatBank
	case SourceBestobmin:
		return s.Bestobmin
	default:
		return nil
	}
}

// SetQuotes replaces the quote list for the given source.
// A nil list is stored as an empty one
func (s *Snapshot) SetQuotes(src Source, quotes []Quote) {
	if quotes == nil {
		quotes = []Quote{}
	}

	switch src {
	case SourceRaiffeisen:
		s.Raiffeisen = quotes
	case SourcePrivatBank:
		s.PrivatBank = quotes
	case SourceBestobmin:
		s.Bestobmin = quotes
	}
}

// CurrencyRates is the latest-quote view for a single currency.
// All three source fields are present even when no quote matched
type CurrencyRates struct {
	Timestamp  time.Time `json:"timestamp"`
	Raiffeisen []Quote   `json:"Raiffeisen"`
	PrivatBank []Quote   `json:"PrivatBank"`
	Bestobmin  []Quote   `json:"Bestobmin"`
}

// PeriodPoint is one sampled point of a period query.
// Rates only carries sources with at least one matching quote
type PeriodPoint struct {
	Timestamp time.Time          `json:"timestamp"`
	Rates     map[Source][]Quote `json:"rates"`
}

// PeriodRates is the history view for a single currency over a period
type PeriodRates struct {
	Currency   Currency      `json:"currency"`
	PeriodDays int           `json:"period_days"`
	Data       []PeriodPoint `json:"data"`
}

// AllowedPeriods lists the supported period lengths, in days
var AllowedPeriods = []int{1, 3, 7, 30, 90, 180, 360}

// IsAllowedPeriod reports whether the given period length is supported
func IsAllowedPeriod(days int) bool {
	for _, allowed := range AllowedPeriods {
		if days == allowed {
			return true
		}
	}

	return false
}
