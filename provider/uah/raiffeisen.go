package uah

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/sig-0/uahrates/provider/currencies"
	"github.com/sig-0/uahrates/storage/types"
)

const currenciesAttr = ":currencies"

// raiffeisenRate is a single entry of the embedded currency table
type raiffeisenRate struct {
	Currency string `json:"currency"`
	RateBuy  string `json:"rate_buy"`
	RateSell string `json:"rate_sell"`
}

// RaiffeisenProvider scrapes the currency table embedded
// in the Raiffeisen landing page markup
type RaiffeisenProvider struct {
	client *http.Client
	url    string
}

// NewRaiffeisenProvider creates a new instance of the Raiffeisen website provider
func NewRaiffeisenProvider(url string, timeout time.Duration) *RaiffeisenProvider {
	return &RaiffeisenProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

func (p *RaiffeisenProvider) Name() string {
	return "Raiffeisen"
}

func (p *RaiffeisenProvider) Source() types.Source {
	return types.SourceRaiffeisen
}

func (p *RaiffeisenProvider) Fetch(ctx context.Context) ([]types.Quote, error) {
	doc, err := getDocument(ctx, p.client, p.url)
	if err != nil {
		return nil, err
	}

	container := doc.Find("div#currency-table")
	if container.Length() == 0 {
		return nil, fmt.Errorf("block with id %q not found", "currency-table")
	}

	elem := container.Find("currency-table").First()
	if elem.Length() == 0 {
		return nil, fmt.Errorf("element <currency-table> not found")
	}

	attr, ok := elem.Attr(currenciesAttr)
	if !ok || strings.TrimSpace(attr) == "" {
		return nil, fmt.Errorf("attribute %q not found", currenciesAttr)
	}

	// The attribute holds an HTML-entity escaped JSON array
	var rates []raiffeisenRate

	if err := json.Unmarshal([]byte(html.UnescapeString(attr)), &rates); err != nil {
		return nil, fmt.Errorf("unable to decode currency table JSON: %w", err)
	}

	quotes := make([]types.Quote, 0, len(rates))

	for _, rate := range rates {
		quotes = append(quotes, types.Quote{
			Currency:     types.Currency(strings.ToUpper(strings.TrimSpace(rate.Currency))),
			BaseCurrency: currencies.UAH,
			RateBuy:      rate.RateBuy,
			RateSell:     rate.RateSell,
		})
	}

	return quotes, nil
}
