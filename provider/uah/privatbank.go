//nolint:tagliatelle // PrivatBank API uses its own field names
package uah

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sig-0/uahrates/storage/types"
)

// privatBankRate is a single quote record of the pubinfo API
type privatBankRate struct {
	Ccy     string `json:"ccy"`
	BaseCcy string `json:"base_ccy"`
	Buy     string `json:"buy"`
	Sale    string `json:"sale"`
}

// PrivatBankProvider fetches quotes from the PrivatBank public REST API
type PrivatBankProvider struct {
	client *http.Client
	url    string
}

// NewPrivatBankProvider creates a new instance of the PrivatBank API provider
func NewPrivatBankProvider(url string, timeout time.Duration) *PrivatBankProvider {
	return &PrivatBankProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

func (p *PrivatBankProvider) Name() string {
	return "PrivatBank"
}

func (p *PrivatBankProvider) Source() types.Source {
	return types.SourcePrivatBank
}

func (p *PrivatBankProvider) Fetch(ctx context.Context) ([]types.Quote, error) {
	resp, err := getResponse(ctx, p.client, p.url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var rates []privatBankRate

	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return nil, fmt.Errorf("unable to decode response: %w", err)
	}

	quotes := make([]types.Quote, 0, len(rates))

	for _, rate := range rates {
		quotes = append(quotes, types.Quote{
			Currency:     types.Currency(strings.ToUpper(strings.TrimSpace(rate.Ccy))),
			BaseCurrency: types.Currency(rate.BaseCcy),
			RateBuy:      rate.Buy,
			RateSell:     rate.Sale,
		})
	}

	return quotes, nil
}
