package uah

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/sig-0/uahrates/provider/currencies"
	"github.com/sig-0/uahrates/storage/types"
)

// BestobminProvider scrapes the Bestobmin exchange point rate board
type BestobminProvider struct {
	client *http.Client
	url    string
}

// NewBestobminProvider creates a new instance of the Bestobmin website provider
func NewBestobminProvider(url string, timeout time.Duration) *BestobminProvider {
	return &BestobminProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

func (p *BestobminProvider) Name() string {
	return "Bestobmin"
}

func (p *BestobminProvider) Source() types.Source {
	return types.SourceBestobmin
}

func (p *BestobminProvider) Fetch(ctx context.Context) ([]types.Quote, error) {
	doc, err := getDocument(ctx, p.client, p.url)
	if err != nil {
		return nil, err
	}

	container := doc.Find("div#opt")
	if container.Length() == 0 {
		return nil, fmt.Errorf("container with id %q not found", "opt")
	}

	quotes := make([]types.Quote, 0, 8)

	// Each row yields a buy value, a currency label and a sell value.
	// Incomplete rows are skipped individually
	container.Find("div.row").Each(func(_ int, row *goquery.Selection) {
		rateBuy := strings.TrimSpace(row.Find("div.digit_bg.left_digit_bg p").First().Text())
		if rateBuy == "" {
			return
		}

		currency := strings.TrimSpace(row.Find("p.currency").First().Text())
		if currency == "" {
			return
		}

		rateSell := strings.TrimSpace(row.Find("div.digit_bg.right_digit_bg p").First().Text())
		if rateSell == "" {
			return
		}

		quotes = append(quotes, types.Quote{
			Currency:     types.Currency(strings.ToUpper(currency)),
			BaseCurrency: currencies.UAH,
			RateBuy:      rateBuy,
			RateSell:     rateSell,
		})
	})

	return quotes, nil
}
