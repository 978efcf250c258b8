package serve

import (
	"time"

	"github.com/sig-0/uahrates/ingest"
	"github.com/sig-0/uahrates/provider/uah"
)

// defaultProviders returns the default ingestion providers
func defaultProviders(fetchTimeout time.Duration) []ingest.Provider {
	var (
		// Currency table embedded in the landing page markup
		raiffeisenProvider = uah.NewRaiffeisenProvider(
			"https://raiffeisen.ua/",
			fetchTimeout,
		)

		// Public REST API
		privatBankProvider = uah.NewPrivatBankProvider(
			"https://api.privatbank.ua/p24api/pubinfo?exchange&json&coursid=11",
			fetchTimeout,
		)

		// Scraped exchange point rate board
		bestobminProvider = uah.NewBestobminProvider(
			"https://bestobmin.com.ua",
			fetchTimeout,
		)
	)

	return []ingest.Provider{
		raiffeisenProvider,
		privatBankProvider,
		bestobminProvider,
	}
}
