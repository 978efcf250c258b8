package ingest

import (
	"context"

	"github.com/sig-0/uahrates/storage/types"
)

// Provider is a single custom quote provider
type Provider interface {
	// Name returns the human-readable name of the provider
	Name() string

	// Source returns the snapshot source the provider feeds
	Source() types.Source

	// Fetch is the provider's main fetch job, yielding normalized quotes
	Fetch(context.Context) ([]types.Quote, error)
}
