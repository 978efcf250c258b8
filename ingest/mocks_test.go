package ingest

import (
	"context"

	"github.com/sig-0/uahrates/storage/types"
)

type (
	nameDelegate   func() string
	sourceDelegate func() types.Source
	fetchDelegate  func(context.Context) ([]types.Quote, error)
)

type mockProvider struct {
	nameFn   nameDelegate
	sourceFn sourceDelegate
	fetchFn  fetchDelegate
}

func (m *mockProvider) Name() string {
	if m.nameFn != nil {
		return m.nameFn()
	}

	return ""
}

func (m *mockProvider) Source() types.Source {
	if m.sourceFn != nil {
		return m.sourceFn()
	}

	return ""
}

func (m *mockProvider) Fetch(ctx context.Context) ([]types.Quote, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx)
	}

	return nil, nil
}
