package mock

import (
	"context"
	"time"

	"github.com/sig-0/uahrates/storage/types"
)

type (
	SaveSnapshotDelegate   func(context.Context, *types.Snapshot) error
	LatestSnapshotDelegate func(context.Context) (*types.Snapshot, error)
	SnapshotsSinceDelegate func(context.Context, time.Time) ([]*types.Snapshot, error)
)

type Storage struct {
	SaveSnapshotFn   SaveSnapshotDelegate
	LatestSnapshotFn LatestSnapshotDelegate
	SnapshotsSinceFn SnapshotsSinceDelegate
}

func (m *Storage) SaveSnapshot(ctx context.Context, snapshot *types.Snapshot) error {
	if m.SaveSnapshotFn != nil {
		return m.SaveSnapshotFn(ctx, snapshot)
	}

	return nil
}

func (m *Storage) LatestSnapshot(ctx context.Context) (*types.Snapshot, error) {
	if m.LatestSnapshotFn != nil {
		return m.LatestSnapshotFn(ctx)
	}

	return nil, nil //nolint:nilnil // valid case
}

func (m *Storage) SnapshotsSince(ctx context.Context, cutoff time.Time) ([]*types.Snapshot, error) {
	if m.SnapshotsSinceFn != nil {
		return m.SnapshotsSinceFn(ctx, cutoff)
	}

	return nil, nil
}
