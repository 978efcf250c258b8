package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sig-0/uahrates/storage/types"
)

// ErrUnavailable indicates the underlying store cannot be reached.
// Adapters wrap connection and execution failures with it so callers
// can decide whether to retry, log, or surface the failure
var ErrUnavailable = errors.New("storage unavailable")

// Storage is an abstraction over the append-only snapshot log
type Storage interface {
	// SaveSnapshot appends the given snapshot to the log
	SaveSnapshot(context.Context, *types.Snapshot) error

	// LatestSnapshot fetches the most recent snapshot by timestamp,
	// or nil if the log is empty
	LatestSnapshot(context.Context) (*types.Snapshot, error)

	// SnapshotsSince fetches all snapshots with a timestamp at or after
	// the cutoff, ascending by timestamp
	SnapshotsSince(context.Context, time.Time) ([]*types.Snapshot, error)
}
