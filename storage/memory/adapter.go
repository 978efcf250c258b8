package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/sig-0/uahrates/storage/types"
)

// Storage is an in-memory append-only snapshot log
type Storage struct {
	snapshots []types.Snapshot

	mu sync.RWMutex
}

func NewStorage() *Storage {
	return &Storage{
		snapshots: make([]types.Snapshot, 0),
	}
}

func (s *Storage) SaveSnapshot(_ context.Context, snapshot *types.Snapshot) error {
	elem := *snapshot
	if elem.ID == "" {
		elem.ID = xid.New().String()
	}

	// Missing source lists are kept as explicitly empty
	for _, src := range types.Sources() {
		if elem.QuotesFor(src) == nil {
			elem.SetQuotes(src, nil)
		}
	}

	s.mu.Lock()
	s.snapshots = append(s.snapshots, elem)
	s.mu.Unlock()

	return nil
}

func (s *Storage) LatestSnapshot(_ context.Context) (*types.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.snapshots) == 0 {
		return nil, nil //nolint:nilnil // valid case, empty log
	}

	// Appends are non-decreasing in practice, but out-of-order
	// timestamps are tolerated. Later appends win timestamp ties
	best := 0

	for i := 1; i < len(s.snapshots); i++ {
		if !s.snapshots[i].Timestamp.Before(s.snapshots[best].Timestamp) {
			best = i
		}
	}

	cp := s.snapshots[best]

	return &cp, nil
}

func (s *Storage) SnapshotsSince(_ context.Context, cutoff time.Time) ([]*types.Snapshot, error) {
	s.mu.RLock()

	out := make([]*types.Snapshot, 0, len(s.snapshots))

	for i := range s.snapshots {
		if s.snapshots[i].Timestamp.Before(cutoff) {
			continue
		}

		cp := s.snapshots[i]
		out = append(out, &cp)
	}

	s.mu.RUnlock()

	// Stable, so equal timestamps keep their append order
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out, nil
}
