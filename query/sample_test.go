package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-0/uahrates/storage/types"
)

// snapshotAt creates an empty snapshot timestamped at the given
// local Kyiv time
func snapshotAt(t *testing.T, year int, month time.Month, day, hour, minute int) *types.Snapshot {
	t.Helper()

	return types.NewSnapshot(
		time.Date(year, month, day, hour, minute, 0, 0, types.KyivLocation()),
	)
}

func timestamps(snapshots []*types.Snapshot) []string {
	out := make([]string, 0, len(snapshots))

	for _, snapshot := range snapshots {
		out = append(out, snapshot.Timestamp.Format("2006-01-02 15:04"))
	}

	return out
}

func TestSample_Hourly(t *testing.T) {
	t.Parallel()

	t.Run("working hours bound and first-wins buckets", func(t *testing.T) {
		t.Parallel()

		input := []*types.Snapshot{
			snapshotAt(t, 2025, time.March, 10, 7, 59),  // before working hours
			snapshotAt(t, 2025, time.March, 10, 8, 0),   // kept
			snapshotAt(t, 2025, time.March, 10, 8, 30),  // same hour bucket, dropped
			snapshotAt(t, 2025, time.March, 10, 9, 15),  // kept
			snapshotAt(t, 2025, time.March, 10, 19, 59), // kept
			snapshotAt(t, 2025, time.March, 10, 20, 0),  // after working hours
		}

		sampled := sampleSnapshots(input, 1, types.KyivLocation())

		assert.Equal(
			t,
			[]string{
				"2025-03-10 08:00",
				"2025-03-10 09:15",
				"2025-03-10 19:59",
			},
			timestamps(sampled),
		)
	})

	t.Run("buckets split across days", func(t *testing.T) {
		t.Parallel()

		input := []*types.Snapshot{
			snapshotAt(t, 2025, time.March, 10, 10, 0),
			snapshotAt(t, 2025, time.March, 11, 10, 0), // same hour, different date
		}

		sampled := sampleSnapshots(input, 1, types.KyivLocation())

		assert.Len(t, sampled, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		sampled := sampleSnapshots(nil, 1, types.KyivLocation())

		assert.Empty(t, sampled)
	})
}

func TestSample_Daily(t *testing.T) {
	t.Parallel()

	t.Run("closest to 18h wins", func(t *testing.T) {
		t.Parallel()

		input := []*types.Snapshot{
			snapshotAt(t, 2025, time.March, 10, 16, 0), // distance 2
			snapshotAt(t, 2025, time.March, 10, 18, 5), // distance 0, kept
		}

		sampled := sampleSnapshots(input, 7, types.KyivLocation())

		assert.Equal(
			t,
			[]string{"2025-03-10 18:05"},
			timestamps(sampled),
		)
	})

	t.Run("equal distance keeps first encountered", func(t *testing.T) {
		t.Parallel()

		input := []*types.Snapshot{
			snapshotAt(t, 2025, time.March, 10, 17, 0), // distance 1, first
			snapshotAt(t, 2025, time.March, 10, 19, 0), // distance 1, never replaces
		}

		sampled := sampleSnapshots(input, 7, types.KyivLocation())

		assert.Equal(
			t,
			[]string{"2025-03-10 17:00"},
			timestamps(sampled),
		)
	})

	t.Run("one point per day, ascending", func(t *testing.T) {
		t.Parallel()

		input := []*types.Snapshot{
			snapshotAt(t, 2025, time.March, 10, 9, 0),
			snapshotAt(t, 2025, time.March, 10, 18, 0),
			snapshotAt(t, 2025, time.March, 11, 12, 0),
			snapshotAt(t, 2025, time.March, 12, 17, 30),
			snapshotAt(t, 2025, time.March, 12, 23, 0),
		}

		sampled := sampleSnapshots(input, 30, types.KyivLocation())

		require.Len(t, sampled, 3)
		assert.Equal(
			t,
			[]string{
				"2025-03-10 18:00",
				"2025-03-11 12:00",
				"2025-03-12 17:30",
			},
			timestamps(sampled),
		)
	})

	t.Run("no fabricated points", func(t *testing.T) {
		t.Parallel()

		// A single-day input over a 7 day period yields a single point
		input := []*types.Snapshot{
			snapshotAt(t, 2025, time.March, 10, 18, 0),
		}

		sampled := sampleSnapshots(input, 7, types.KyivLocation())

		assert.Len(t, sampled, 1)
	})
}
