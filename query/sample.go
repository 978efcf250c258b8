package query

import (
	"sort"
	"time"

	"github.com/sig-0/uahrates/storage/types"
)

const (
	workingHoursStart = 8  // inclusive
	workingHoursEnd   = 20 // exclusive

	dailyTargetHour = 18
)

// sampleSnapshots downsamples an ascending snapshot range to one point
// per hour (1-day periods), or one point per day (longer periods).
// No points are ever fabricated: a bucket without snapshots simply
// yields nothing
func sampleSnapshots(
	snapshots []*types.Snapshot,
	periodDays int,
	location *time.Location,
) []*types.Snapshot {
	if periodDays == 1 {
		return sampleHourly(snapshots, location)
	}

	return sampleDaily(snapshots, location)
}

// sampleHourly keeps the first snapshot of every (date, hour) bucket,
// restricted to working hours [8, 20) in the reference timezone
func sampleHourly(snapshots []*types.Snapshot, location *time.Location) []*types.Snapshot {
	buckets := make(map[string]*types.Snapshot)

	for _, snapshot := range snapshots {
		local := snapshot.Timestamp.In(location)

		if local.Hour() < workingHoursStart || local.Hour() >= workingHoursEnd {
			continue
		}

		key := local.Format("2006-01-02 15")

		// First in ascending order wins the bucket
		if _, ok := buckets[key]; ok {
			continue
		}

		buckets[key] = snapshot
	}

	return sortedByTimestamp(buckets)
}

// sampleDaily keeps, for every local calendar date, the snapshot whose
// hour is closest to 18:00. Ties are resolved in favor of the snapshot
// encountered first in the ascending input (strict-less-than replacement)
func sampleDaily(snapshots []*types.Snapshot, location *time.Location) []*types.Snapshot {
	type candidate struct {
		snapshot *types.Snapshot
		distance int
	}

	buckets := make(map[string]candidate)

	for _, snapshot := range snapshots {
		var (
			local = snapshot.Timestamp.In(location)
			key   = local.Format("2006-01-02")
		)

		distance := local.Hour() - dailyTargetHour
		if distance < 0 {
			distance = -distance
		}

		current, ok := buckets[key]
		if !ok || distance < current.distance {
			buckets[key] = candidate{
				snapshot: snapshot,
				distance: distance,
			}
		}
	}

	kept := make(map[string]*types.Snapshot, len(buckets))
	for key, c := range buckets {
		kept[key] = c.snapshot
	}

	return sortedByTimestamp(kept)
}

// sortedByTimestamp flattens the bucket map, ascending by timestamp
func sortedByTimestamp(buckets map[string]*types.Snapshot) []*types.Snapshot {
	out := make([]*types.Snapshot, 0, len(buckets))

	for _, snapshot := range buckets {
		out = append(out, snapshot)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out
}
