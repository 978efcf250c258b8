package sql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/xid"

	"github.com/sig-0/uahrates/storage"
	"github.com/sig-0/uahrates/storage/types"
)

const (
	saveSnapshotQuery = `INSERT INTO snapshots (id, ts, raiffeisen, privatbank, bestobmin)
VALUES ($1, $2, $3, $4, $5)`

	latestSnapshotQuery = `SELECT id, ts, raiffeisen, privatbank, bestobmin
FROM snapshots
ORDER BY ts DESC, id DESC
LIMIT 1`

	snapshotsSinceQuery = `SELECT id, ts, raiffeisen, privatbank, bestobmin
FROM snapshots
WHERE ts >= $1
ORDER BY ts ASC, id ASC`
)

// Storage is the PostgreSQL-backed snapshot log.
// Each snapshot is one row, with a jsonb quote list per source
type Storage struct {
	pool *pgxpool.Pool
}

func NewStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{
		pool: pool,
	}
}

func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *types.Snapshot) error {
	id := snapshot.ID
	if id == "" {
		id = xid.New().String()
	}

	var lists [3][]byte

	for i, src := range types.Sources() {
		quotes := snapshot.QuotesFor(src)
		if quotes == nil {
			quotes = []types.Quote{}
		}

		encoded, err := json.Marshal(quotes)
		if err != nil {
			return fmt.Errorf("unable to encode %s quotes: %w", src, err)
		}

		lists[i] = encoded
	}

	_, err := s.pool.Exec(
		ctx,
		saveSnapshotQuery,
		id,
		timeToTimestampz(snapshot.Timestamp),
		lists[0],
		lists[1],
		lists[2],
	)
	if err != nil {
		return fmt.Errorf("%w: unable to save snapshot: %s", storage.ErrUnavailable, err)
	}

	return nil
}

func (s *Storage) LatestSnapshot(ctx context.Context) (*types.Snapshot, error) {
	row := s.pool.QueryRow(ctx, latestSnapshotQuery)

	snapshot, err := scanSnapshot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil //nolint:nilnil // valid case, empty log
		}

		return nil, fmt.Errorf("%w: unable to fetch latest snapshot: %s", storage.ErrUnavailable, err)
	}

	return snapshot, nil
}

func (s *Storage) SnapshotsSince(ctx context.Context, cutoff time.Time) ([]*types.Snapshot, error) {
	rows, err := s.pool.Query(ctx, snapshotsSinceQuery, timeToTimestampz(cutoff))
	if err != nil {
		return nil, fmt.Errorf("%w: unable to fetch snapshots: %s", storage.ErrUnavailable, err)
	}
	defer rows.Close()

	var out []*types.Snapshot

	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to scan snapshot: %s", storage.ErrUnavailable, err)
		}

		out = append(out, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: unable to read snapshots: %s", storage.ErrUnavailable, err)
	}

	return out, nil
}

// scanSnapshot parses a snapshot row into the common Go type
func scanSnapshot(row pgx.Row) (*types.Snapshot, error) {
	var (
		id    string
		ts    pgtype.Timestamptz
		lists [3][]byte
	)

	if err := row.Scan(&id, &ts, &lists[0], &lists[1], &lists[2]); err != nil {
		return nil, err
	}

	snapshot := types.NewSnapshot(timestampzToTime(ts))
	snapshot.ID = id

	for i, src := range types.Sources() {
		var quotes []types.Quote

		if err := json.Unmarshal(lists[i], &quotes); err != nil {
			return nil, fmt.Errorf("unable to decode %s quotes: %w", src, err)
		}

		snapshot.SetQuotes(src, quotes)
	}

	return snapshot, nil
}

// timeToTimestampz converts the time value to postgres timestamp
func timeToTimestampz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:  t.UTC(),
		Valid: true,
	}
}

// timestampzToTime converts the postgres timestamp value back into
// the reference timezone, so bucketing sees local hours and dates
func timestampzToTime(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}

	return ts.Time.In(types.KyivLocation())
}
