package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const awardTable = "award_events"

type awardRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *awardRepo) AppendAward(ctx context.Context, data AwardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(awardTable).
		Columns("sequence", "timestamp", "session_id", "game", "points", "total").
		Values(seqNum, time.Now().UTC().Format(time.RFC3339Nano), data.SessionID, data.Game, data.Points, data.Total).
		Query()

	if err := exec(ctx, r.drv, query, args); err != nil {
		return fmt.Errorf("save award event: %w", err)
	}
	return nil
}

func (r *awardRepo) RecentAwards(ctx context.Context, limit int) ([]AwardRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("sequence", "timestamp", "session_id", "game", "points", "total").
		From(entsql.Table(awardTable)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query award events: %w", err)
	}
	defer rows.Close()

	var records []AwardRecord
	for rows.Next() {
		var (
			rec AwardRecord
			ts  string
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Game, &rec.Points, &rec.Total); err != nil {
			return nil, fmt.Errorf("scan award event: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.Timestamp = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *awardRepo) TotalsByGame(ctx context.Context) (map[string]int, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("game", entsql.As(entsql.Sum("points"), "points")).
		From(entsql.Table(awardTable)).
		GroupBy("game").
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query award totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var (
			g      string
			points int
		)
		if err := rows.Scan(&g, &points); err != nil {
			return nil, fmt.Errorf("scan award total: %w", err)
		}
		totals[g] = points
	}
	return totals, rows.Err()
}

func (r *awardRepo) ClearAwards(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).Delete(awardTable).Query()
	if err := exec(ctx, r.drv, query, args); err != nil {
		return fmt.Errorf("clear award events: %w", err)
	}
	return nil
}
