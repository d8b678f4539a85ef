package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	return r.insert(ctx, SessionEventsTable.Name,
		[]string{"session_id", "mode", "action"},
		[]any{data.SessionID, data.Mode, data.Action},
	)
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	sel := builder().Select("session_id", "mode", "timestamp").
		From(entsql.Table(SessionEventsTable.Name)).
		Where(entsql.EQ("action", ActionStart)).
		OrderBy(entsql.Desc("sequence"))
	query, args := applyOpts(sel, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	var records []SessionSummaryRecord
	for rows.Next() {
		var rec SessionSummaryRecord
		if err := rows.Scan(&rec.SessionID, &rec.Mode, &rec.StartedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan session: %w", err)
		}
		records = append(records, rec)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	ids := make([]any, len(records))
	for i, rec := range records {
		ids[i] = rec.SessionID
	}

	ended, err := r.sessionEnds(ctx, ids)
	if err != nil {
		return nil, err
	}
	reveals, err := r.countBy(ctx, RevealEventsTable.Name, "session_id", entsql.In("session_id", ids...))
	if err != nil {
		return nil, err
	}
	views, err := r.countBy(ctx, StudyEventsTable.Name, "session_id", entsql.In("session_id", ids...))
	if err != nil {
		return nil, err
	}

	for i := range records {
		id := records[i].SessionID
		records[i].EndedAt = ended[id]
		records[i].Reveals = reveals[id]
		records[i].StudyViews = views[id]
	}
	return records, nil
}

// sessionEnds returns the end timestamp of each of the given sessions that
// has one.
func (r *eventRepo) sessionEnds(ctx context.Context, ids []any) (map[string]time.Time, error) {
	query, args := builder().Select("session_id", "timestamp").
		From(entsql.Table(SessionEventsTable.Name)).
		Where(entsql.And(
			entsql.EQ("action", ActionEnd),
			entsql.In("session_id", ids...),
		)).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session ends: %w", err)
	}
	defer rows.Close()

	out := make(map[string]time.Time, len(ids))
	for rows.Next() {
		var id string
		var ts time.Time
		if err := rows.Scan(&id, &ts); err != nil {
			return nil, fmt.Errorf("scan session end: %w", err)
		}
		out[id] = ts
	}
	return out, rows.Err()
}
