package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendRevealEvent(ctx context.Context, data RevealEventData) error {
	return r.insert(ctx, RevealEventsTable.Name,
		[]string{"session_id", "question_id", "category"},
		[]any{data.SessionID, data.QuestionID, data.Category},
	)
}

func (r *eventRepo) RevealCounts(ctx context.Context) ([]RevealCount, error) {
	query, args := builder().Select(
		"category",
		entsql.As(entsql.Count("*"), "reveals"),
		entsql.As("COUNT(DISTINCT `question_id`)", "questions"),
	).
		From(entsql.Table(RevealEventsTable.Name)).
		GroupBy("category").
		OrderBy("category").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reveal counts: %w", err)
	}
	defer rows.Close()

	var out []RevealCount
	for rows.Next() {
		var rc RevealCount
		if err := rows.Scan(&rc.Category, &rc.Reveals, &rc.Questions); err != nil {
			return nil, fmt.Errorf("scan reveal count: %w", err)
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}
