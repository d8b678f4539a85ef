package store

import "context"

func (r *eventRepo) AppendStudyEvent(ctx context.Context, data StudyEventData) error {
	return r.insert(ctx, StudyEventsTable.Name,
		[]string{"session_id", "topic_id", "subtopic_id"},
		[]any{data.SessionID, data.TopicID, data.SubTopicID},
	)
}

func (r *eventRepo) StudyCounts(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, StudyEventsTable.Name, "topic_id", nil)
}
