// Package session records study and interview sessions in the event store.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/netprep/internal/interview"
	"github.com/abhisek/netprep/internal/store"
)

// Tracker appends the events of one session. A Tracker with a nil repo
// records nothing, so screens can run without a store.
type Tracker struct {
	repo store.EventRepo
	mode string
	id   string
	log  *zap.Logger

	mu      sync.Mutex
	started bool
	ended   bool
}

// New creates a Tracker for a session in the given mode (store.ModeStudy or
// store.ModeInterview) with a fresh session id.
func New(repo store.EventRepo, mode string, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New().String()
	return &Tracker{
		repo: repo,
		mode: mode,
		id:   id,
		log:  log.With(zap.String("session_id", id), zap.String("mode", mode)),
	}
}

// ID returns the session id.
func (t *Tracker) ID() string { return t.id }

// Mode returns the session mode.
func (t *Tracker) Mode() string { return t.mode }

// Start appends the session start event. Later calls are no-ops.
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return nil
	}
	t.started = true
	return t.appendSession(ctx, store.ActionStart)
}

// End appends the session end event once, and only after Start.
func (t *Tracker) End(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started || t.ended {
		return nil
	}
	t.ended = true
	return t.appendSession(ctx, store.ActionEnd)
}

func (t *Tracker) appendSession(ctx context.Context, action string) error {
	if t.repo == nil {
		return nil
	}
	err := t.repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: t.id,
		Mode:      t.mode,
		Action:    action,
	})
	if err != nil {
		t.log.Warn("failed to record session event", zap.String("action", action), zap.Error(err))
		return fmt.Errorf("record session %s: %w", action, err)
	}
	t.log.Debug("session event recorded", zap.String("action", action))
	return nil
}

// StudyViewed records that a sub-topic was opened.
func (t *Tracker) StudyViewed(ctx context.Context, topicID, subTopicID string) error {
	if t.repo == nil {
		return nil
	}
	err := t.repo.AppendStudyEvent(ctx, store.StudyEventData{
		SessionID:  t.id,
		TopicID:    topicID,
		SubTopicID: subTopicID,
	})
	if err != nil {
		t.log.Warn("failed to record study event", zap.String("topic", topicID), zap.String("subtopic", subTopicID), zap.Error(err))
		return fmt.Errorf("record study view: %w", err)
	}
	return nil
}

// Revealed records that the answer to q was expanded.
func (t *Tracker) Revealed(ctx context.Context, q interview.Question) error {
	if t.repo == nil {
		return nil
	}
	err := t.repo.AppendRevealEvent(ctx, store.RevealEventData{
		SessionID:  t.id,
		QuestionID: q.ID,
		Category:   string(q.Category),
	})
	if err != nil {
		t.log.Warn("failed to record reveal event", zap.Int("question_id", q.ID), zap.Error(err))
		return fmt.Errorf("record reveal: %w", err)
	}
	return nil
}
