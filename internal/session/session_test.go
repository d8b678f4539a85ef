package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/netprep/internal/interview"
	"github.com/abhisek/netprep/internal/store"
)

// fakeRepo records appended events. Methods it does not override panic via
// the nil embedded interface.
type fakeRepo struct {
	store.EventRepo
	sessions []store.SessionEventData
	studies  []store.StudyEventData
	reveals  []store.RevealEventData
	err      error
}

func (f *fakeRepo) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	if f.err != nil {
		return f.err
	}
	f.sessions = append(f.sessions, d)
	return nil
}

func (f *fakeRepo) AppendStudyEvent(_ context.Context, d store.StudyEventData) error {
	if f.err != nil {
		return f.err
	}
	f.studies = append(f.studies, d)
	return nil
}

func (f *fakeRepo) AppendRevealEvent(_ context.Context, d store.RevealEventData) error {
	if f.err != nil {
		return f.err
	}
	f.reveals = append(f.reveals, d)
	return nil
}

func TestTracker_Lifecycle(t *testing.T) {
	repo := &fakeRepo{}
	tr := New(repo, store.ModeInterview, nil)
	ctx := context.Background()

	require.NotEmpty(t, tr.ID())
	assert.Equal(t, store.ModeInterview, tr.Mode())

	require.NoError(t, tr.End(ctx), "end before start is a no-op")
	assert.Empty(t, repo.sessions)

	require.NoError(t, tr.Start(ctx))
	require.NoError(t, tr.Start(ctx))
	require.NoError(t, tr.Revealed(ctx, interview.Question{ID: 39, Category: interview.CategorySecurity}))
	require.NoError(t, tr.End(ctx))
	require.NoError(t, tr.End(ctx))

	require.Len(t, repo.sessions, 2)
	assert.Equal(t, store.ActionStart, repo.sessions[0].Action)
	assert.Equal(t, store.ActionEnd, repo.sessions[1].Action)
	assert.Equal(t, tr.ID(), repo.sessions[0].SessionID)

	require.Len(t, repo.reveals, 1)
	assert.Equal(t, store.RevealEventData{SessionID: tr.ID(), QuestionID: 39, Category: "Security"}, repo.reveals[0])
}

func TestTracker_StudyViewed(t *testing.T) {
	repo := &fakeRepo{}
	tr := New(repo, store.ModeStudy, nil)

	require.NoError(t, tr.StudyViewed(context.Background(), "models", "osi"))
	require.Len(t, repo.studies, 1)
	assert.Equal(t, "osi", repo.studies[0].SubTopicID)
}

func TestTracker_DistinctIDs(t *testing.T) {
	a := New(nil, store.ModeStudy, nil)
	b := New(nil, store.ModeStudy, nil)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestTracker_NilRepo(t *testing.T) {
	tr := New(nil, store.ModeStudy, nil)
	ctx := context.Background()
	assert.NoError(t, tr.Start(ctx))
	assert.NoError(t, tr.StudyViewed(ctx, "basics", "definition"))
	assert.NoError(t, tr.Revealed(ctx, interview.Question{ID: 1}))
	assert.NoError(t, tr.End(ctx))
}

func TestTracker_RepoError(t *testing.T) {
	boom := errors.New("disk full")
	tr := New(&fakeRepo{err: boom}, store.ModeStudy, nil)

	err := tr.Start(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, tr.StudyViewed(context.Background(), "a", "b"), boom)
}
