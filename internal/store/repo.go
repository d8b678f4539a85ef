package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only; empty matches all
}

// Session modes.
const (
	ModeStudy     = "study"
	ModeInterview = "interview"
)

// Session actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// SessionEventData marks the start or end of a study or interview session.
type SessionEventData struct {
	SessionID string
	Mode      string
	Action    string
}

// StudyEventData records that a sub-topic was opened.
type StudyEventData struct {
	SessionID  string
	TopicID    string
	SubTopicID string
}

// RevealEventData records that an interview answer was expanded.
type RevealEventData struct {
	SessionID  string
	QuestionID int
	Category   string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionSummaryRecord is one session as shown by the history screen.
type SessionSummaryRecord struct {
	SessionID  string
	Mode       string
	StartedAt  time.Time
	EndedAt    time.Time // zero while the session is open or was interrupted
	Reveals    int
	StudyViews int
}

// Duration returns how long the session ran, or zero if it never ended.
func (r SessionSummaryRecord) Duration() time.Duration {
	if r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// RevealCount aggregates reveal events for one category.
type RevealCount struct {
	Category  string
	Reveals   int
	Questions int // distinct question ids
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates LLM usage for one purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendStudyEvent(ctx context.Context, data StudyEventData) error
	AppendRevealEvent(ctx context.Context, data RevealEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuerySessionSummaries returns sessions newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// RevealCounts returns reveal totals per category, ordered by category.
	RevealCounts(ctx context.Context) ([]RevealCount, error)

	// StudyCounts returns the number of sub-topic views per topic id.
	StudyCounts(ctx context.Context) (map[string]int, error)

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns ErrNotFound for an unknown id.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
