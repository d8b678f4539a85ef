// Package tutor asks an LLM for a deeper explanation of an interview
// question than its one-line reference answer.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/netprep/internal/interview"
	"github.com/abhisek/netprep/internal/llm"
)

// ErrUnavailable is returned when no LLM provider is configured.
var ErrUnavailable = errors.New("tutor unavailable: no LLM provider configured")

// Purpose labels tutor requests in the LLM event log.
const Purpose = "explain"

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration // per request including retries; zero means none
}

// DefaultConfig returns sensible defaults for explanation generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.3,
		Timeout:     30 * time.Second,
	}
}

// Explanation is an LLM-generated deep dive on one interview question.
type Explanation struct {
	QuestionID int
	Summary    string
	KeyPoints  []string
	Example    string
	FollowUp   string
}

// Service generates explanations and caches them per question id for the
// life of the process.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger

	mu    sync.Mutex
	cache map[int]*Explanation
}

// NewService creates a tutor. provider may be nil, in which case every
// Explain call returns ErrUnavailable.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		provider: provider,
		cfg:      cfg,
		log:      log,
		cache:    make(map[int]*Explanation),
	}
}

// Available reports whether a provider is configured.
func (s *Service) Available() bool {
	return s != nil && s.provider != nil
}

// Cached returns a previously generated explanation.
func (s *Service) Cached(id int) (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.cache[id]
	return e, ok
}

type explanationOutput struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
	Example   string   `json:"example"`
	FollowUp  string   `json:"follow_up"`
}

// Explain returns the explanation for q, generating it on first use.
func (s *Service) Explain(ctx context.Context, q interview.Question) (*Explanation, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	if e, ok := s.Cached(q.ID); ok {
		return e, nil
	}

	s.log.Info("requesting explanation", zap.Int("question_id", q.ID), zap.String("category", string(q.Category)))

	prompt := llm.Prompt{
		System:      systemPrompt,
		User:        buildUserMessage(q),
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Complete(llm.WithPurpose(ctx, Purpose), prompt)
	if err != nil {
		s.log.Warn("explanation failed", zap.Int("question_id", q.ID), zap.Error(err))
		return nil, fmt.Errorf("explain question %d: %w", q.ID, err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.JSON, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	e := &Explanation{
		QuestionID: q.ID,
		Summary:    out.Summary,
		KeyPoints:  out.KeyPoints,
		Example:    out.Example,
		FollowUp:   out.FollowUp,
	}

	s.mu.Lock()
	s.cache[q.ID] = e
	s.mu.Unlock()

	return e, nil
}
