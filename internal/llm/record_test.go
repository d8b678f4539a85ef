package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/netprep/internal/store"
)

type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestRecord_Success(t *testing.T) {
	fake := NewFake(Reply{JSON: json.RawMessage(`{"summary":"ok"}`), InputTokens: 12, OutputTokens: 34})
	repo := &recordingRepo{}
	p := Record(fake, "anthropic", repo, nil)

	ctx := WithPurpose(context.Background(), "explain")
	_, err := p.Complete(ctx, Prompt{
		System: "sys",
		User:   "What is VPN?",
		Schema: &Schema{Name: "s", Definition: map[string]any{"type": "object"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "anthropic" || e.Model != "mock" || e.Purpose != "explain" {
		t.Errorf("event identity = %+v", e)
	}
	if !e.Success || e.InputTokens != 12 || e.OutputTokens != 34 {
		t.Errorf("event usage = %+v", e)
	}
	for _, want := range []string{"[system]\nsys", "[user]\nWhat is VPN?", "[schema s]"} {
		if !strings.Contains(e.RequestBody, want) {
			t.Errorf("request body %q missing %q", e.RequestBody, want)
		}
	}
	if e.ResponseBody != `{"summary":"ok"}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestRecord_Failure(t *testing.T) {
	fake := NewFake(Reply{Err: &Error{Kind: KindRateLimited, Err: errors.New("429")}})
	repo := &recordingRepo{}

	_, err := Record(fake, "openai", repo, nil).Complete(context.Background(), Prompt{User: "q"})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Success || !strings.Contains(e.ErrorMessage, "rate limited") || e.Purpose != "unknown" {
		t.Errorf("event = %+v", e)
	}
}

func TestRecord_RepoFailureIsLoggedNotReturned(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	fake := NewFake(Reply{JSON: json.RawMessage(`{}`)})
	repo := &recordingRepo{err: errors.New("disk full")}

	if _, err := Record(fake, "gemini", repo, zap.New(core)).Complete(context.Background(), Prompt{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logs.FilterMessage("record LLM request").Len() != 1 {
		t.Errorf("expected one warning, got %v", logs.All())
	}
}

func TestRecord_EveryRetryIsRecorded(t *testing.T) {
	fake := NewFake(Reply{Err: down()}, Reply{JSON: json.RawMessage(`{}`)})
	repo := &recordingRepo{}
	p := Retry(Record(fake, "openai", repo, nil), fastPolicy(), nil)

	if _, err := p.Complete(context.Background(), Prompt{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.events) != 2 || repo.events[0].Success || !repo.events[1].Success {
		t.Errorf("events = %+v", repo.events)
	}
}
