package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// Reply is one scripted outcome for a Fake.
type Reply struct {
	JSON         json.RawMessage
	InputTokens  int
	OutputTokens int
	Err          error
}

// Fake is a scripted Provider for tests and the "mock" provider setting.
// Replies are consumed in order; once they run out every call fails with
// KindUnavailable.
type Fake struct {
	mu      sync.Mutex
	replies []Reply
	prompts []Prompt
}

// NewFake returns a Fake that answers with replies in order.
func NewFake(replies ...Reply) *Fake {
	return &Fake{replies: replies}
}

func (f *Fake) Model() string { return "mock" }

func (f *Fake) Complete(_ context.Context, pr Prompt) (*Completion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, pr)
	if len(f.replies) == 0 {
		return nil, &Error{Kind: KindUnavailable, Err: errors.New("fake: no replies left")}
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	if r.Err != nil {
		return nil, r.Err
	}
	return &Completion{JSON: r.JSON, Model: "mock", InputTokens: r.InputTokens, OutputTokens: r.OutputTokens}, nil
}

// Queue appends replies.
func (f *Fake) Queue(replies ...Reply) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, replies...)
}

// Prompts returns a copy of every prompt received so far.
func (f *Fake) Prompts() []Prompt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Prompt(nil), f.prompts...)
}
