package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/netprep/internal/store"
)

type recording struct {
	Provider
	name string
	repo store.EventRepo
	log  *zap.Logger
}

// Record wraps p so every call is appended to repo as an LLM request
// event. name is the provider label stored with each event.
func Record(p Provider, name string, repo store.EventRepo, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &recording{Provider: p, name: name, repo: repo, log: log}
}

func (r *recording) Complete(ctx context.Context, pr Prompt) (*Completion, error) {
	start := time.Now()
	c, err := r.Provider.Complete(ctx, pr)

	ev := store.LLMRequestEventData{
		Provider:    r.name,
		Model:       r.Provider.Model(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(pr),
	}
	if c != nil {
		if c.Model != "" {
			ev.Model = c.Model
		}
		ev.InputTokens = c.InputTokens
		ev.OutputTokens = c.OutputTokens
		ev.ResponseBody = string(c.JSON)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// Recording is best effort. The caller still gets its answer.
	if werr := r.repo.AppendLLMRequest(context.WithoutCancel(ctx), ev); werr != nil {
		r.log.Warn("record LLM request", zap.String("purpose", ev.Purpose), zap.Error(werr))
	}
	return c, err
}

// transcript renders a prompt for the event log.
func transcript(pr Prompt) string {
	var b strings.Builder
	if pr.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", pr.System)
	}
	fmt.Fprintf(&b, "[user]\n%s\n", pr.User)
	if pr.Schema != nil {
		if def, err := json.Marshal(pr.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "\n[schema %s]\n%s\n", pr.Schema.Name, def)
		}
	}
	return b.String()
}
