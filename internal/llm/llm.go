// Package llm talks to hosted language models. A Provider turns a single
// Prompt into a Completion whose JSON has been checked against the prompt's
// Schema. Providers are built by NewProvider and wrapped with retry and
// event recording.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one completion per prompt.
type Provider interface {
	Complete(ctx context.Context, p Prompt) (*Completion, error)

	// Model returns the model id requests are sent to.
	Model() string
}

// Prompt is a single-turn request: a system instruction and one user
// message.
type Prompt struct {
	System string
	User   string

	// Schema, when set, asks the provider for structured output and is
	// used to check the returned JSON.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // zero leaves the provider default
}

// Completion is a provider's answer to a Prompt.
type Completion struct {
	// JSON is the schema-checked object, or the raw text when the prompt
	// had no schema.
	JSON json.RawMessage

	Model        string // model that served the request
	InputTokens  int
	OutputTokens int
}

type purposeKey struct{}

// WithPurpose tags ctx so recorded events can be grouped by caller.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the tag set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
