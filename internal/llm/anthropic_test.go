package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

var pairSchema = &Schema{
	Name: "qa-pair",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"answer":   map[string]any{"type": "string"},
		},
		"required":             []any{"question", "answer"},
		"additionalProperties": false,
	},
}

func newTestAnthropic(t *testing.T, handler http.HandlerFunc) *anthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return newAnthropic(Credentials{APIKey: "test-key", Model: "claude-haiku-4-5-20251001", BaseURL: server.URL})
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func anthropicError(status int, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": kind, "message": kind},
		})
	}
}

func TestAnthropic_Complete(t *testing.T) {
	var body map[string]any
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"question":"What is ARP?","answer":"IP to MAC"}`, "end_turn"))
	})

	c, err := p.Complete(context.Background(), Prompt{
		System:    "You are a networking tutor.",
		User:      "Explain ARP.",
		Schema:    pairSchema,
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.InputTokens != 50 || c.OutputTokens != 30 {
		t.Errorf("tokens = %d/%d, want 50/30", c.InputTokens, c.OutputTokens)
	}
	if c.Model != "claude-haiku-4-5-20251001" {
		t.Errorf("model = %q", c.Model)
	}
	if body["model"] != "claude-haiku-4-5-20251001" {
		t.Errorf("request model = %v", body["model"])
	}
	if msgs, _ := body["messages"].([]any); len(msgs) != 1 {
		t.Errorf("request messages = %v, want one user turn", body["messages"])
	}
}

func TestAnthropic_SchemaMismatch(t *testing.T) {
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"question":"only half"}`, "end_turn"))
	})

	_, err := p.Complete(context.Background(), Prompt{User: "x", Schema: pairSchema, MaxTokens: 100})
	if k, ok := KindOf(err); !ok || k != KindInvalid {
		t.Fatalf("err = %v, want KindInvalid", err)
	}
}

func TestAnthropic_Truncated(t *testing.T) {
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"question":"What`, "max_tokens"))
	})

	_, err := p.Complete(context.Background(), Prompt{User: "x", Schema: pairSchema, MaxTokens: 5})
	if k, ok := KindOf(err); !ok || k != KindTruncated {
		t.Fatalf("err = %v, want KindTruncated", err)
	}
}

func TestAnthropic_StatusKinds(t *testing.T) {
	tests := []struct {
		status int
		kind   string
		want   Kind
	}{
		{http.StatusTooManyRequests, "rate_limit_error", KindRateLimited},
		{http.StatusUnauthorized, "authentication_error", KindRejected},
		{http.StatusInternalServerError, "api_error", KindUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			p := newTestAnthropic(t, anthropicError(tt.status, tt.kind))
			_, err := p.Complete(context.Background(), Prompt{User: "x", MaxTokens: 100})
			if k, ok := KindOf(err); !ok || k != tt.want {
				t.Fatalf("err = %v, want %s", err, tt.want)
			}
		})
	}
}
