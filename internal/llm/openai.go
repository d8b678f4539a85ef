package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenRouter speaks the OpenAI chat API, so it shares this provider.
const openRouterURL = "https://openrouter.ai/api/v1"

type openAIProvider struct {
	client *openai.Client
	model  string
}

func newOpenAI(c Credentials) *openAIProvider {
	cfg := openai.DefaultConfig(c.APIKey)
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	return &openAIProvider{client: openai.NewClientWithConfig(cfg), model: c.Model}
}

func (p *openAIProvider) Model() string { return p.model }

func (p *openAIProvider) Complete(ctx context.Context, pr Prompt) (*Completion, error) {
	req := openai.ChatCompletionRequest{
		Model:               p.model,
		MaxCompletionTokens: pr.MaxTokens,
		Temperature:         float32(pr.Temperature),
	}
	if pr.System != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem, Content: pr.System,
		})
	}
	req.Messages = append(req.Messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: pr.User,
	})

	if pr.Schema != nil {
		def, err := json.Marshal(pr.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("encode schema %s: %w", pr.Schema.Name, err)
		}
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   pr.Schema.Name,
				Schema: json.RawMessage(def),
				Strict: true,
			},
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, statusError(apiErr.HTTPStatusCode, err)
		}
		return nil, &Error{Kind: KindUnavailable, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &Error{Kind: KindInvalid, Err: errors.New("response has no choices")}
	}

	choice := resp.Choices[0]
	out, err := finish(pr, json.RawMessage(choice.Message.Content), choice.FinishReason == openai.FinishReasonLength)
	if err != nil {
		return nil, err
	}
	return &Completion{
		JSON:         out,
		Model:        resp.Model,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}
