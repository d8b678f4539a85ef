package tutor

import "github.com/abhisek/netprep/internal/llm"

// ExplanationSchema defines the JSON schema for question explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "question-explanation",
	Description: "A deeper explanation of a computer networking interview question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Clear explanation of the concept behind the question (3-5 sentences)",
			},
			"key_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 facts an interviewer expects to hear (5-15 words each)",
			},
			"example": map[string]any{
				"type":        "string",
				"description": "A concrete real-world example or scenario",
			},
			"follow_up": map[string]any{
				"type":        "string",
				"description": "A likely follow-up interview question",
			},
		},
		"required":             []any{"summary", "key_points", "example", "follow_up"},
		"additionalProperties": false,
	},
}
