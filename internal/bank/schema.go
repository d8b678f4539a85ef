package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/netprep/internal/interview"
)

const schemaURL = "schema://netprep-bank.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	raw, err := json.Marshal(bundleSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal bank schema: %w", err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse bank schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add bank schema: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	return s, nil
})

func nonEmptyString() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

// bundleSchema describes one bundle document.
func bundleSchema() map[string]any {
	categories := make([]any, 0, len(interview.KnownCategories()))
	for _, c := range interview.KnownCategories() {
		categories = append(categories, string(c))
	}

	question := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "integer", "minimum": 1},
			"question": nonEmptyString(),
			"answer":   nonEmptyString(),
			"category": map[string]any{"type": "string", "enum": categories},
		},
		"required":             []any{"id", "question", "answer", "category"},
		"additionalProperties": false,
	}

	subTopic := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":      nonEmptyString(),
			"title":   nonEmptyString(),
			"content": nonEmptyString(),
		},
		"required":             []any{"id", "title", "content"},
		"additionalProperties": false,
	}

	topic := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    nonEmptyString(),
			"title": nonEmptyString(),
			"icon":  map[string]any{"type": "string"},
			"subtopics": map[string]any{
				"type":     "array",
				"items":    subTopic,
				"minItems": 1,
			},
		},
		"required":             []any{"id", "title", "subtopics"},
		"additionalProperties": false,
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"version":   map[string]any{"type": "string"},
			"questions": map[string]any{"type": "array", "items": question},
			"topics":    map[string]any{"type": "array", "items": topic},
		},
		"required":             []any{"version"},
		"additionalProperties": false,
	}
}
