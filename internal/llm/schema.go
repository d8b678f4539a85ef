package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema describes the JSON object a Prompt expects back. Declare schemas
// as package-level pointers; the compiled form is built once per Schema.
type Schema struct {
	Name        string // kebab-case; becomes the tool or format name
	Description string
	Definition  map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// Check reports whether raw is a JSON document that satisfies s. Failures
// are *Error with KindInvalid.
func (s *Schema) Check(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &Error{Kind: KindInvalid, Raw: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}

	s.once.Do(s.compile)
	if s.err != nil {
		return &Error{Kind: KindInvalid, Raw: raw, Err: s.err}
	}
	if err := s.compiled.Validate(doc); err != nil {
		return &Error{Kind: KindInvalid, Raw: raw, Err: err}
	}
	return nil
}

func (s *Schema) compile() {
	// jsonschema wants decoded JSON values, not Go maps of arbitrary types.
	b, err := json.Marshal(s.Definition)
	if err != nil {
		s.err = fmt.Errorf("schema %s: %w", s.Name, err)
		return
	}
	var def any
	if err := json.Unmarshal(b, &def); err != nil {
		s.err = fmt.Errorf("schema %s: %w", s.Name, err)
		return
	}

	url := "mem://" + s.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, def); err != nil {
		s.err = fmt.Errorf("schema %s: %w", s.Name, err)
		return
	}
	s.compiled, s.err = c.Compile(url)
	if s.err != nil {
		s.err = fmt.Errorf("schema %s: %w", s.Name, s.err)
	}
}

// finish applies the schema check to a provider's raw output.
func finish(p Prompt, raw json.RawMessage, truncated bool) (json.RawMessage, error) {
	if truncated {
		return nil, &Error{Kind: KindTruncated, Raw: raw}
	}
	if p.Schema == nil {
		return raw, nil
	}
	if err := p.Schema.Check(raw); err != nil {
		return nil, err
	}
	return raw, nil
}
