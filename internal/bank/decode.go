package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// decode parses raw YAML, validates its shape against the bundle schema and
// decodes it into a document.
func decode(raw []byte) (*document, error) {
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if generic == nil {
		return nil, &ValidationError{Problems: []string{"document is empty"}}
	}

	// The schema validator wants JSON-shaped values, so round-trip through
	// encoding/json to normalise YAML maps and numbers.
	asJSON, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("normalise yaml: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(asJSON))
	if err != nil {
		return nil, fmt.Errorf("normalise yaml: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(instance); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return nil, &ValidationError{Problems: schemaProblems(verr)}
		}
		return nil, fmt.Errorf("validate: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	return &doc, nil
}

// schemaProblems flattens the validator's error tree into one line per leaf.
func schemaProblems(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		return []string{verr.Error()}
	}
	var out []string
	for _, c := range verr.Causes {
		out = append(out, schemaProblems(c)...)
	}
	return out
}

func checkVersion(v string) error {
	if v == "" {
		return fmt.Errorf("%w: missing version", ErrUnsupportedVersion)
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != semver.Major(SupportedVersion) {
		return fmt.Errorf("%w: %s (this build reads %s.x)", ErrUnsupportedVersion, v, semver.Major(SupportedVersion))
	}
	return nil
}
