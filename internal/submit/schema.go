package submit

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/cragcoach/internal/profile"
)

const payloadSchemaURL = "schema://answer_payload.json"

var (
	payloadSchemaOnce sync.Once
	payloadSchema     *jsonschema.Schema
	payloadSchemaErr  error
)

// PayloadSchema returns the JSON Schema definition of an answer payload: an
// object with every answer key present and string-valued, and nothing else.
func PayloadSchema() map[string]any {
	props := make(map[string]any, len(profile.AnswerKeys))
	required := make([]any, 0, len(profile.AnswerKeys))
	for _, k := range profile.AnswerKeys {
		props[k] = map[string]any{"type": "string"}
		required = append(required, k)
	}
	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

// Validate checks payload against PayloadSchema. It returns a
// *ValidationError on failure.
func Validate(payload profile.AnswerPayload) error {
	compiled, err := compiledPayloadSchema()
	if err != nil {
		return fmt.Errorf("compile answer schema: %w", err)
	}

	// The jsonschema library validates parsed JSON values, not Go maps of
	// concrete types.
	raw, err := json.Marshal(payload)
	if err != nil {
		return &ValidationError{Err: err}
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ValidationError{Err: err}
	}
	if parsed == nil {
		parsed = map[string]any{}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

func compiledPayloadSchema() (*jsonschema.Schema, error) {
	payloadSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(payloadSchemaURL, PayloadSchema()); err != nil {
			payloadSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		payloadSchema, payloadSchemaErr = c.Compile(payloadSchemaURL)
	})
	return payloadSchema, payloadSchemaErr
}
