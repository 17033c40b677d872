package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildFieldJSONSchema returns the JSON-Schema (draft 2020-12 subset) every
// model response must satisfy. Passed to the provider as a structured output
// constraint and used locally to validate.
func BuildFieldJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"value":      map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"page_num":   map[string]any{"type": "integer", "minimum": 1},
			"bbox": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "number"},
				"minItems": 4,
				"maxItems": 4,
			},
		},
		"required": []string{"value", "confidence"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ParseFieldResult validates and decodes a raw model payload.
func ParseFieldResult(raw []byte) (FieldResult, error) {
	if err := ValidateJSONAgainstSchema(BuildFieldJSONSchema(), raw); err != nil {
		return FieldResult{}, err
	}
	var res FieldResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return FieldResult{}, fmt.Errorf("decode field result: %w", err)
	}
	return res, nil
}
