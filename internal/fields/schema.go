package fields

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/edenbergel/SmartReceiptApp/constants"
)

// BuildExpenseJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// for the canonical expense record, used as an output sanity gate by
// the structured pipeline.
func BuildExpenseJSONSchema() map[string]any {
	lineItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string", "minLength": 1},
			"quantity":    map[string]any{"type": "number"},
			"unitPrice":   map[string]any{"type": "number"},
			"total":       map[string]any{"type": "number"},
		},
		"required": []string{"description"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"merchant": map[string]any{"type": "string", "minLength": 1},
			"date":     map[string]any{"type": "string", "pattern": `^\d{2}/\d{2}/\d{4}$`},
			"amount":   map[string]any{"type": "number", "minimum": 0.0},
			"category": map[string]any{"type": "string", "enum": constants.AsStringSlice()},
			"rawText":  map[string]any{"type": "string"},
			"lineItems": map[string]any{
				"type":  "array",
				"items": lineItem,
			},
		},
		"required": []string{"merchant", "date", "amount", "category"},
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
