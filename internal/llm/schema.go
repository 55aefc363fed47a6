package llm

import "github.com/planetafiscal/docs-extractor/constants"

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the model as an output constraint and also use it locally to
// validate replies. Unknown keys are tolerated, so additionalProperties stays open.
func BuildRecordJSONSchema() map[string]any {
	props := map[string]any{
		"customer_name": map[string]any{"type": "string", "minLength": 1},
		"amount":        map[string]any{"type": []string{"number", "null"}},
		"date":          map[string]any{"type": "string"},
		"request_type": map[string]any{
			"type": "string",
			"enum": constants.AsStringSlice(),
		},
	}
	required := []string{"customer_name", "amount", "date", "request_type"}

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}
