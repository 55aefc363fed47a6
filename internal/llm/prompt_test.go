package llm

import (
	"strings"
	"testing"

	"github.com/planetafiscal/docs-extractor/constants"
)

func TestBuildSystemPromptNamesEveryTag(t *testing.T) {
	sys := BuildSystemPrompt()
	for _, tag := range constants.AsStringSlice() {
		if !strings.Contains(sys, tag) {
			t.Errorf("system prompt missing tag %q", tag)
		}
	}
	for _, field := range []string{"customer_name", "amount", "date", "request_type"} {
		if !strings.Contains(sys, field) {
			t.Errorf("system prompt missing field %q", field)
		}
	}
}

func TestBuildUserPromptIncludesDocument(t *testing.T) {
	up := BuildUserPrompt(ExtractRequest{
		Text:       "Factura 0042 por 99 euros",
		SourceName: "factura_0042.pdf",
	})
	if !strings.Contains(up, "factura_0042.pdf") {
		t.Errorf("user prompt missing filename hint: %q", up)
	}
	if !strings.Contains(up, "Factura 0042 por 99 euros") {
		t.Errorf("user prompt missing document text: %q", up)
	}
}

func TestBuildRecordJSONSchemaShape(t *testing.T) {
	schema := BuildRecordJSONSchema()

	required, ok := schema["required"].([]string)
	if !ok {
		t.Fatalf("required is %T, want []string", schema["required"])
	}
	want := map[string]bool{"customer_name": true, "amount": true, "date": true, "request_type": true}
	if len(required) != len(want) {
		t.Fatalf("required = %v", required)
	}
	for _, f := range required {
		if !want[f] {
			t.Errorf("unexpected required field %q", f)
		}
	}

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("properties is %T", schema["properties"])
	}
	rt, ok := props["request_type"].(map[string]any)
	if !ok {
		t.Fatalf("request_type property missing")
	}
	enum, ok := rt["enum"].([]string)
	if !ok || len(enum) != 3 {
		t.Errorf("request_type enum = %v", rt["enum"])
	}

	// Extra reply keys are tolerated, so the schema must not close the object.
	if _, exists := schema["additionalProperties"]; exists {
		t.Error("additionalProperties should not be set")
	}
}
