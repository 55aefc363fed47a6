package pipeline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/planetafiscal/docs-extractor/internal/llm"
)

func TestRecordArtifactName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"venta_001.txt", "venta_001_resultado.json"},
		{"informe.PDF", "informe_resultado.json"},
		{"doble.punto.docx", "doble.punto_resultado.json"},
		{"sin_extension", "sin_extension_resultado.json"},
	}
	for _, tc := range cases {
		if got := RecordArtifactName(tc.in); got != tc.want {
			t.Errorf("RecordArtifactName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSummaryJSONKeys(t *testing.T) {
	s := Summary{
		Succeeded:   1,
		Failed:      1,
		ProcessedAt: "2024-03-15T10:00:00Z",
		Results: []Result{{
			SourceFile:  "venta.txt",
			Record:      llm.Record{CustomerName: "Carlos", Date: "2024-03-15", RequestType: "Venta"},
			ProcessedAt: "2024-03-15T10:00:00Z",
		}},
		Failures: []Failure{{SourceFile: "roto.pdf", Error: "unreadable content"}},
	}

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{
		`"total_succeeded":1`,
		`"total_failed":1`,
		`"processed_at"`,
		`"results"`,
		`"errors"`,
		`"source_file":"venta.txt"`,
		`"record"`,
		`"amount":null`,
		`"source_file":"roto.pdf"`,
		`"error":"unreadable content"`,
	} {
		if !strings.Contains(string(b), key) {
			t.Errorf("summary JSON missing %s:\n%s", key, b)
		}
	}
}

func TestSummaryEmptySlicesRenderAsArrays(t *testing.T) {
	s := Summary{Results: make([]Result, 0), Failures: make([]Failure, 0)}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"results":[]`) || !strings.Contains(string(b), `"errors":[]`) {
		t.Errorf("summary JSON = %s, want empty arrays", b)
	}
}
