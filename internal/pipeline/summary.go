package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/planetafiscal/docs-extractor/internal/llm"
)

const (
	// SummaryFilename is the aggregate artifact written after a full run.
	SummaryFilename = "resumen_completo.json"

	// recordSuffix is appended to a document's stem for its own artifact.
	recordSuffix = "_resultado.json"
)

// Result records one successfully processed document.
type Result struct {
	SourceFile  string     `json:"source_file"`
	Record      llm.Record `json:"record"`
	ProcessedAt string     `json:"processed_at"`
}

// Failure records one document the batch could not process.
type Failure struct {
	SourceFile string `json:"source_file"`
	Error      string `json:"error"`
}

// Summary aggregates one batch run.
type Summary struct {
	Succeeded   int       `json:"total_succeeded"`
	Failed      int       `json:"total_failed"`
	ProcessedAt string    `json:"processed_at"`
	Results     []Result  `json:"results"`
	Failures    []Failure `json:"errors"`
}

// RecordArtifactName derives a document's artifact filename from its base
// name: the extension is replaced with the record suffix.
func RecordArtifactName(sourceFile string) string {
	stem := strings.TrimSuffix(sourceFile, filepath.Ext(sourceFile))
	return stem + recordSuffix
}

// WriteRecordArtifact writes one validated record into outDir and returns
// the artifact path.
func WriteRecordArtifact(outDir, sourceFile string, rec llm.Record) (string, error) {
	path := filepath.Join(outDir, RecordArtifactName(sourceFile))
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write record artifact: %w", err)
	}
	return path, nil
}

// WriteSummaryArtifact writes the aggregate summary into outDir and returns
// the artifact path.
func WriteSummaryArtifact(outDir string, summary Summary) (string, error) {
	path := filepath.Join(outDir, SummaryFilename)
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write summary artifact: %w", err)
	}
	return path, nil
}
