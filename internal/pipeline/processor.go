package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/planetafiscal/docs-extractor/internal/llm"
	"github.com/planetafiscal/docs-extractor/internal/textextract"
)

// Processor coordinates text extraction then record extraction for every
// supported document under the input directory. Documents fail one by one;
// only environment problems (unreadable input directory, unwritable output
// directory) abort the whole run.
type Processor struct {
	log       *slog.Logger
	texts     *textextract.Extractor
	records   llm.RecordExtractor
	inputDir  string
	outputDir string
}

func NewProcessor(logger *slog.Logger, texts *textextract.Extractor, records llm.RecordExtractor, inputDir, outputDir string) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		log:       logger,
		texts:     texts,
		records:   records,
		inputDir:  inputDir,
		outputDir: outputDir,
	}
}

// Run processes the whole input directory sequentially and writes one
// artifact per succeeding document plus the aggregate summary. An empty
// input directory yields an empty summary and no artifacts. A canceled
// context stops the run; already-written record artifacts stay on disk
// but the summary artifact is not written.
func (p *Processor) Run(ctx context.Context) (Summary, error) {
	runID := uuid.New().String()
	start := time.Now()

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output directory: %w", err)
	}

	paths, err := ListSupported(p.inputDir)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Results:  make([]Result, 0, len(paths)),
		Failures: make([]Failure, 0),
	}

	if len(paths) == 0 {
		p.log.Warn("batch.empty", "run_id", runID, "input_dir", p.inputDir)
		return summary, nil
	}

	p.log.Info("batch.start",
		"run_id", runID,
		"input_dir", p.inputDir,
		"output_dir", p.outputDir,
		"documents", len(paths),
	)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			p.log.Warn("batch.interrupted",
				"run_id", runID,
				"succeeded", summary.Succeeded,
				"failed", summary.Failed,
				"error", err,
			)
			return summary, fmt.Errorf("batch interrupted: %w", err)
		}

		name := filepath.Base(path)
		rec, err := p.processDocument(ctx, path)
		if err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{SourceFile: name, Error: err.Error()})
			p.log.Error("batch.document_failed", "run_id", runID, "file", name, "error", err)
			continue
		}

		artifact, err := WriteRecordArtifact(p.outputDir, name, rec)
		if err != nil {
			return summary, err
		}

		summary.Succeeded++
		summary.Results = append(summary.Results, Result{
			SourceFile:  name,
			Record:      rec,
			ProcessedAt: time.Now().Format(time.RFC3339),
		})
		p.log.Info("batch.document_ok", "run_id", runID, "file", name, "artifact", artifact)
	}

	// Cancellation may land while the last document is in flight; the
	// summary is then omitted just like a between-documents interruption.
	if err := ctx.Err(); err != nil {
		p.log.Warn("batch.interrupted",
			"run_id", runID,
			"succeeded", summary.Succeeded,
			"failed", summary.Failed,
			"error", err,
		)
		return summary, fmt.Errorf("batch interrupted: %w", err)
	}

	summary.ProcessedAt = time.Now().Format(time.RFC3339)
	if _, err := WriteSummaryArtifact(p.outputDir, summary); err != nil {
		return summary, err
	}

	p.log.Info("batch.done",
		"run_id", runID,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return summary, nil
}

func (p *Processor) processDocument(ctx context.Context, path string) (llm.Record, error) {
	text, err := p.texts.Extract(ctx, path)
	if err != nil {
		return llm.Record{}, err
	}
	return p.records.ExtractRecord(ctx, llm.ExtractRequest{
		Text:       text,
		SourceName: filepath.Base(path),
	})
}
