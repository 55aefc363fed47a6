package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// MaxAttempts caps the completion calls made for a single document. Transport
// failures and rejected replies draw from the same budget.
const MaxAttempts = 3

// Extractor turns one document's text into a validated Record. Every reply
// goes through ParseRecord; a failed attempt is retried with a byte-identical
// prompt, carrying no feedback about the previous failure.
type Extractor struct {
	client CompletionClient
	log    *slog.Logger
}

func NewExtractor(client CompletionClient, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{client: client, log: logger}
}

// ExtractRecord implements RecordExtractor.
func (e *Extractor) ExtractRecord(ctx context.Context, req ExtractRequest) (Record, error) {
	system := BuildSystemPrompt()
	user := BuildUserPrompt(req)

	var lastErr error
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Record{}, fmt.Errorf("extraction aborted: %w", err)
		}

		start := time.Now()
		e.log.Debug("extract.attempt",
			"source", req.SourceName,
			"attempt", attempt,
			"max_attempts", MaxAttempts,
		)

		reply, err := e.client.Complete(ctx, system, user)
		if err != nil {
			lastErr = err
			e.log.Warn("extract.attempt_failed",
				"source", req.SourceName,
				"attempt", attempt,
				"max_attempts", MaxAttempts,
				"error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			continue
		}

		rec, err := ParseRecord(reply)
		if err != nil {
			lastErr = err
			e.log.Warn("extract.attempt_failed",
				"source", req.SourceName,
				"attempt", attempt,
				"max_attempts", MaxAttempts,
				"error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			continue
		}

		e.log.Info("extract.ok",
			"source", req.SourceName,
			"attempt", attempt,
			"request_type", rec.RequestType,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return rec, nil
	}

	failure := fmt.Errorf("extraction failed after %d attempts: %w", MaxAttempts, lastErr)
	e.log.Error("extract.failed", "source", req.SourceName, "error", failure)
	return Record{}, failure
}
