package llm

import "context"

// Record is the normalized shape we want from the LLM.
type Record struct {
	CustomerName string   `json:"customer_name"`
	Amount       *float64 `json:"amount"` // nil when the document names no amount
	Date         string   `json:"date"`   // YYYY-MM-DD
	RequestType  string   `json:"request_type"`
}

// ExtractRequest carries one document's text into an extraction.
type ExtractRequest struct {
	Text       string
	SourceName string
}

// RecordExtractor is the interface our pipeline depends on.
type RecordExtractor interface {
	ExtractRecord(ctx context.Context, req ExtractRequest) (Record, error)
}

// CompletionClient performs a single chat completion round trip and returns
// the raw assistant reply.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
