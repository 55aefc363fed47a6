package llm

import (
	"strings"

	"github.com/planetafiscal/docs-extractor/constants"
)

// BuildSystemPrompt composes the system message: task framing, the field
// rules, and a short rubric for picking the request type. The wording is
// fixed, so every retry sends the same instruction.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a data-extraction assistant for business documents. Return ONLY JSON that matches the provided JSON Schema.",
		"Extract exactly these fields: customer_name, amount, date, request_type.",
		"customer_name is the person or company the document is about; it must never be empty.",
		"amount is the monetary amount as a plain number without currency symbols; use null when the document names no amount.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"request_type must be exactly one of: " + strings.Join(constants.AsStringSlice(), ", ") + ".",
		"Request type rubric: " + buildRequestTypeRubric(),
		"Do not wrap the JSON in markdown fences and do not add commentary.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the filename hint and the document text.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if name := strings.TrimSpace(req.SourceName); name != "" {
		b.WriteString("Filename: ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("\nDocument text:\n")
	b.WriteString(req.Text)
	return b.String()
}

// buildRequestTypeRubric emits short, high-precision rules with a tie-breaker
// to avoid oscillating between similar tags.
func buildRequestTypeRubric() string {
	defs := map[string]string{
		string(constants.Venta):   "the document records a sale, order, or purchase.",
		string(constants.Queja):   "the document voices a complaint, claim, or dissatisfaction.",
		string(constants.Factura): "the document is an invoice or a billing request.",
	}

	var parts []string
	for _, tag := range constants.AsStringSlice() {
		if d, ok := defs[tag]; ok {
			parts = append(parts, tag+": "+d)
		}
	}
	parts = append(parts, "Tie-breaker: a complaint about an invoice is still "+string(constants.Queja)+"; an invoice for a past sale is "+string(constants.Factura)+".")
	return strings.Join(parts, " | ")
}
