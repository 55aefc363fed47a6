package llm

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/planetafiscal/docs-extractor/internal/common"
)

const dateLayout = "2006-01-02"

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// recordSchema is compiled once at startup; the record shape never changes.
var recordSchema = mustCompileRecordSchema()

func mustCompileRecordSchema() *jsonschema.Schema {
	b, err := json.Marshal(BuildRecordJSONSchema())
	if err != nil {
		panic("marshal record schema: " + err.Error())
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		panic("add record schema: " + err.Error())
	}
	return compiler.MustCompile("record.json")
}

// ParseRecord gates a raw model reply into a Record. The reply may arrive
// wrapped in a markdown fence, and it may be a JSON list whose first element
// is the record object; beyond those two allowances the reply must satisfy
// the record schema exactly or the attempt is rejected.
func ParseRecord(reply string) (Record, error) {
	text := StripCodeFence(reply)

	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return Record{}, common.Validationf("invalid JSON in model reply: %v", err)
	}

	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return Record{}, common.Validationf("model returned an empty list")
		}
		v = list[0]
	}

	if err := recordSchema.Validate(v); err != nil {
		return Record{}, common.Validationf("%v", err)
	}

	// Decode into the typed record for the field-level checks.
	encoded, err := json.Marshal(v)
	if err != nil {
		return Record{}, common.Validationf("re-encode reply: %v", err)
	}
	var rec Record
	if err := json.Unmarshal(encoded, &rec); err != nil {
		return Record{}, common.Validationf("decode record: %v", err)
	}

	if strings.TrimSpace(rec.CustomerName) == "" {
		return Record{}, common.ValidationError{
			Field:   "customer_name",
			Value:   rec.CustomerName,
			Message: "must be a non-empty string",
		}
	}
	if !dateShape.MatchString(rec.Date) {
		return Record{}, common.ValidationError{
			Field:   "date",
			Value:   rec.Date,
			Message: "must use the YYYY-MM-DD format",
		}
	}
	if _, err := time.Parse(dateLayout, rec.Date); err != nil {
		return Record{}, common.ValidationError{
			Field:   "date",
			Value:   rec.Date,
			Message: "is not a real calendar date",
		}
	}
	return rec, nil
}
