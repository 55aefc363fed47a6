package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/planetafiscal/docs-extractor/internal/common"
)

func TestParseRecordValid(t *testing.T) {
	reply := `{"customer_name": "Carlos Mendoza", "amount": 1250.75, "date": "2024-03-15", "request_type": "Venta"}`
	rec, err := ParseRecord(reply)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if rec.CustomerName != "Carlos Mendoza" {
		t.Errorf("customer_name = %q", rec.CustomerName)
	}
	if rec.Amount == nil || *rec.Amount != 1250.75 {
		t.Errorf("amount = %v, want 1250.75", rec.Amount)
	}
	if rec.Date != "2024-03-15" {
		t.Errorf("date = %q", rec.Date)
	}
	if rec.RequestType != "Venta" {
		t.Errorf("request_type = %q", rec.RequestType)
	}
}

func TestParseRecordIntegerAmount(t *testing.T) {
	rec, err := ParseRecord(`{"customer_name": "Luisa", "amount": 300, "date": "2024-07-01", "request_type": "Factura"}`)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if rec.Amount == nil || *rec.Amount != 300 {
		t.Errorf("amount = %v, want 300", rec.Amount)
	}
}

func TestParseRecordNullAmount(t *testing.T) {
	rec, err := ParseRecord(`{"customer_name": "Ana López", "amount": null, "date": "2024-01-02", "request_type": "Queja"}`)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if rec.Amount != nil {
		t.Errorf("amount = %v, want nil", *rec.Amount)
	}
}

func TestParseRecordFencedReply(t *testing.T) {
	reply := "```json\n{\"customer_name\": \"Ana López\", \"amount\": null, \"date\": \"2024-01-02\", \"request_type\": \"Queja\"}\n```"
	rec, err := ParseRecord(reply)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if rec.RequestType != "Queja" {
		t.Errorf("request_type = %q, want Queja", rec.RequestType)
	}
}

func TestParseRecordListReply(t *testing.T) {
	reply := `[{"customer_name": "Benito", "amount": 10, "date": "2024-05-06", "request_type": "Factura"},
		{"customer_name": "ignored", "amount": null, "date": "2024-05-07", "request_type": "Venta"}]`
	rec, err := ParseRecord(reply)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if rec.CustomerName != "Benito" {
		t.Errorf("customer_name = %q, want first list element", rec.CustomerName)
	}
}

func TestParseRecordEmptyList(t *testing.T) {
	_, err := ParseRecord(`[]`)
	if err == nil {
		t.Fatal("expected error for empty list")
	}
	if !errors.Is(err, common.ErrValidation) {
		t.Errorf("want ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "empty list") {
		t.Errorf("error = %q, want mention of the empty list", err)
	}
}

func TestParseRecordInvalidJSON(t *testing.T) {
	_, err := ParseRecord("the document describes a sale by Carlos")
	if err == nil {
		t.Fatal("expected error for non-JSON reply")
	}
	if !errors.Is(err, common.ErrValidation) {
		t.Errorf("want ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("error = %q, want invalid JSON", err)
	}
}

func TestParseRecordNonObject(t *testing.T) {
	_, err := ParseRecord(`"hola"`)
	if err == nil {
		t.Fatal("expected error for a bare string")
	}
	if !strings.Contains(err.Error(), "expected object") {
		t.Errorf("error = %q, want an object-type complaint", err)
	}
}

func TestParseRecordMissingField(t *testing.T) {
	_, err := ParseRecord(`{"customer_name": "Luis", "amount": 5, "date": "2024-02-02"}`)
	if err == nil {
		t.Fatal("expected error for missing request_type")
	}
	if !errors.Is(err, common.ErrValidation) {
		t.Errorf("want ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "request_type") {
		t.Errorf("error = %q, want it to name the missing field", err)
	}
}

func TestParseRecordAmountWrongType(t *testing.T) {
	for _, bad := range []string{`"125.50"`, `true`} {
		_, err := ParseRecord(`{"customer_name": "Luis", "amount": ` + bad + `, "date": "2024-02-02", "request_type": "Venta"}`)
		if err == nil {
			t.Errorf("amount %s: expected error", bad)
			continue
		}
		if !errors.Is(err, common.ErrValidation) {
			t.Errorf("amount %s: want ErrValidation, got %v", bad, err)
		}
		if !strings.Contains(err.Error(), "amount") {
			t.Errorf("amount %s: error = %q, want it to name the field", bad, err)
		}
	}
}

func TestParseRecordUnknownTag(t *testing.T) {
	for _, tag := range []string{"venta", "FACTURA", "Devolución"} {
		_, err := ParseRecord(`{"customer_name": "Luis", "amount": null, "date": "2024-02-02", "request_type": "` + tag + `"}`)
		if err == nil {
			t.Errorf("tag %q: expected error", tag)
			continue
		}
		if !strings.Contains(err.Error(), "request_type") {
			t.Errorf("tag %q: error = %q, want it to name the field", tag, err)
		}
	}
}

func TestParseRecordBadDates(t *testing.T) {
	bad := []string{"2024/03/15", "15-03-2024", "2024-3-5", "20240315", "2024-13-01", "2024-02-30", "hace dos semanas"}
	for _, d := range bad {
		_, err := ParseRecord(`{"customer_name": "X", "amount": null, "date": "` + d + `", "request_type": "Venta"}`)
		if err == nil {
			t.Errorf("date %q: expected error", d)
			continue
		}
		if !errors.Is(err, common.ErrValidation) {
			t.Errorf("date %q: want ErrValidation, got %v", d, err)
		}
		if !strings.Contains(err.Error(), d) {
			t.Errorf("date %q: error should name the bad value, got %q", d, err)
		}
	}
}

func TestParseRecordBlankCustomerName(t *testing.T) {
	_, err := ParseRecord(`{"customer_name": "   ", "amount": 1, "date": "2024-06-07", "request_type": "Queja"}`)
	if err == nil {
		t.Fatal("expected error for whitespace-only customer_name")
	}
	if !errors.Is(err, common.ErrValidation) {
		t.Errorf("want ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "customer_name") {
		t.Errorf("error = %q, want it to name the field", err)
	}

	_, err = ParseRecord(`{"customer_name": "", "amount": 1, "date": "2024-06-07", "request_type": "Queja"}`)
	if err == nil {
		t.Fatal("expected error for empty customer_name")
	}
	if !strings.Contains(err.Error(), "customer_name") {
		t.Errorf("error = %q, want it to name the field", err)
	}
}

func TestParseRecordToleratesExtraKeys(t *testing.T) {
	rec, err := ParseRecord(`{"customer_name": "Carla", "amount": 7.5, "date": "2024-06-07", "request_type": "Factura", "confidence": 0.92, "notes": "extra"}`)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if rec.CustomerName != "Carla" {
		t.Errorf("customer_name = %q", rec.CustomerName)
	}
}

func TestRecordMarshalsNullAmount(t *testing.T) {
	b, err := json.Marshal(Record{CustomerName: "Ana", Date: "2024-01-01", RequestType: "Venta"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"amount":null`) {
		t.Errorf("marshal = %s, want explicit null amount", b)
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"indented closing fence", "```json\n{\"a\":1}\n   ```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"fence chars inside strings", `{"a":"has ` + "```" + ` inside"}`, `{"a":"has ` + "```" + ` inside"}`},
	}
	for _, tc := range cases {
		if got := StripCodeFence(tc.in); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
