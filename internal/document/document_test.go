package document

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestValidateRequiresLineItems(t *testing.T) {
	doc := Document{Number: "INV-001"}
	if err := doc.Validate(); !errors.Is(err, ErrNoLineItems) {
		t.Fatalf("expected ErrNoLineItems, got %v", err)
	}

	doc.LineItems = []LineItem{{Description: "Design", Quantity: 1, Rate: 100, Amount: 100}}
	if err := doc.Validate(); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

func TestDateUnmarshalCalendarForm(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2025-01-05"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	if !d.Time.Equal(want) {
		t.Fatalf("expected %v, got %v", want, d.Time)
	}
}

func TestDateUnmarshalRFC3339(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2025-01-05T10:30:00Z"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.January || d.Day() != 5 {
		t.Fatalf("unexpected date %v", d.Time)
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"05/01/2025"`), &d); err == nil {
		t.Fatal("expected error for unsupported date form")
	}
}

func TestDateRoundTrip(t *testing.T) {
	d := Date{Time: time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)}
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2025-03-14"` {
		t.Fatalf("expected calendar form, got %s", raw)
	}
}

func TestDocumentJSONShape(t *testing.T) {
	payload := `{
		"invoice_number": "INV-042",
		"date": "2025-01-05",
		"due_date": "2025-02-05",
		"business": {"name": "Acme Studio", "email": "billing@acme.test"},
		"customer": {"name": "Globex"},
		"line_items": [{"description": "Design", "quantity": 2, "rate": 100, "amount": 200}],
		"currency": {"code": "USD", "symbol": "$", "name": "US Dollar"},
		"tax_rate": 10,
		"subtotal": 200,
		"tax_amount": 20,
		"total": 220
	}`
	var doc Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Number != "INV-042" {
		t.Fatalf("unexpected number %q", doc.Number)
	}
	if len(doc.LineItems) != 1 || doc.LineItems[0].Amount != 200 {
		t.Fatalf("unexpected line items %+v", doc.LineItems)
	}
	if doc.Currency.Symbol != "$" {
		t.Fatalf("unexpected currency %+v", doc.Currency)
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
