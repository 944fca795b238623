// Package document contains the finalized invoice/quotation record consumed
// by the renderer. Totals arrive pre-computed; nothing here derives money.
package document

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNoLineItems = errors.New("no_line_items")
)

// Currency describes how monetary values are presented.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Party is one side of the invoice (issuer or recipient). Empty fields are
// omitted from the rendered output, never replaced with placeholders.
type Party struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// LineItem is one billable row. Amount = Quantity * Rate, computed upstream.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Document is the complete record handed to the renderer. It is immutable for
// the duration of a render; the renderer holds no reference to it afterwards.
type Document struct {
	Number       string     `json:"invoice_number"`
	Date         Date       `json:"date"`
	DueDate      Date       `json:"due_date"`
	Business     Party      `json:"business"`
	Customer     Party      `json:"customer"`
	LineItems    []LineItem `json:"line_items"`
	Currency     Currency   `json:"currency"`
	TaxRate      float64    `json:"tax_rate"`
	Subtotal     float64    `json:"subtotal"`
	TaxAmount    float64    `json:"tax_amount"`
	Total        float64    `json:"total"`
	Notes        string     `json:"notes"`
	PaymentTerms string     `json:"payment_terms"`

	// Logo is an optional raster image blob. The format is inferred from the
	// blob's signature, never from metadata.
	Logo []byte `json:"logo,omitempty"`
}

// Validate rejects documents the renderer cannot produce a page for.
// Totals consistency is the upstream owner's contract and is not re-checked.
func (d Document) Validate() error {
	if len(d.LineItems) == 0 {
		return ErrNoLineItems
	}
	return nil
}

// Date is a calendar date that accepts both "2006-01-02" and RFC 3339 on the
// wire, matching what upstream forms and APIs emit.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid_date %q", raw)
	}
	d.Time = t
	return nil
}
