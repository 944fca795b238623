// Package normalize turns a finalized document into the display-ready form
// the section renderers consume: formatted dates and money, pre-split note
// lines, and a measured logo descriptor. No arithmetic happens here; totals
// are placed exactly as received.
package normalize

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/smallbiznis/invoicepdf/internal/document"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Config controls the normalizer. The logo decode is the render's single
// suspension point and is bounded by LogoTimeout.
type Config struct {
	LogoTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		LogoTimeout: 5 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.LogoTimeout <= 0 {
		c.LogoTimeout = defaults.LogoTimeout
	}
	return c
}

// View is the renderer-facing form of a document. All strings are final;
// section renderers only place them.
type View struct {
	Number    string
	IssueDate string
	DueDate   string

	Business PartyView
	Customer PartyView

	Items []ItemView

	ShowTax   bool
	TaxLabel  string
	Subtotal  string
	TaxAmount string
	Total     string

	Notes []string
	Terms []string

	// Logo is nil when the document has none or the blob was unusable.
	Logo *LogoView
}

// PartyView holds the bold name line plus the detail lines that survived
// empty-field omission, in display order.
type PartyView struct {
	Name    string
	Details []string
}

type ItemView struct {
	Description string
	Quantity    string
	Rate        string
	Amount      string
}

// LogoView is a decoded, scaled logo ready for placement. Width and Height
// are in millimetres.
type LogoView struct {
	Data   []byte
	Format string
	Width  float64
	Height float64
}

type Normalizer struct {
	cfg     Config
	printer *message.Printer
}

func New(cfg Config) *Normalizer {
	return &Normalizer{
		cfg:     cfg.withDefaults(),
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// Normalize produces the display view plus any asset-degraded warnings.
// Warnings never abort the render.
func (n *Normalizer) Normalize(ctx context.Context, doc document.Document) (View, []string) {
	var warnings []string

	view := View{
		Number:    doc.Number,
		IssueDate: FormatDate(doc.Date.Time),
		DueDate:   FormatDate(doc.DueDate.Time),
		Business:  partyView(doc.Business),
		Customer:  partyView(doc.Customer),
		ShowTax:   doc.TaxRate > 0,
		TaxLabel:  fmt.Sprintf("Tax (%s%%):", formatNumber(doc.TaxRate)),
		Subtotal:  n.Money(doc.Currency.Symbol, doc.Subtotal),
		TaxAmount: n.Money(doc.Currency.Symbol, doc.TaxAmount),
		Total:     n.Money(doc.Currency.Symbol, doc.Total),
		Notes:     splitLines(doc.Notes),
		Terms:     splitLines(doc.PaymentTerms),
	}

	view.Items = make([]ItemView, 0, len(doc.LineItems))
	for _, item := range doc.LineItems {
		view.Items = append(view.Items, ItemView{
			Description: item.Description,
			Quantity:    formatNumber(item.Quantity),
			Rate:        n.Money(doc.Currency.Symbol, item.Rate),
			Amount:      n.Money(doc.Currency.Symbol, item.Amount),
		})
	}

	if len(doc.Logo) > 0 {
		logo, warn := n.resolveLogo(ctx, doc.Logo)
		view.Logo = logo
		if warn != "" {
			warnings = append(warnings, warn)
		}
	}

	return view, warnings
}

// Money renders a grouped two-decimal amount with the currency symbol
// prepended, e.g. "$1,234.50". There is no currency-code fallback.
func (n *Normalizer) Money(symbol string, amount float64) string {
	return symbol + n.printer.Sprintf("%.2f", amount)
}

// FormatDate renders the locale long form, e.g. "January 5, 2025".
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatTimestamp renders the long form with time, used by the footer.
func FormatTimestamp(t time.Time) string {
	return t.Format("January 2, 2006 at 3:04 PM")
}

func partyView(p document.Party) PartyView {
	details := make([]string, 0, 5)
	if p.Address != "" {
		details = append(details, p.Address)
	}
	if location := joinPresent(p.City, p.PostalCode); location != "" {
		details = append(details, location)
	}
	if p.Country != "" {
		details = append(details, p.Country)
	}
	if p.Email != "" {
		details = append(details, p.Email)
	}
	if p.Phone != "" {
		details = append(details, p.Phone)
	}
	return PartyView{Name: p.Name, Details: details}
}

// joinPresent joins with ", " only the parts that are non-empty.
func joinPresent(parts ...string) string {
	present := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			present = append(present, part)
		}
	}
	return strings.Join(present, ", ")
}

// splitLines splits strictly on explicit line breaks; no wrapping.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// formatNumber renders a float the way the preview does: no trailing zeros,
// no exponent. 2 -> "2", 2.5 -> "2.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
