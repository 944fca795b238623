package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/smallbiznis/invoicepdf/internal/render/layout"
)

func TestEncodeProducesOnePDFPagePerLayoutPage(t *testing.T) {
	eng := layout.NewEngine(layout.A4())
	eng.PlaceText("INVOICE", 20, 20, layout.TextStyle{Size: 24, Bold: true})
	eng.PlaceRule(20, 30, 190, 30, layout.RGB{R: 0xE5, G: 0xE7, B: 0xEB}, 0.5)
	eng.PlaceBox(20, 40, 170, 12, layout.RGB{R: 0xF9, G: 0xFA, B: 0xFB}, false)
	eng.BreakIf(250, 60)
	eng.PlaceText("continued", 20, 40, layout.TextStyle{Size: 10})

	data, err := Encode(eng.Pages())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", data[:8])
	}
	// fpdf records the page count in the /Count entry of the page tree.
	if !bytes.Contains(data, []byte("/Count 2")) {
		t.Fatal("expected a 2-page document")
	}
}

func TestEncodeAlignedText(t *testing.T) {
	eng := layout.NewEngine(layout.A4())
	eng.PlaceText("right", 190, 20, layout.TextStyle{Size: 11, Align: layout.AlignRight})
	eng.PlaceText("center", 105, 30, layout.TextStyle{Size: 9, Align: layout.AlignCenter})

	if _, err := Encode(eng.Pages()); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, time.January, 5, 12, 0, 0, 0, time.UTC)
	if got := Filename("INV-042", now); got != "invoice-INV-042-2025-01-05.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
	if got := Filename("", now); got != "invoice-draft-2025-01-05.pdf" {
		t.Fatalf("unexpected draft filename %q", got)
	}
}
