// Package pdf serializes layout instruction pages into the final PDF
// artifact.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/smallbiznis/invoicepdf/internal/render/layout"
)

const fontFamily = "Helvetica"

// Encode replays every page's instruction stream into a portrait A4 PDF and
// returns the document bytes. Pagination already happened upstream, so the
// backend's automatic page breaking is disabled.
func Encode(pages []*layout.Page) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	imageSeq := 0
	for _, page := range pages {
		doc.AddPage()
		for _, in := range page.Instructions() {
			switch op := in.(type) {
			case layout.Text:
				drawText(doc, op)
			case layout.Rule:
				doc.SetDrawColor(int(op.Color.R), int(op.Color.G), int(op.Color.B))
				doc.SetLineWidth(op.Width)
				doc.Line(op.X1, op.Y1, op.X2, op.Y2)
			case layout.Box:
				doc.SetFillColor(int(op.Fill.R), int(op.Fill.G), int(op.Fill.B))
				if op.Border {
					doc.SetDrawColor(200, 200, 200)
					doc.Rect(op.X, op.Y, op.W, op.H, "FD")
				} else {
					doc.Rect(op.X, op.Y, op.W, op.H, "F")
				}
			case layout.Image:
				imageSeq++
				name := fmt.Sprintf("logo-%d", imageSeq)
				opts := fpdf.ImageOptions{ImageType: op.Format}
				doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(op.Data))
				doc.ImageOptions(name, op.X, op.Y, op.W, op.H, false, opts, 0, "")
			}
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode_pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawText(doc *fpdf.Fpdf, op layout.Text) {
	style := ""
	if op.Style.Bold {
		style = "B"
	}
	doc.SetFont(fontFamily, style, op.Style.Size)
	doc.SetTextColor(int(op.Style.Color.R), int(op.Style.Color.G), int(op.Style.Color.B))

	x := op.X
	switch op.Style.Align {
	case layout.AlignRight:
		x -= doc.GetStringWidth(op.Content)
	case layout.AlignCenter:
		x -= doc.GetStringWidth(op.Content) / 2
	}
	doc.Text(x, op.Y, op.Content)
}

// Filename names the artifact after the invoice number and the render date,
// e.g. "invoice-INV-042-2025-01-05.pdf". An empty number falls back to
// "draft".
func Filename(number string, now time.Time) string {
	if number == "" {
		number = "draft"
	}
	return fmt.Sprintf("invoice-%s-%s.pdf", number, now.Format("2006-01-02"))
}
