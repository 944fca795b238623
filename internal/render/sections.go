package render

import (
	"time"

	"github.com/smallbiznis/invoicepdf/internal/document/normalize"
	"github.com/smallbiznis/invoicepdf/internal/render/layout"
)

// job threads the cursor through the fixed section sequence for one render.
// All state is local to the invocation.
type job struct {
	eng   *layout.Engine
	view  normalize.View
	dueAt time.Time
	now   time.Time
	y     float64
}

func (j *job) run() {
	j.header()
	j.parties()
	j.itemsTable()
	j.totals()
	j.notesTerms()
	j.footer()
}

// header draws the left column (logo, title, number) against the right column
// (dates, status badge) and continues below the taller of the two. An absent
// logo collapses the left column to title plus number with no reserved gap.
func (j *job) header() {
	geom := j.eng.Geometry()
	margin := geom.Margin
	headerStartY := j.y

	leftY := headerStartY
	if logo := j.view.Logo; logo != nil {
		j.eng.PlaceImage(logo.Data, logo.Format, margin, leftY, logo.Width, logo.Height)
		leftY += logo.Height + 10
	}
	leftY = j.eng.PlaceText("INVOICE", margin, leftY, layout.TextStyle{Size: 24, Bold: true, Color: colorGray900})
	leftY = j.eng.PlaceText("#"+j.view.Number, margin, leftY, layout.TextStyle{Size: 12, Color: colorGray500})

	dateX := geom.Width - margin
	dateY := headerStartY
	dateStyle := layout.TextStyle{Size: 11, Align: layout.AlignRight, Color: colorGray500}
	j.eng.PlaceText("Date: "+j.view.IssueDate, dateX, dateY, dateStyle)
	dateY += 6
	j.eng.PlaceText("Due Date: "+j.view.DueDate, dateX, dateY, dateStyle)
	dateY += 8

	// The badge reflects the due date against the render-time clock, not a
	// stored payment status.
	active := j.dueAt.After(j.now)
	bg, fg, label := badgeOverdueBg, badgeOverdueTxt, badgeOverdueLabel
	if active {
		bg, fg, label = badgeActiveBg, badgeActiveText, badgeActiveLabel
	}
	const badgeWidth, badgeHeight = 25.0, 6.0
	badgeX := dateX - badgeWidth
	j.eng.PlaceBox(badgeX, dateY-2, badgeWidth, badgeHeight, bg, false)
	j.eng.PlaceText(label, dateX-badgeWidth/2, dateY+2, layout.TextStyle{Size: 9, Bold: true, Align: layout.AlignCenter, Color: fg})

	j.y = maxY(leftY, dateY) + 6
}

func (j *job) parties() {
	geom := j.eng.Geometry()
	leftY := j.partyBlock("From", j.view.Business, geom.Margin, j.y)
	rightY := j.partyBlock("To", j.view.Customer, geom.Width/2+5, j.y)
	j.y = maxY(leftY, rightY) + 8
}

// partyBlock writes the section title, the bold name, then only the detail
// lines that are present. Empty fields leave no blank lines.
func (j *job) partyBlock(title string, p normalize.PartyView, x, y float64) float64 {
	y = j.eng.PlaceText(title, x, y, layout.TextStyle{Size: 12, Bold: true, Color: colorGray900})
	y += 4
	if p.Name != "" {
		y = j.eng.PlaceText(p.Name, x, y, layout.TextStyle{Size: 11, Bold: true, Color: colorGray900})
	}
	for _, line := range p.Details {
		y = j.eng.PlaceText(line, x, y, layout.TextStyle{Size: 10, Color: colorGray500})
	}
	return y
}

func (j *job) itemsTable() {
	geom := j.eng.Geometry()
	margin := geom.Margin
	tableTop := j.y

	col1X := margin + 3
	col2X := geom.Width - 90
	col3X := geom.Width - 55
	col4X := geom.Width - margin - 3

	j.eng.PlaceBox(margin, tableTop, geom.ContentWidth(), tableHeaderHeight, colorBand, false)
	j.eng.PlaceRule(margin, tableTop+tableHeaderHeight, geom.Width-margin, tableTop+tableHeaderHeight, colorLine, 2)

	head := layout.TextStyle{Size: 11, Bold: true, Color: colorGray900}
	headRight := head
	headRight.Align = layout.AlignRight
	j.eng.PlaceText("Description", col1X, tableTop+8, head)
	j.eng.PlaceText("Qty", col2X, tableTop+8, headRight)
	j.eng.PlaceText("Rate", col3X, tableTop+8, headRight)
	j.eng.PlaceText("Amount", col4X, tableTop+8, headRight)

	j.y = tableTop + tableHeaderHeight + 2

	descStyle := layout.TextStyle{Size: 10, Color: colorGray800}
	numStyle := layout.TextStyle{Size: 10, Align: layout.AlignRight, Color: colorGray600}
	amountStyle := layout.TextStyle{Size: 10, Bold: true, Align: layout.AlignRight, Color: colorGray900}

	for _, item := range j.view.Items {
		j.y = j.eng.BreakIf(j.y, itemsBottomReserve)

		j.eng.PlaceRule(margin, j.y+rowHeight, geom.Width-margin, j.y+rowHeight, colorRowLine, 0.5)
		j.eng.PlaceText(item.Description, col1X, j.y+8, descStyle)
		j.eng.PlaceText(item.Quantity, col2X, j.y+8, numStyle)
		j.eng.PlaceText(item.Rate, col3X, j.y+8, numStyle)
		j.eng.PlaceText(item.Amount, col4X, j.y+8, amountStyle)

		j.y += rowHeight
	}

	j.y += 8
}

// totals draws the right-aligned summary: subtotal, optional tax line, then
// the emphasized total on a filled band. Removing the tax line only removes
// the middle row; subtotal and total keep their relative placement.
func (j *job) totals() {
	geom := j.eng.Geometry()
	totalsStartX := geom.Width - 90
	const totalsWidth = 75.0
	labelX := totalsStartX - 30
	valueX := totalsStartX + totalsWidth

	labelStyle := layout.TextStyle{Size: 10, Color: colorGray500}
	valueStyle := layout.TextStyle{Size: 10, Align: layout.AlignRight, Color: colorGray900}

	subtotalY := j.y
	j.eng.PlaceText("Subtotal:", labelX, subtotalY, labelStyle)
	j.eng.PlaceText(j.view.Subtotal, valueX, subtotalY, valueStyle)
	j.y = subtotalY + 6

	if j.view.ShowTax {
		j.eng.PlaceText(j.view.TaxLabel, labelX, j.y, labelStyle)
		j.eng.PlaceText(j.view.TaxAmount, valueX, j.y, valueStyle)
		j.y += 6
	}

	j.eng.PlaceRule(labelX, j.y+2, valueX, j.y+2, colorLine, 0.5)
	j.y += 8

	j.eng.PlaceBox(totalsStartX-35, j.y-2, totalsWidth+10, totalRowHeight, colorBand, false)
	j.eng.PlaceText("Total:", labelX, j.y+6, layout.TextStyle{Size: 13, Bold: true, Color: colorGray900})
	j.eng.PlaceText(j.view.Total, valueX, j.y+6, layout.TextStyle{Size: 13, Bold: true, Align: layout.AlignRight, Color: colorBlue})

	j.y += totalRowHeight + 10
}

func (j *job) notesTerms() {
	if len(j.view.Notes) == 0 && len(j.view.Terms) == 0 {
		return
	}
	j.y = j.eng.BreakIf(j.y, notesBottomReserve)

	j.textBlock("Notes", j.view.Notes)
	j.textBlock("Payment Terms", j.view.Terms)
}

// textBlock places a titled block of pre-split lines. Lines are never
// re-wrapped; each input line is one text instruction.
func (j *job) textBlock(title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	margin := j.eng.Geometry().Margin
	j.y = j.eng.PlaceText(title, margin, j.y, layout.TextStyle{Size: 12, Bold: true, Color: colorGray900})
	j.y += 3
	for _, line := range lines {
		j.y = j.eng.PlaceText(line, margin, j.y, layout.TextStyle{Size: 10, Color: colorGray500})
	}
	j.y += 8
}

// footer is a document trailer: drawn once after all content, so it lands on
// the final page only when the table has overflowed.
func (j *job) footer() {
	geom := j.eng.Geometry()
	footerY := geom.Height - 20

	j.eng.PlaceRule(geom.Margin, footerY-10, geom.Width-geom.Margin, footerY-10, colorLine, 0.5)

	st := layout.TextStyle{Size: 9, Align: layout.AlignCenter, Color: colorGray400}
	j.eng.PlaceText("Generated on "+normalize.FormatTimestamp(j.now), geom.Width/2, footerY-2, st)
	j.eng.PlaceText(footerDisclaimer, geom.Width/2, footerY+4, st)
}

func maxY(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
