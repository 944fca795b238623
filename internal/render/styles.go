package render

import "github.com/smallbiznis/invoicepdf/internal/render/layout"

// Palette lifted from the dashboard preview so PDF output matches it.
var (
	colorGray900 = layout.ParseHex("#111827")
	colorGray800 = layout.ParseHex("#1F2937")
	colorGray600 = layout.ParseHex("#4B5563")
	colorGray500 = layout.ParseHex("#6B7280")
	colorGray400 = layout.ParseHex("#9CA3AF")
	colorLine    = layout.ParseHex("#E5E7EB")
	colorRowLine = layout.ParseHex("#F3F4F6")
	colorBand    = layout.ParseHex("#F9FAFB")
	colorBlue    = layout.ParseHex("#2563EB")

	badgeActiveBg   = layout.ParseHex("#DCFCE7")
	badgeActiveText = layout.ParseHex("#166534")
	badgeOverdueBg  = layout.ParseHex("#FEE2E2")
	badgeOverdueTxt = layout.ParseHex("#DC2626")
)

const (
	badgeActiveLabel  = "Active"
	badgeOverdueLabel = "Overdue"

	rowHeight         = 12.0
	tableHeaderHeight = 12.0
	totalRowHeight    = 12.0

	// Bottom reserves consulted before each row and before the notes block.
	itemsBottomReserve = 60.0
	notesBottomReserve = 80.0

	footerDisclaimer = "This is a computer-generated invoice."
)
