// Package layout holds the cursor engine and pagination controller. Pages
// are append-only instruction streams; nothing here knows about PDF encoding.
package layout

// Geometry is the fixed page box shared by every page of a render, in
// millimetres.
type Geometry struct {
	Width  float64
	Height float64
	Margin float64
}

// A4 is the only geometry the product ships.
func A4() Geometry {
	return Geometry{Width: 210, Height: 297, Margin: 20}
}

func (g Geometry) ContentWidth() float64 {
	return g.Width - 2*g.Margin
}

// RGB is a resolved draw color.
type RGB struct {
	R, G, B uint8
}

// ParseHex resolves "#RRGGBB". Malformed input falls back to the default
// text gray, mirroring the preview's behavior of never failing a draw call.
func ParseHex(s string) RGB {
	if len(s) != 7 || s[0] != '#' {
		return RGB{R: 51, G: 51, B: 51}
	}
	var out [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexVal(s[1+2*i])
		lo, ok2 := hexVal(s[2+2*i])
		if !ok1 || !ok2 {
			return RGB{R: 51, G: 51, B: 51}
		}
		out[i] = hi<<4 | lo
	}
	return RGB{R: out[0], G: out[1], B: out[2]}
}

func hexVal(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Align selects the text anchor relative to the given x.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// TextStyle carries everything a text instruction needs to be replayed.
type TextStyle struct {
	Size  float64
	Bold  bool
	Align Align
	Color RGB
}

// Text places a string at an explicit baseline anchor.
type Text struct {
	Content string
	X, Y    float64
	Style   TextStyle
}

// Rule is a stroked line segment.
type Rule struct {
	X1, Y1, X2, Y2 float64
	Color          RGB
	Width          float64
}

// Box is a filled rectangle, optionally with a light border.
type Box struct {
	X, Y, W, H float64
	Fill       RGB
	Border     bool
}

// Image places pre-decoded raster bytes at a fixed box.
type Image struct {
	Data       []byte
	Format     string
	X, Y, W, H float64
}

// Instruction is one drawing operation on a page.
type Instruction interface {
	instruction()
}

func (Text) instruction()  {}
func (Rule) instruction()  {}
func (Box) instruction()   {}
func (Image) instruction() {}

// Page is an append-only instruction stream. Once closed by the pagination
// controller it receives no further instructions.
type Page struct {
	ops    []Instruction
	closed bool
}

func (p *Page) Instructions() []Instruction { return p.ops }
func (p *Page) Closed() bool                { return p.closed }

func (p *Page) append(in Instruction) {
	if p.closed {
		// Closed pages are immutable; a late append is a sequencing bug in
		// the section renderers and is dropped rather than corrupting output.
		return
	}
	p.ops = append(p.ops, in)
}

// Text baseline advance: anchor + fontSize*0.35 + lineGap. The fixed ratio is
// tuned to the on-screen preview, not measured from glyph metrics.
const lineGap = 3.0

// ContinuationOffset is added to the top margin when the table resumes on a
// fresh page; continuation pages carry no header.
const ContinuationOffset = 20.0

// Engine owns the page list and the primitive draw operations. All state is
// per-render; a new Engine is created for every invocation.
type Engine struct {
	geom  Geometry
	pages []*Page
}

func NewEngine(geom Geometry) *Engine {
	return &Engine{
		geom:  geom,
		pages: []*Page{{}},
	}
}

func (e *Engine) Geometry() Geometry { return e.geom }
func (e *Engine) PageCount() int     { return len(e.pages) }
func (e *Engine) Pages() []*Page     { return e.pages }

func (e *Engine) current() *Page { return e.pages[len(e.pages)-1] }

// PlaceText appends a text instruction and returns the recommended next
// baseline.
func (e *Engine) PlaceText(content string, x, y float64, style TextStyle) float64 {
	e.current().append(Text{Content: content, X: x, Y: y, Style: style})
	return y + style.Size*0.35 + lineGap
}

func (e *Engine) PlaceRule(x1, y1, x2, y2 float64, color RGB, width float64) {
	e.current().append(Rule{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: color, Width: width})
}

func (e *Engine) PlaceBox(x, y, w, h float64, fill RGB, border bool) {
	e.current().append(Box{X: x, Y: y, W: w, H: h, Fill: fill, Border: border})
}

func (e *Engine) PlaceImage(data []byte, format string, x, y, w, h float64) {
	e.current().append(Image{Data: data, Format: format, X: x, Y: y, W: w, H: h})
}

// BreakIf is the pagination check run before each table row and before the
// notes/terms block. When y has entered the bottom reserve it closes the
// current page, opens the next one, and returns the continuation cursor;
// otherwise it returns y unchanged.
func (e *Engine) BreakIf(y, bottomReserve float64) float64 {
	if y > e.geom.Height-bottomReserve {
		e.current().closed = true
		e.pages = append(e.pages, &Page{})
		return e.geom.Margin + ContinuationOffset
	}
	return y
}
