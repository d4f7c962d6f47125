package render

// FontStyle is the slant of the glyphs drawn in one pass.
type FontStyle string

const (
	FontNormal  FontStyle = "normal"
	FontItalic  FontStyle = "italic"
	FontOblique FontStyle = "oblique"
)

// Font selects the face used by MeasureText and FillText.
type Font struct {
	Style FontStyle
	Size  float64 // px
}

// Surface is the drawing context a pass paints on. It mirrors the subset of
// a 2D canvas the painters need. Any returned error aborts the pass.
//
// Path points are mapped through the current transform when they are added.
// LineTo on an empty path starts the path at that point.
// FillText draws text centered horizontally and vertically on (x, y).
type Surface interface {
	ClearRect(x, y, w, h float64) error
	FillRect(x, y, w, h float64) error

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill() error

	SetFillStyle(color string) error

	Save()
	Restore()
	Translate(x, y float64) error
	Rotate(angle float64) error

	SetFont(f Font) error
	MeasureText(s string) (float64, error)
	FillText(s string, x, y float64) error
}
