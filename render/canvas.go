package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
)

// 错切系数，负值向右倾
const obliqueShear = -0.25

type faceKey struct {
	style FontStyle
	size  float64
}

type canvasConfig struct {
	regular []byte
	italic  []byte
}

type CanvasOption func(*canvasConfig)

// WithFontData replaces the embedded Go Bold faces with one TrueType font.
// Use it for glyph coverage the Go fonts lack, e.g. CJK characters.
// Italic text is then drawn sheared.
func WithFontData(ttf []byte) CanvasOption {
	return func(c *canvasConfig) {
		c.regular = ttf
		c.italic = nil
	}
}

// Canvas is a raster Surface backed by a gg context.
type Canvas struct {
	dc      *gg.Context
	regular *truetype.Font
	italic  *truetype.Font // nil: shear the regular face
	faces   map[faceKey]font.Face

	font  *Font
	saved []*Font
}

// NewCanvas allocates a width×height RGBA canvas, rounded up to whole pixels.
func NewCanvas(width, height float64, opts ...CanvasOption) (*Canvas, error) {
	cfg := canvasConfig{regular: gobold.TTF, italic: gobolditalic.TTF}
	for _, o := range opts {
		o(&cfg)
	}
	regular, err := truetype.Parse(cfg.regular)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	c := &Canvas{
		dc:      gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height))),
		regular: regular,
		faces:   make(map[faceKey]font.Face),
	}
	if cfg.italic != nil {
		if c.italic, err = truetype.Parse(cfg.italic); err != nil {
			return nil, fmt.Errorf("render: parse italic font: %w", err)
		}
	}
	return c, nil
}

// Image returns the pixels drawn so far. Nil after Close.
func (c *Canvas) Image() image.Image {
	if c.dc == nil {
		return nil
	}
	return c.dc.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.dc == nil {
		return ErrSurfaceClosed
	}
	return png.Encode(w, c.dc.Image())
}

func (c *Canvas) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close releases the pixel buffer and font faces. Later calls fail with ErrSurfaceClosed.
func (c *Canvas) Close() error {
	for _, f := range c.faces {
		f.Close()
	}
	c.faces = nil
	c.dc = nil
	return nil
}

// ClearRect makes the rectangle fully transparent. It works in device space
// and ignores the current transform.
func (c *Canvas) ClearRect(x, y, w, h float64) error {
	if c.dc == nil {
		return ErrSurfaceClosed
	}
	im, ok := c.dc.Image().(draw.Image)
	if !ok {
		return fmt.Errorf("render: canvas image %T is not drawable", c.dc.Image())
	}
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	draw.Draw(im, r, image.Transparent, image.Point{}, draw.Src)
	return nil
}

func (c *Canvas) FillRect(x, y, w, h float64) error {
	if c.dc == nil {
		return ErrSurfaceClosed
	}
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
	return nil
}

func (c *Canvas) BeginPath() {
	if c.dc != nil {
		c.dc.ClearPath()
	}
}

func (c *Canvas) MoveTo(x, y float64) {
	if c.dc != nil {
		c.dc.MoveTo(x, y)
	}
}

// 路径为空时等同 MoveTo
func (c *Canvas) LineTo(x, y float64) {
	if c.dc != nil {
		c.dc.LineTo(x, y)
	}
}

func (c *Canvas) ClosePath() {
	if c.dc != nil {
		c.dc.ClosePath()
	}
}

func (c *Canvas) Fill() error {
	if c.dc == nil {
		return ErrSurfaceClosed
	}
	c.dc.Fill()
	return nil
}

func (c *Canvas) SetFillStyle(s string) error {
	if c.dc == nil {
		return ErrSurfaceClosed
	}
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.dc.SetColor(col)
	return nil
}

// 保存变换、填充色和字体
func (c *Canvas) Save() {
	if c.dc == nil {
		return
	}
	c.dc.Push()
	c.saved = append(c.saved, c.font)
}

func (c *Canvas) Restore() {
	if c.dc == nil || len(c.saved) == 0 {
		return
	}
	c.dc.Pop()
	c.font = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

func (c *Canvas) Translate(x, y float64) error {
	if c.dc == nil {
		return ErrSurfaceClosed
	}
	c.dc.Translate(x, y)
	return nil
}

// Rotate turns the transform clockwise by angle radians.
func (c *Canvas) Rotate(angle float64) error {
	if c.dc == nil {
		return ErrSurfaceClosed
	}
	c.dc.Rotate(angle)
	return nil
}

func (c *Canvas) SetFont(f Font) error {
	if c.dc == nil {
		return ErrSurfaceClosed
	}
	if f.Size <= 0 {
		return fmt.Errorf("render: font size %g", f.Size)
	}
	c.dc.SetFontFace(c.face(f))
	c.font = &f
	return nil
}

// source 斜体有专用字体时用斜体，否则用正体（绘制时再做错切）
func (c *Canvas) source(style FontStyle) *truetype.Font {
	if style == FontItalic && c.italic != nil {
		return c.italic
	}
	return c.regular
}

func (c *Canvas) face(f Font) font.Face {
	src := c.source(f.Style)
	key := faceKey{style: f.Style, size: f.Size}
	if key.style != FontItalic || c.italic == nil {
		key.style = FontNormal
	}
	if face, ok := c.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(src, &truetype.Options{Size: f.Size})
	c.faces[key] = face
	return face
}

// Covers reports whether every font style can draw r.
func (c *Canvas) Covers(r rune) bool {
	if c.regular.Index(r) == 0 {
		return false
	}
	return c.italic == nil || c.italic.Index(r) != 0
}

// 字形索引 0 是缺字方框
func (c *Canvas) checkGlyphs(s string) error {
	src := c.source(c.font.Style)
	for _, r := range s {
		if src.Index(r) == 0 {
			return fmt.Errorf("%w: %q", ErrMissingGlyph, r)
		}
	}
	return nil
}

func (c *Canvas) sheared() bool {
	switch c.font.Style {
	case FontOblique:
		return true
	case FontItalic:
		return c.italic == nil
	}
	return false
}

func (c *Canvas) MeasureText(s string) (float64, error) {
	if c.dc == nil {
		return 0, ErrSurfaceClosed
	}
	if c.font == nil {
		return 0, ErrNoFont
	}
	if err := c.checkGlyphs(s); err != nil {
		return 0, err
	}
	w, _ := c.dc.MeasureString(s)
	return w, nil
}

func (c *Canvas) FillText(s string, x, y float64) error {
	if c.dc == nil {
		return ErrSurfaceClosed
	}
	if c.font == nil {
		return ErrNoFont
	}
	if err := c.checkGlyphs(s); err != nil {
		return err
	}
	if c.sheared() {
		c.dc.Push()
		defer c.dc.Pop()
		c.dc.Translate(x, y)
		c.dc.Shear(obliqueShear, 0)
		x, y = 0, 0
	}
	c.dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
	return nil
}
