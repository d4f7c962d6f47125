package render

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	jitterEpsilon  = 0.001
	maxGlyphDegree = 20

	// 旋转方向取 [-0.3, 0.1) 的符号，约 3/4 的字符向左倾
	tiltLow  = -0.3
	tiltHigh = 0.1
)

// GlyphColors is the palette each character's fill is picked from:
// red, dark green, blue, black.
var GlyphColors = [4]string{
	"rgba(255, 0, 0, 1)",
	"rgba(0, 100, 0, 1)",
	"rgba(0, 0, 255, 1)",
	"rgba(0, 0, 0, 1)",
}

// FontStyles are the slants a pass picks from.
var FontStyles = [3]FontStyle{FontNormal, FontItalic, FontOblique}

// Glyph is one drawn character.
type Glyph struct {
	Char     string
	X, Y     float64 // anchor after jitter
	Rotation float64 // degrees, signed
	Color    string
}

// Typeset is the outcome of a GlyphPainter pass.
type Typeset struct {
	Style     FontStyle
	CellWidth float64
	Glyphs    []Glyph
}

// PaintGlyphs draws text one character per equal-width cell across the viewport,
// each jittered, rotated and colored independently. The font style is shared.
func PaintGlyphs(s Surface, opts CanvasOptions, text string, r *rand.Rand) (Typeset, error) {
	chars := []rune(text)
	ts := Typeset{Style: FontStyles[r.IntN(len(FontStyles))]}
	if len(chars) == 0 || opts.ViewportWidth() <= 0 {
		return ts, nil
	}
	ts.CellWidth = opts.ViewportWidth() / float64(len(chars))
	ts.Glyphs = make([]Glyph, 0, len(chars))

	s.Save()
	defer s.Restore()
	if err := s.SetFont(Font{Style: ts.Style, Size: opts.FontSize}); err != nil {
		return ts, err
	}
	left := opts.StarSize // 累计偏移，从视口左边开始
	middleY := opts.Height / 2
	for i, c := range chars {
		g, err := paintGlyph(s, opts, string(c), left+ts.CellWidth/2, middleY, r)
		if err != nil {
			return ts, fmt.Errorf("glyph %d: %w", i, err)
		}
		ts.Glyphs = append(ts.Glyphs, g)
		left += ts.CellWidth
	}
	return ts, nil
}

// tilt gives deg the sign of a draw from [tiltLow, tiltHigh).
func tilt(r *rand.Rand, deg float64) float64 {
	return math.Copysign(deg, uniform(r, tiltLow, tiltHigh))
}

func paintGlyph(s Surface, opts CanvasOptions, char string, cx, cy float64, r *rand.Rand) (Glyph, error) {
	m, err := s.MeasureText(char)
	if err != nil {
		return Glyph{}, err
	}
	g := Glyph{
		Char:     char,
		X:        cx + signed(r, uniform(r, 0, m/5+jitterEpsilon)),
		Y:        cy + signed(r, uniform(r, 0, opts.FontSize/2+jitterEpsilon)),
		Rotation: tilt(r, uniform(r, 0, maxGlyphDegree+jitterEpsilon)),
		Color:    GlyphColors[r.IntN(len(GlyphColors))],
	}

	s.Save()
	defer s.Restore()
	if err := s.Translate(g.X, g.Y); err != nil {
		return g, err
	}
	if err := s.Rotate(radians(g.Rotation)); err != nil {
		return g, err
	}
	if err := s.SetFillStyle(g.Color); err != nil {
		return g, err
	}
	return g, s.FillText(char, 0, 0)
}
