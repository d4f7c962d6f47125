package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// CanvasOptions describes the drawing area and the clutter density of a check code image.
type CanvasOptions struct {
	Width     float64 // 画布宽度
	Height    float64 // 画布高度
	StarSize  float64 // 星星外接圆半径
	StarCount int     // 星星数量上限
	FontSize  float64 // 字号
}

// DefaultCodeLength is the length of a check code when the host does not configure one.
const DefaultCodeLength = 5

// DefaultCanvasOptions returns the stock 150×50 configuration.
func DefaultCanvasOptions() CanvasOptions {
	return CanvasOptions{
		Width:     150,
		Height:    50,
		StarSize:  7,
		StarCount: 25,
		FontSize:  22,
	}
}

// ViewportWidth is the width of the inset region star centers may land in.
func (o CanvasOptions) ViewportWidth() float64 {
	return o.Width - o.StarSize*2
}

// ViewportHeight is the height of the inset region star centers may land in.
func (o CanvasOptions) ViewportHeight() float64 {
	return o.Height - o.StarSize*2
}

// SpaceThreshold is the minimum center-to-center distance between two stars.
func (o CanvasOptions) SpaceThreshold() float64 {
	return o.StarSize * 2
}

// placeable reports whether at least one star center fits on the canvas.
func (o CanvasOptions) placeable() bool {
	return o.StarSize > 0 && o.StarCount > 0 && o.ViewportWidth() > 0 && o.ViewportHeight() > 0
}

func (o CanvasOptions) String() string {
	return fmt.Sprintf("width=%g height=%g starSize=%g starCount=%d fontSize=%g",
		o.Width, o.Height, o.StarSize, o.StarCount, o.FontSize)
}

// ParseDimension reads a CSS-like length such as "150px" or "150".
// The numeric part ends at the first letter. An empty string yields def.
func ParseDimension(s string, def float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	num := s
	if i := strings.IndexFunc(s, unicode.IsLetter); i >= 0 {
		num = s[:i]
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return def, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
	}
	return v, nil
}
