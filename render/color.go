package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

func formatRGBA(r, g, b int, opacity string) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, opacity)
}

// 去掉透明度，保留 rgba(r, g, b
func colorPrefix(c string) string {
	if i := strings.LastIndexByte(c, ','); i >= 0 {
		return c[:i]
	}
	return c
}

// sameColor compares two tokens on their R,G,B prefix only.
func sameColor(a, b string) bool {
	return colorPrefix(a) == colorPrefix(b)
}

// ParseColor converts an "rgba(r, g, b, a)" token into a color.NRGBA.
func ParseColor(s string) (color.NRGBA, error) {
	body, ok := strings.CutPrefix(strings.TrimSpace(s), "rgba(")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	parts := strings.Split(body, ",")
	if len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		ch[i] = uint8(v)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || a < 0 || a > 1 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: uint8(math.Round(a * 255))}, nil
}
