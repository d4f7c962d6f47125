package render

import (
	"fmt"
	"math/rand/v2"
	"unicode/utf8"
)

// Frame is everything one pass decided, in drawing order.
type Frame struct {
	Options    CanvasOptions
	Background string
	Stars      []Star
	Typeset
}

// Redraw runs a full pass: clear, background, stars, then text.
// The first surface error aborts the pass and is returned.
func Redraw(s Surface, opts CanvasOptions, text string, r *rand.Rand) (*Frame, error) {
	log := Logger()
	f := &Frame{Options: opts}
	if err := s.ClearRect(0, 0, opts.Width, opts.Height); err != nil {
		return nil, fmt.Errorf("clear: %w", err)
	}

	bg, err := PaintBackground(s, opts, r)
	if err != nil {
		return nil, fmt.Errorf("draw background: %w", err)
	}
	f.Background = bg
	log.Debug("redraw", "options", opts.String(), "background", bg, "textLen", utf8.RuneCountInString(text))

	f.Stars, err = PaintStars(s, opts, bg, r)
	if err != nil {
		return nil, fmt.Errorf("draw stars: %w", err)
	}
	log.Debug("stars placed", "count", len(f.Stars))

	f.Typeset, err = PaintGlyphs(s, opts, text, r)
	if err != nil {
		return nil, fmt.Errorf("draw text: %w", err)
	}
	return f, nil
}
