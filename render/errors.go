package render

import "errors"

var (
	// ErrInvalidColor is returned when a fill style is not an rgba(r, g, b, a) string.
	ErrInvalidColor = errors.New("render: invalid color")

	// ErrNoFont is returned by text operations issued before SetFont.
	ErrNoFont = errors.New("render: no font set")

	// ErrSurfaceClosed is returned by every operation on a released surface.
	ErrSurfaceClosed = errors.New("render: surface closed")

	// ErrMissingGlyph is returned by text operations when the font has no glyph for a rune.
	ErrMissingGlyph = errors.New("render: font has no glyph")

	// ErrInvalidDimension is returned when a dimension string has no numeric prefix.
	ErrInvalidDimension = errors.New("render: invalid dimension")
)
