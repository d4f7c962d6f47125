package render

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"rgba(232, 232, 232, 1)", color.NRGBA{232, 232, 232, 255}},
		{"rgba(0, 100, 0, 1)", color.NRGBA{0, 100, 0, 255}},
		{"rgba(12,34,56,0.40)", color.NRGBA{12, 34, 56, 102}},
		{" rgba(255, 0, 255, 0) ", color.NRGBA{255, 0, 255, 0}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"#ffffff",
		"rgb(1, 2, 3)",
		"rgba(1, 2, 3)",
		"rgba(256, 0, 0, 1)",
		"rgba(1, 2, 3, 1.5)",
		"rgba(a, 2, 3, 1)",
		"rgba(1, 2, 3, 1",
	} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) err = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestSameColorIgnoresOpacity(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"rgba(1, 2, 3, 0.40)", "rgba(1, 2, 3, 0.70)", true},
		{"rgba(232, 232, 232, 1)", "rgba(232, 232, 232, 0.55)", true},
		{"rgba(1, 2, 3, 0.40)", "rgba(1, 2, 4, 0.40)", false},
		{"rgba(12, 3, 4, 0.5)", "rgba(1, 23, 4, 0.5)", false},
	}
	for _, tt := range tests {
		if got := sameColor(tt.a, tt.b); got != tt.want {
			t.Errorf("sameColor(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRecorderRejectsInvalidColor(t *testing.T) {
	if err := NewRecorder().SetFillStyle("#ffffff"); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("err = %v, want ErrInvalidColor", err)
	}
}
