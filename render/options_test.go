package render

import (
	"errors"
	"testing"
)

func TestDefaultCanvasOptions(t *testing.T) {
	o := DefaultCanvasOptions()
	if o.ViewportWidth() != 136 || o.ViewportHeight() != 36 {
		t.Fatalf("viewport = %vx%v, want 136x36", o.ViewportWidth(), o.ViewportHeight())
	}
	if o.SpaceThreshold() != 14 {
		t.Fatalf("space threshold = %v, want 14", o.SpaceThreshold())
	}
	if !o.placeable() {
		t.Fatal("default options should place stars")
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		def  float64
		want float64
	}{
		{"", 150, 150},
		{"  ", 50, 50},
		{"200", 150, 200},
		{"200px", 150, 200},
		{"80.5px", 50, 80.5},
		{" 42 px", 50, 42},
	}
	for _, tt := range tests {
		got, err := ParseDimension(tt.in, tt.def)
		if err != nil {
			t.Errorf("ParseDimension(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDimension(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDimensionInvalid(t *testing.T) {
	for _, in := range []string{"px", "auto", "--3"} {
		got, err := ParseDimension(in, 150)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("ParseDimension(%q) err = %v, want ErrInvalidDimension", in, err)
		}
		if got != 150 {
			t.Errorf("ParseDimension(%q) = %v, want default", in, got)
		}
	}
}
