package challenge

import (
	"math/rand/v2"
	"slices"
	"testing"
	"unicode/utf8"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestAlphabet(t *testing.T) {
	if len(Alphabet) != 67 {
		t.Fatalf("alphabet has %d symbols, want 67", len(Alphabet))
	}
	seen := make(map[rune]bool)
	for _, c := range Alphabet {
		if seen[c] {
			t.Fatalf("duplicate symbol %q", c)
		}
		seen[c] = true
	}
}

func TestGenerate(t *testing.T) {
	r := seeded(1)
	if got := Generate(r, 0); got != "" {
		t.Fatalf("Generate(0) = %q, want empty", got)
	}
	if got := Generate(r, -2); got != "" {
		t.Fatalf("Generate(-2) = %q, want empty", got)
	}
	for _, n := range []int{1, 5, 16, 64} {
		code := Generate(r, n)
		if got := utf8.RuneCountInString(code); got != n {
			t.Fatalf("Generate(%d) has %d characters", n, got)
		}
		for _, c := range code {
			if !slices.Contains(Alphabet, c) {
				t.Fatalf("Generate(%d) = %q contains %q outside the alphabet", n, code, c)
			}
		}
	}
}

func TestGenerateCoversAlphabet(t *testing.T) {
	seen := make(map[rune]bool)
	for _, c := range Generate(seeded(2), 5000) {
		seen[c] = true
	}
	if len(seen) != len(Alphabet) {
		t.Fatalf("5000 draws hit %d of %d symbols", len(seen), len(Alphabet))
	}
}

func TestDrawable(t *testing.T) {
	latin := Drawable(func(c rune) bool { return c < utf8.RuneSelf })
	if len(latin) != 62 {
		t.Fatalf("Drawable kept %d ASCII symbols, want 62", len(latin))
	}
	for _, c := range GenerateFrom(seeded(3), 500, latin) {
		if c >= utf8.RuneSelf {
			t.Fatalf("GenerateFrom drew %q outside the given symbols", c)
		}
	}
	if got := GenerateFrom(seeded(3), 5, nil); got != "" {
		t.Fatalf("GenerateFrom with no symbols = %q", got)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		code, answer string
		want         bool
	}{
		{"aB3你", "aB3你", true},
		{"aB3你", "  aB3你 ", true},
		{"aB3", "ａＢ３", true},
		{"aB3", "ab3", false},
		{"aB3", "aB", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := Match(tt.code, tt.answer); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.code, tt.answer, got, tt.want)
		}
	}
}
