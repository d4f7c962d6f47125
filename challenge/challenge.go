// Package challenge generates the plaintext of a check code and matches answers against it.
package challenge

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/text/width"
)

// Alphabet is the symbol set codes are drawn from.
var Alphabet = []rune("0123456789" +
	"abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"你我他她它") // 需要支持中文的字体

// Generate returns n characters drawn uniformly, with replacement, from Alphabet.
// n <= 0 yields the empty string.
func Generate(r *rand.Rand, n int) string {
	return GenerateFrom(r, n, Alphabet)
}

func GenerateFrom(r *rand.Rand, n int, symbols []rune) string {
	if n <= 0 || len(symbols) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n * 3)
	for i := 0; i < n; i++ {
		b.WriteRune(symbols[r.IntN(len(symbols))])
	}
	return b.String()
}

// Drawable returns the Alphabet symbols for which covers is true, in order.
func Drawable(covers func(rune) bool) []rune {
	var out []rune
	for _, c := range Alphabet {
		if covers(c) {
			out = append(out, c)
		}
	}
	return out
}

// Normalize trims an entered answer and folds full-width Latin letters and digits
// to their narrow forms, so input typed through a CJK IME compares equal.
func Normalize(answer string) string {
	return width.Fold.String(strings.TrimSpace(answer))
}

// Match reports whether answer spells code. The comparison is case-sensitive.
func Match(code, answer string) bool {
	if code == "" {
		return false
	}
	return Normalize(answer) == code
}
