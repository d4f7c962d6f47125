package render

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// cryptoSource is a rand.Source backed by the operating system CSPRNG.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never fails on supported platforms.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// NewRandom returns a generator over the system CSPRNG, the production source.
func NewRandom() *rand.Rand {
	return rand.New(cryptoSource{})
}

// NewSeededRandom returns a deterministic generator. Two passes driven by
// generators with the same seed issue identical draw commands.
func NewSeededRandom(seed uint64) *rand.Rand {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return rand.New(rand.NewChaCha8(s))
}

// [lo, hi)
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// 随机正负号
func signed(r *rand.Rand, v float64) float64 {
	if r.IntN(2) == 0 {
		return math.Copysign(v, -1)
	}
	return math.Copysign(v, 1)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
