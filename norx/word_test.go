package norx

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordWidth(t *testing.T) {
	require.Equal(t, 32, wordWidth[uint32]())
	require.Equal(t, 64, wordWidth[uint64]())
}

func TestMaskFor(t *testing.T) {
	require.Equal(t, uint32(0xFFFFFFFF), maskFor[uint32](32))
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), maskFor[uint64](64))
}

// TestRotrHBitBounds checks property 8: for random words and any valid
// rotation amount, ROTR and H never produce a value outside the
// configured word width.
func TestRotrHBitBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mask64 := maskFor[uint64](64)
	mask32 := maskFor[uint32](32)

	for i := 0; i < 1000; i++ {
		a64, b64 := rng.Uint64(), rng.Uint64()
		for _, r := range rotTuple(64) {
			got := rotr(a64, r, 64, mask64)
			require.Equal(t, got, got&mask64)
		}
		require.Equal(t, h(a64, b64, mask64), h(a64, b64, mask64)&mask64)

		a32, b32 := rng.Uint32(), rng.Uint32()
		for _, r := range rotTuple(32) {
			got := rotr(a32, r, 32, mask32)
			require.Equal(t, got, got&mask32)
		}
		require.Equal(t, h(a32, b32, mask32), h(a32, b32, mask32)&mask32)
	}
}

// TestHCommutes checks that H is commutative: H(a,b) == H(b,a).
func TestHCommutes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	mask := maskFor[uint64](64)
	for i := 0; i < 100; i++ {
		a, b := rng.Uint64(), rng.Uint64()
		require.Equal(t, h(a, b, mask), h(b, a, mask))
	}
}

// TestRotrRoundTrip checks rotating right by r and then left by r (i.e.
// rotr by w-r) recovers the original value.
func TestRotrRoundTrip(t *testing.T) {
	mask := maskFor[uint64](64)
	a := uint64(0x0123456789ABCDEF)
	for _, r := range []uint{1, 8, 19, 40, 63} {
		rotated := rotr(a, r, 64, mask)
		back := rotr(rotated, 64-r, 64, mask)
		require.Equal(t, a, back)
	}
}
