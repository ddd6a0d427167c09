package norx

import "encoding/binary"

// Word is the unsigned integer type backing a NORX state word. The two
// permitted instantiations (uint32, uint64) are fully monomorphised by the
// Go compiler at each Params[T]/state[T] call site, so there is no
// per-operation branch on the configured width.
type Word interface {
	~uint32 | ~uint64
}

// wordWidth reports the bit width of T (32 or 64) without reflection: a
// fully-set T widened to uint64 has a value that identifies its own width.
func wordWidth[T Word]() int {
	x := ^T(0)
	if uint64(x) == 0xFFFFFFFF {
		return 32
	}
	return 64
}

// maskFor returns the low-w-bits mask for width w as a T. w is a function
// argument rather than a constant, so the shift/subtract below is evaluated
// at run time and never trips a "constant overflows T" compile error for
// the instantiation where w doesn't match T's width.
func maskFor[T Word](w int) T {
	return T((uint64(1) << uint(w)) - 1)
}

// rotr rotates a right by r bits within a w-bit word.
func rotr[T Word](a T, r uint, w int, mask T) T {
	return ((a >> r) | (a << (uint(w) - r))) & mask
}

// h is NORX's non-linear mixing primitive, an approximation of integer
// addition built from bitwise operations alone: (a XOR b) XOR ((a AND b) << 1).
func h[T Word](a, b, mask T) T {
	return (a ^ b ^ ((a & b) << 1)) & mask
}

// loadWord little-endian-decodes a w-bit word from the front of b.
func loadWord[T Word](b []byte, w int) T {
	if w == 32 {
		return T(binary.LittleEndian.Uint32(b))
	}
	return T(binary.LittleEndian.Uint64(b))
}

// storeWord little-endian-encodes v into the front of b as a w-bit word.
func storeWord[T Word](b []byte, v T, w int) {
	if w == 32 {
		binary.LittleEndian.PutUint32(b, uint32(v))
		return
	}
	binary.LittleEndian.PutUint64(b, uint64(v))
}
