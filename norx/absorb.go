package norx

// absorbBlock injects tag into the capacity, runs F^R, then XORs a full
// rate-byte block into the rate words.
func (s *state[T]) absorbBlock(block []byte, tag T) {
	s.w[15] ^= tag
	s.fR()

	bw := s.p.BytesWord()
	for i := 0; i < s.p.WordsRate(); i++ {
		s.w[i] ^= loadWord[T](block[i*bw:], s.p.W)
	}
}

// absorbData absorbs x (header or trailer bytes) under the given domain
// tag. Full rate-byte blocks are absorbed directly; if x is non-empty, one
// further block is always absorbed with the trailing remainder padded to a
// full rate block, even when that remainder is empty because len(x) was an
// exact multiple of the rate. If x is empty, nothing is absorbed at all.
func (s *state[T]) absorbData(x []byte, tag T) {
	if len(x) == 0 {
		return
	}

	rate := s.p.BytesRate()
	off := 0
	for len(x)-off >= rate {
		s.absorbBlock(x[off:off+rate], tag)
		off += rate
	}
	s.absorbBlock(pad(x[off:], rate), tag)
}
