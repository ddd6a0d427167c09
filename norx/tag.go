package norx

// generateTag injects FINAL_TAG, applies F^R twice, and squeezes the first
// BytesTag() bytes out of the rate words.
func (s *state[T]) generateTag() []byte {
	s.w[15] ^= finalTag
	s.fR()
	s.fR()

	bw := s.p.BytesWord()
	buf := make([]byte, s.p.WordsRate()*bw)
	for i := 0; i < s.p.WordsRate(); i++ {
		storeWord(buf[i*bw:], s.w[i], s.p.W)
	}
	return buf[:s.p.BytesTag()]
}

// verifyTag compares two tags in constant time: every byte is touched
// regardless of where (or whether) they differ, and the result is derived
// from the accumulated OR of the per-byte XORs rather than branching on it.
// It returns 0 when the tags are equal and a non-zero value otherwise.
func verifyTag(received, expected []byte) int {
	if len(received) != len(expected) {
		return -1
	}
	var acc byte
	for i := range received {
		acc |= received[i] ^ expected[i]
	}
	return (((int(acc) - 1) >> 8) & 1) - 1
}
