package norx

// encryptBlock injects PAYLOAD_TAG, runs F^R, then XORs a full rate-byte
// plaintext block into the rate words, emitting the post-XOR rate words as
// ciphertext.
func (s *state[T]) encryptBlock(block []byte) []byte {
	s.w[15] ^= payloadTag
	s.fR()

	bw := s.p.BytesWord()
	out := make([]byte, s.p.BytesRate())
	for i := 0; i < s.p.WordsRate(); i++ {
		s.w[i] ^= loadWord[T](block[i*bw:], s.p.W)
		storeWord(out[i*bw:], s.w[i], s.p.W)
	}
	return out
}

// encryptLastblock pads remainder to a full rate block, encrypts it, and
// truncates the output back to len(remainder) bytes.
func (s *state[T]) encryptLastblock(remainder []byte) []byte {
	out := s.encryptBlock(pad(remainder, s.p.BytesRate()))
	return out[:len(remainder)]
}

// encryptData mirrors absorbData's control structure: nothing at all
// happens for an empty plaintext (no PAYLOAD_TAG injection), but for any
// non-empty plaintext the trailing call to encryptLastblock always runs
// once the full-rate blocks are consumed, even when the remainder left
// over is itself empty because len(m) was an exact multiple of the rate.
// Skipping that call on an aligned length would still emit the right
// ciphertext bytes (zero of them) but would leave the sponge state one
// PAYLOAD_TAG/F^R short before the trailer is absorbed, producing a tag
// that does not match the reference.
func (s *state[T]) encryptData(m []byte) []byte {
	if len(m) == 0 {
		return nil
	}

	rate := s.p.BytesRate()
	out := make([]byte, 0, len(m)+rate)

	off := 0
	for len(m)-off >= rate {
		out = append(out, s.encryptBlock(m[off:off+rate])...)
		off += rate
	}
	out = append(out, s.encryptLastblock(m[off:])...)
	return out
}

// decryptBlock injects PAYLOAD_TAG, runs F^R, restores each rate word to
// the ciphertext word (so later absorption/tag generation matches the
// encryptor's state), and emits the XOR as plaintext.
func (s *state[T]) decryptBlock(block []byte) []byte {
	s.w[15] ^= payloadTag
	s.fR()

	bw := s.p.BytesWord()
	out := make([]byte, s.p.BytesRate())
	for i := 0; i < s.p.WordsRate(); i++ {
		ci := loadWord[T](block[i*bw:], s.p.W)
		storeWord(out[i*bw:], s.w[i]^ci, s.p.W)
		s.w[i] = ci
	}
	return out
}

// decryptLastblock reconstructs the padded keystream block the encryptor
// produced: it serialises the current rate words, overlays the ciphertext
// remainder, then reapplies the same 10*1 pad bits the encryptor's pad()
// would have XORed into that tail.
func (s *state[T]) decryptLastblock(remainder []byte) []byte {
	s.w[15] ^= payloadTag
	s.fR()

	rate := s.p.BytesRate()
	bw := s.p.BytesWord()

	y := make([]byte, rate)
	for i := 0; i < s.p.WordsRate(); i++ {
		storeWord(y[i*bw:], s.w[i], s.p.W)
	}
	copy(y, remainder)
	l := len(remainder)
	y[l] ^= 0x01
	y[rate-1] ^= 0x80

	out := make([]byte, rate)
	for i := 0; i < s.p.WordsRate(); i++ {
		ci := loadWord[T](y[i*bw:], s.p.W)
		storeWord(out[i*bw:], s.w[i]^ci, s.p.W)
		s.w[i] = ci
	}
	return out[:l]
}

// decryptData mirrors encryptData's control structure, including the
// unconditional trailing decryptLastblock call for any non-empty input.
func (s *state[T]) decryptData(c []byte) []byte {
	if len(c) == 0 {
		return []byte{}
	}

	rate := s.p.BytesRate()
	out := make([]byte, 0, len(c))

	off := 0
	for len(c)-off >= rate {
		out = append(out, s.decryptBlock(c[off:off+rate])...)
		off += rate
	}
	out = append(out, s.decryptLastblock(c[off:])...)
	return out
}
