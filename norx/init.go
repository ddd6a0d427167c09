package norx

// initState loads key and nonce into a fresh state and runs the initial
// F^R permutation. Callers must have already validated len(key) ==
// p.BytesKey() and len(nonce) == p.BytesNonce().
func initState[T Word](p *Params[T], nonce, key []byte) *state[T] {
	s := newEmptyState(p)
	bw := p.BytesWord()

	k0 := loadWord[T](key[0*bw:], p.W)
	k1 := loadWord[T](key[1*bw:], p.W)
	k2 := loadWord[T](key[2*bw:], p.W)
	k3 := loadWord[T](key[3*bw:], p.W)
	n0 := loadWord[T](nonce[0*bw:], p.W)
	n1 := loadWord[T](nonce[1*bw:], p.W)

	s.w[0], s.w[1], s.w[2], s.w[3] = p.u[0], n0, n1, p.u[1]
	s.w[4], s.w[5], s.w[6], s.w[7] = k0, k1, k2, k3
	s.w[8], s.w[9], s.w[10], s.w[11] = p.u[2], p.u[3], p.u[4], p.u[5]
	s.w[12], s.w[13], s.w[14], s.w[15] = p.u[6], p.u[7], p.u[8], p.u[9]

	s.w[12] ^= T(p.W)
	s.w[13] ^= T(p.R)
	s.w[14] ^= T(p.D)
	s.w[15] ^= T(p.TBits)

	s.fR()
	return s
}
