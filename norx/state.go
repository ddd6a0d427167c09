package norx

// state is the 16-word NORX sponge state, logically a 4x4 matrix with
// words indexed row-major: the first 10 words (index 0..9) are the rate
// region, the remaining 6 the capacity. It is owned exclusively by a
// single AEAD call, never shared, and carries no locking.
type state[T Word] struct {
	w [16]T
	p *Params[T]
}

func newEmptyState[T Word](p *Params[T]) *state[T] {
	return &state[T]{p: p}
}

// quarter applies the round function G to the four words at indices
// i, j, k, l, in place.
func (s *state[T]) quarter(i, j, k, l int) {
	p := s.p
	a, b, c, d := s.w[i], s.w[j], s.w[k], s.w[l]

	a = h(a, b, p.mask)
	d = rotr(a^d, p.rot[0], p.W, p.mask)
	c = h(c, d, p.mask)
	b = rotr(b^c, p.rot[1], p.W, p.mask)
	a = h(a, b, p.mask)
	d = rotr(a^d, p.rot[2], p.W, p.mask)
	c = h(c, d, p.mask)
	b = rotr(b^c, p.rot[3], p.W, p.mask)

	s.w[i], s.w[j], s.w[k], s.w[l] = a, b, c, d
}

// f applies one round of the NORX permutation: G column-wise, then G
// across the four right-shifted diagonals.
func (s *state[T]) f() {
	s.quarter(0, 4, 8, 12)
	s.quarter(1, 5, 9, 13)
	s.quarter(2, 6, 10, 14)
	s.quarter(3, 7, 11, 15)

	s.quarter(0, 5, 10, 15)
	s.quarter(1, 6, 11, 12)
	s.quarter(2, 7, 8, 13)
	s.quarter(3, 4, 9, 14)
}

// fR applies f R times, R taken from the state's Params.
func (s *state[T]) fR() {
	for i := 0; i < s.p.R; i++ {
		s.f()
	}
}
