package norx

import "golang.org/x/crypto/sha3"

// VectorFingerprint hashes a sequence of byte vectors together with
// SHA3-256, in the same spirit as an audit trail computed over a
// known-answer test suite: a single short digest callers can log or
// compare to confirm which fixed vectors a build was validated against.
func VectorFingerprint(vectors ...[]byte) [32]byte {
	h := sha3.New256()
	for _, v := range vectors {
		h.Write(v)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
