package norx

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrAuthenticationFailed is returned by Open when the received tag does
// not match the one computed over the candidate plaintext and associated
// data. It carries no further context, deliberately: anything more
// specific would be a side channel on *why* verification failed.
var ErrAuthenticationFailed = errors.New("norx: authentication failed")

// AEAD orchestrates the NORX pipeline (init -> header -> payload ->
// trailer -> tag) over a fixed Params[T]. An AEAD value is immutable and
// safe for concurrent use by multiple goroutines, since every Seal/Open
// call builds its own state from scratch.
type AEAD[T Word] struct {
	p *Params[T]
}

// New builds an AEAD bound to the given parameter block.
func New[T Word](p *Params[T]) *AEAD[T] {
	return &AEAD[T]{p: p}
}

// Params returns the parameter block this AEAD was constructed with.
func (a *AEAD[T]) Params() *Params[T] { return a.p }

func (a *AEAD[T]) checkLengths(nonce, key []byte) error {
	if len(key) != a.p.BytesKey() {
		return pkgerrors.Errorf("norx: invalid key length: got %d bytes, want %d", len(key), a.p.BytesKey())
	}
	if len(nonce) != a.p.BytesNonce() {
		return pkgerrors.Errorf("norx: invalid nonce length: got %d bytes, want %d", len(nonce), a.p.BytesNonce())
	}
	return nil
}

// Seal encrypts plaintext and authenticates header, plaintext, and trailer
// under nonce and key, returning ciphertext || tag. len(key) must equal
// Params().BytesKey() and len(nonce) must equal Params().BytesNonce().
func (a *AEAD[T]) Seal(header, plaintext, trailer, nonce, key []byte) ([]byte, error) {
	if err := a.checkLengths(nonce, key); err != nil {
		return nil, err
	}

	s := initState(a.p, nonce, key)
	s.absorbData(header, headerTag)
	body := s.encryptData(plaintext)
	s.absorbData(trailer, trailerTag)
	tag := s.generateTag()

	burnWords(s.w[:])
	return append(body, tag...), nil
}

// Open authenticates header, ciphertext, and trailer, and decrypts
// ciphertext, returning the plaintext only if the embedded tag verifies.
// On any authentication failure it returns ErrAuthenticationFailed and a
// nil plaintext; the candidate plaintext is never returned to the caller
// on that path, and is zeroised before Open returns.
func (a *AEAD[T]) Open(header, ciphertext, trailer, nonce, key []byte) ([]byte, error) {
	if err := a.checkLengths(nonce, key); err != nil {
		return nil, err
	}

	bt := a.p.BytesTag()
	if len(ciphertext) < bt {
		return nil, pkgerrors.Errorf("norx: ciphertext too short: got %d bytes, need at least %d", len(ciphertext), bt)
	}
	body := ciphertext[:len(ciphertext)-bt]
	received := ciphertext[len(ciphertext)-bt:]

	s := initState(a.p, nonce, key)
	s.absorbData(header, headerTag)
	candidate := s.decryptData(body)
	s.absorbData(trailer, trailerTag)
	expected := s.generateTag()

	if verifyTag(received, expected) != 0 {
		burn(candidate)
		burnWords(s.w[:])
		return nil, ErrAuthenticationFailed
	}

	burnWords(s.w[:])
	return candidate, nil
}
