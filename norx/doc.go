// Package norx implements the NORX sponge-based authenticated encryption with
// associated data (AEAD) scheme.
//
// NORX iterates a 16-word permutation over a sponge-style state: a key and
// nonce are absorbed during initialisation, header and trailer bytes are
// absorbed as associated data, the payload is encrypted or decrypted a rate
// block at a time, and a tag is squeezed out at the end for authentication.
// The word width (32 or 64 bits), round count, and tag length are fixed at
// construction time via Params; this package implements the serial (D=1)
// mode only — the BRANCH_TAG/MERGE_TAG domain constants used by the
// parallel tree mode are defined but never injected.
//
// Callers on confidential data should treat a failed Open as returning no
// usable plaintext: the candidate plaintext is zeroised before the error is
// returned.
package norx
