package norx

import "runtime"

// burn overwrites b with zeroes. runtime.KeepAlive pins b past the loop so
// the store can't be proven dead and elided by the compiler, the same
// concern that motivates explicit zeroisation primitives elsewhere in the
// ecosystem (e.g. golang.org/x/crypto's internal clearing helpers).
func burn(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// burnWords zeroises a state's word array in place.
func burnWords[T Word](w []T) {
	for i := range w {
		w[i] = 0
	}
	runtime.KeepAlive(w)
}
