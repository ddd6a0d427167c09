package norx

import (
	"fmt"

	"github.com/pkg/errors"
)

// Params is an immutable NORX parameter block: word width, round count,
// parallelism degree, and tag length, plus everything derived from them.
// A *Params[T] is built once by NewParams (or one of the named presets) and
// then shared read-only across every AEAD call that uses it.
type Params[T Word] struct {
	W     int // word width in bits: 32 or 64
	R     int // number of F applications per F^R
	D     int // parallelism degree; this package only implements D == 1
	TBits int // tag length in bits

	rot  [4]uint
	u    [10]T
	mask T
}

// NewParams validates and constructs a Params[T]. T pins the word width:
// instantiate with uint32 for W=32 or uint64 for W=64.
//
//   - r must be >= 1.
//   - d must be >= 0; only d == 1 (serial mode) is implemented by the rest
//     of this package, but construction accepts any valid d so callers can
//     round-trip parameter blocks that merely describe a tree-mode variant.
//   - tagBits must satisfy 0 <= tagBits <= 10*W and be a whole number of
//     bytes.
func NewParams[T Word](r, d, tagBits int) (*Params[T], error) {
	w := wordWidth[T]()

	if r < 1 {
		return nil, errors.Errorf("norx: round count R must be >= 1, got %d", r)
	}
	if d < 0 {
		return nil, errors.Errorf("norx: parallelism degree D must be >= 0, got %d", d)
	}
	if tagBits < 0 || tagBits > 10*w {
		return nil, errors.Errorf("norx: tag length T must satisfy 0 <= T <= %d, got %d", 10*w, tagBits)
	}
	if tagBits%8 != 0 {
		return nil, errors.Errorf("norx: tag length T must be a whole number of bytes, got %d bits", tagBits)
	}

	return &Params[T]{
		W:     w,
		R:     r,
		D:     d,
		TBits: tagBits,
		rot:   rotTuple(w),
		u:     uConstants[T](w),
		mask:  maskFor[T](w),
	}, nil
}

// BytesWord is the byte width of a single state word (W/8).
func (p *Params[T]) BytesWord() int { return p.W / 8 }

// BytesKey is the key length in bytes (K/8, K = 4W).
func (p *Params[T]) BytesKey() int { return 4 * p.BytesWord() }

// BytesNonce is the nonce length in bytes (N/8, N = 2W).
func (p *Params[T]) BytesNonce() int { return 2 * p.BytesWord() }

// WordsRate is the number of rate words, always 10 regardless of W.
func (p *Params[T]) WordsRate() int { return 10 }

// BytesRate is the rate region's size in bytes (10 * BytesWord).
func (p *Params[T]) BytesRate() int { return p.WordsRate() * p.BytesWord() }

// BytesTag is the tag length in bytes (TBits/8).
func (p *Params[T]) BytesTag() int { return p.TBits / 8 }

// String renders the parameter block in NORX's conventional
// "NORXw-r-d" naming, annotated with the configured tag length.
func (p *Params[T]) String() string {
	return fmt.Sprintf("NORX%d-%d-%d (tag=%d bits, rate=%d bytes)", p.W, p.R, p.D, p.TBits, p.BytesRate())
}
