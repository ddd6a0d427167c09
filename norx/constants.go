package norx

// Domain-separation tags, XORed into the last state word before the
// permutation that begins each phase. branchTag/mergeTag belong to the
// D>=2 parallel tree mode and are never injected by this package (serial,
// D=1, mode only).
const (
	headerTag  = 1
	payloadTag = 2
	trailerTag = 4
	finalTag   = 8
	branchTag  = 16 //nolint:unused // reserved for the unimplemented D>=2 tree mode
	mergeTag   = 32 //nolint:unused // reserved for the unimplemented D>=2 tree mode
)

// rotTuple returns the four G rotation amounts for width w.
func rotTuple(w int) [4]uint {
	if w == 32 {
		return [4]uint{8, 11, 16, 31}
	}
	return [4]uint{8, 19, 40, 63}
}

// u32 holds the ten NORX32 initialisation constants (the leading digits of
// pi, the same constant family NORX64 draws its own table from). These
// diverge from NORX64's table at index 4 onward — NORX32 does not reuse
// NORX64's word halves past U[3].
var u32 = [10]uint32{
	0x243f6a88, 0x85a308d3, 0x13198a2e, 0x03707344, 0x254f537a,
	0x38531d48, 0x839c6e83, 0xf97a3ae5, 0x8c91d88c, 0x11eafb59,
}

// u64 holds the ten NORX64 initialisation constants.
var u64 = [10]uint64{
	0x243f6a8885a308d3, 0x13198a2e03707344, 0xa4093822299f31d0, 0x082efa98ec4e6c89,
	0xae8858dc339325a1, 0x670a134ee52d7fa6, 0xc4316d80cd967541, 0xd21dfbf8b630b762,
	0x375a18d261e7f892, 0x343d1f187d92285b,
}

// uConstants returns the width-appropriate initialisation constants as T,
// widening or narrowing a run-time (non-constant) source value so the
// conversion compiles for both instantiations of T.
func uConstants[T Word](w int) [10]T {
	var out [10]T
	if w == 32 {
		for i, v := range u32 {
			out[i] = T(v)
		}
		return out
	}
	for i, v := range u64 {
		out[i] = T(v)
	}
	return out
}
