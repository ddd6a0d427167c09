package norx

// NORX6441 builds the NORX64-4-1 parameter set: W=64, R=4, D=1, 256-bit tag.
func NORX6441() (*Params[uint64], error) {
	return NewParams[uint64](4, 1, 256)
}

// NORX6461 builds the NORX64-6-1 parameter set: W=64, R=6, D=1, 256-bit tag.
func NORX6461() (*Params[uint64], error) {
	return NewParams[uint64](6, 1, 256)
}

// NORX3241 builds the NORX32-4-1 parameter set: W=32, R=4, D=1, 128-bit tag.
func NORX3241() (*Params[uint32], error) {
	return NewParams[uint32](4, 1, 128)
}

// NORX3261 builds the NORX32-6-1 parameter set: W=32, R=6, D=1, 128-bit tag.
func NORX3261() (*Params[uint32], error) {
	return NewParams[uint32](6, 1, 128)
}
