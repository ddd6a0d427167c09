package norx

// pad implements NORX's 10*1 multi-rate padding: x (shorter than rate
// bytes) is copied into a zero rate-byte buffer, followed by a single 1
// bit just past the data and a 1 bit in the top of the last byte. When
// len(x) == rate-1 the single free byte holds both bits: 0x01 | 0x80.
func pad(x []byte, rate int) []byte {
	y := make([]byte, rate)
	copy(y, x)
	y[len(x)] |= 0x01
	y[rate-1] |= 0x80
	return y
}
