package bitfield

// Log2Exact returns the bit index of the single set bit of v. The value must
// be a power of two; anything else (including zero) is a contract violation.
func Log2Exact(v uint64) uint {
	assert(v != 0 && v&(v-1) == 0, "Log2Exact requires a power of two")
	var i uint
	for i = 0; i < 64; i++ {
		if uint64(1)<<i == v {
			break
		}
	}
	return i
}

// MSBMask returns x with only its most significant set bit retained, or 0 if
// x is 0.
func MSBMask(x uint64) uint64 {
	// Smear the top bit all the way down, then drop everything below it.
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return x &^ (x >> 1)
}
