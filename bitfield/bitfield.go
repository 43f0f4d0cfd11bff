package bitfield

import "math/bits"

// WordBits is the number of bits per backing word.
const WordBits = 32

// Field is a packed bit vector backed by 32-bit words. Bit i lives in word
// i/32 at bit position i%32.
type Field []uint32

// New creates a zeroed field with capacity for at least nbits bits, rounded
// up to whole words.
func New(nbits uint) Field {
	return make(Field, (nbits+WordBits-1)/WordBits)
}

// Size returns the field capacity in bits.
func (f Field) Size() uint {
	return uint(len(f)) * WordBits
}

// Test reports whether bit is set. Bits beyond Size() read as unset; an
// out-of-range index is not an error.
func (f Field) Test(bit uint) bool {
	if bit >= f.Size() {
		return false
	}
	return f[bit/WordBits]&(1<<(bit%WordBits)) != 0
}

// Set sets or clears the given bit. The index must be within Size().
func (f Field) Set(bit uint, value bool) {
	assert(bit < f.Size(), "bit index out of field bounds")
	mask := uint32(1) << (bit % WordBits)
	if value {
		f[bit/WordBits] |= mask
	} else {
		f[bit/WordBits] &^= mask
	}
}

// LowestZero returns the index of the lowest clear bit, scanning words in
// ascending order. If every bit is set it returns the sentinel Size().
func (f Field) LowestZero() uint {
	for i, w := range f {
		if inv := ^w; inv != 0 {
			return uint(i)*WordBits + uint(bits.TrailingZeros32(inv))
		}
	}
	return f.Size()
}

// HighestZero returns the index of the highest clear bit, scanning words in
// descending order. If every bit is set it returns the sentinel Size().
func (f Field) HighestZero() uint {
	for i := len(f) - 1; i >= 0; i-- {
		if inv := ^f[i]; inv != 0 {
			return uint(i)*WordBits + uint(bits.Len32(inv)) - 1
		}
	}
	return f.Size()
}
