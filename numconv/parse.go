package numconv

// Supported parse bases. ParseUint treats every base other than Base16 as
// decimal-only digit classes, matching the reference scanner it mirrors.
const (
	Base10 = 10
	Base16 = 16
)

// digitVal returns the value of c as a digit in the given base. Hex digits
// are recognized case-insensitively, and only when base is Base16.
func digitVal(c byte, base int) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case base == Base16 && c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case base == Base16 && c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// ParseUint scans input for an unsigned number in the given base (Base10 or
// Base16).
//
// Leading bytes are skipped until the first digit valid for base, until
// stopChar, until a NUL byte, or until the end of input — whichever comes
// first. Digits are then accumulated until the first non-digit. There is no
// overflow detection; the value wraps per native unsigned arithmetic.
//
// ParseUint never fails. It returns the accumulated value (0 if no digit was
// consumed), the unconsumed remainder of input, and whether any valid digit
// was found.
func ParseUint(input []byte, base int, stopChar byte) (value uint32, rest []byte, found bool) {
	i := 0
	for ; i < len(input) && input[i] != 0; i++ {
		if _, ok := digitVal(input[i], base); ok {
			found = true
			break
		}
		if input[i] == stopChar {
			break
		}
	}
	for ; i < len(input) && input[i] != 0; i++ {
		d, ok := digitVal(input[i], base)
		if !ok {
			break
		}
		value = value*uint32(base) + d
	}
	return value, input[i:], found
}
