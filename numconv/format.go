package numconv

// digits for bases up to 36, lowercase beyond 9.
const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// AppendUint appends the representation of value in the given base to dst and
// returns the extended slice. Bases 2 through 36 are supported; letters are
// lowercase. A zero value appends the single digit "0".
//
// Returns ErrInvalidBase (and dst unchanged) for a base outside 2…36.
func AppendUint(dst []byte, value uint32, base int) ([]byte, error) {
	if base < 2 || base > 36 {
		return dst, ErrInvalidBase
	}
	// 32 digits suffice for a 32-bit value even in base 2.
	var tmp [32]byte
	tp := len(tmp)
	for v := value; v != 0 || tp == len(tmp); {
		tp--
		tmp[tp] = digits[v%uint32(base)]
		v /= uint32(base)
	}
	return append(dst, tmp[tp:]...), nil
}

// FormatUint returns the representation of value in the given base, with the
// same digit rules as AppendUint.
func FormatUint(value uint32, base int) (string, error) {
	b, err := AppendUint(nil, value, base)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
