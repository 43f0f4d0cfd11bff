package numconv

import "bytes"

// Strlen returns the number of bytes of s preceding its first NUL byte.
//
// The input must contain a NUL terminator; a slice without one is a contract
// violation.
func Strlen(s []byte) int {
	i := bytes.IndexByte(s, 0)
	assert(i >= 0, "Strlen requires a NUL-terminated input")
	return i
}
