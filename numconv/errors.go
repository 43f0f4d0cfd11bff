package numconv

import "errors"

var (
	// ErrInvalidBase signals a numeric base outside the supported 2…36 range.
	ErrInvalidBase = errors.New("numconv: base out of range")
)
