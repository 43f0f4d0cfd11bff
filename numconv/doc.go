/*
Package numconv converts between byte strings and unsigned 32-bit integers,
with C-string flavored scanning semantics: parsing skips leading junk, stops
at a NUL byte, and reports "no digits found" through a flag instead of an
error. A small helper measures NUL-terminated byte strings.

The conversions are deliberately not a strconv replacement; they reproduce
the scanning contract of low-level parsers that walk raw buffers (stop
characters, wraparound arithmetic, explicit found flags).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package numconv

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
