/*
Package bitfield provides packed bit vectors over 32-bit words, together with
a couple of bit-width queries.

A Field treats its backing words as one flat bit vector, with bit 0 being the
least significant bit of word 0. Fields are plain slices; callers own the
backing memory and may share or sub-slice it at word granularity.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package bitfield

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
