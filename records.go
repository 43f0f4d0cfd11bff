package baseutil

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Records is a view over a contiguous buffer holding fixed-size records of
// unknown type, addressed only by record index. It carries no type
// information; callers interpret record bytes through their comparator and
// through At.
//
// The view does not own the buffer. Sorting through the view rearranges the
// caller's bytes in place.
type Records struct {
	buf  []byte
	size int
}

// NewRecords creates a record view over buf, interpreting it as a sequence of
// records of size bytes each.
//
// Returns ErrIllegalArguments if size is not positive or len(buf) is not a
// multiple of size.
func NewRecords(buf []byte, size int) (Records, error) {
	if size <= 0 || len(buf)%size != 0 {
		return Records{}, ErrIllegalArguments
	}
	return Records{buf: buf, size: size}, nil
}

// Len returns the number of records in the view.
func (rec Records) Len() int {
	if rec.size == 0 {
		return 0
	}
	return len(rec.buf) / rec.size
}

// Size returns the record size in bytes.
func (rec Records) Size() int {
	return rec.size
}

// At returns the bytes of record i as a sub-slice of the underlying buffer.
// Mutating the returned slice mutates the record.
func (rec Records) At(i int) []byte {
	assert(i >= 0 && i < rec.Len(), "record index out of bounds")
	return rec.buf[i*rec.size : (i+1)*rec.size]
}

// Sort rearranges the records in place into non-descending order according to
// less, using scratch as working space. Afterwards the contents of scratch
// are unspecified.
//
// The merge schedule is the same as in Sort, but records are moved as raw
// byte blocks, so the view works for element types the caller cannot (or does
// not want to) express as a Go type.
//
// Contract: len(scratch) must be at least Len()*Size(); less must implement a
// strict total order over record contents. Ties merge right-run first, as in
// Sort.
func (rec Records) Sort(scratch []byte, less func(a, b []byte) bool) {
	n, size := rec.Len(), rec.size
	if n <= 1 {
		return
	}
	assert(len(scratch) >= n*size, "record sort requires scratch capacity of n*size bytes")
	el := func(k int) []byte { return rec.buf[k*size : (k+1)*size] }
	for m := 1; m <= n; m *= 2 {
		for i := 0; i < n-m; i += 2 * m {
			lo, mid, hi := i, i+m, min(n, i+2*m)
			l, r := lo, mid
			d := 0
			for {
				if less(el(l), el(r)) {
					copy(scratch[d*size:], el(l))
					l++
					d++
					if l >= mid {
						break
					}
				} else {
					copy(scratch[d*size:], el(r))
					r++
					d++
					if r >= hi {
						break
					}
				}
			}
			// Bulk-copy the remainder of whichever run is not exhausted.
			for ; l < mid; l, d = l+1, d+1 {
				copy(scratch[d*size:], el(l))
			}
			for ; r < hi; r, d = r+1, d+1 {
				copy(scratch[d*size:], el(r))
			}
			copy(rec.buf[lo*size:], scratch[:d*size])
		}
	}
}
