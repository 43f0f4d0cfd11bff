package baseutil

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Sort rearranges items in place into non-descending order according to less,
// using scratch as working space for merge passes. Afterwards the contents of
// scratch are unspecified.
//
// The sort is a bottom-up iterative merge sort: it runs a sequence of passes
// over the array, merging pairs of adjacent runs of a current block size and
// doubling the block size between passes. There is no recursion; all state is
// loop-local.
//
//	Operation     |   Compares      |  Copies
//	--------------+-----------------+-----------
//	Sort          |   O(n log n)    |  O(n log n)
//
// Contract: len(scratch) must be at least len(items), and less must implement
// a strict total order over the element values. An undersized scratch buffer
// panics; an inconsistent comparator silently produces garbage order (but
// never reads out of bounds).
//
// When neither of two compared elements is less than the other, the element
// from the right-hand run is merged first. Equal elements split across two
// runs therefore swap their relative order: the sort is deterministic but not
// stable.
func Sort[T any](items []T, scratch []T, less func(a, b T) bool) {
	n := len(items)
	assert(len(scratch) >= n, "Sort requires scratch capacity of at least len(items)")
	for m := 1; m <= n; m *= 2 {
		// Pairs without a second run (short tails) keep waiting for a later pass.
		for i := 0; i < n-m; i += 2 * m {
			mergeRuns(items, scratch, i, i+m, min(n, i+2*m), less)
		}
	}
}

// mergeRuns merges the adjacent runs [lo,mid) and [mid,hi) of items through
// scratch and copies the merged result back over items[lo:hi].
//
// Both runs must be non-empty.
func mergeRuns[T any](items, scratch []T, lo, mid, hi int, less func(a, b T) bool) {
	l, r := lo, mid
	d := 0
	for {
		if less(items[l], items[r]) {
			scratch[d] = items[l]
			l++
			d++
			if l >= mid {
				break
			}
		} else {
			scratch[d] = items[r]
			r++
			d++
			if r >= hi {
				break
			}
		}
	}
	// Only one of the two runs still has elements left.
	d += copy(scratch[d:], items[l:mid])
	d += copy(scratch[d:], items[r:hi])
	copy(items[lo:lo+d], scratch[:d])
}
