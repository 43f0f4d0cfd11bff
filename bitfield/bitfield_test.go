package bitfield

import "testing"

func TestNewRoundsUpToWords(t *testing.T) {
	if f := New(1); f.Size() != 32 {
		t.Errorf("New(1) capacity = %d, want 32", f.Size())
	}
	if f := New(33); f.Size() != 64 {
		t.Errorf("New(33) capacity = %d, want 64", f.Size())
	}
	if f := New(0); f.Size() != 0 {
		t.Errorf("New(0) capacity = %d, want 0", f.Size())
	}
}

func TestSetTestClear(t *testing.T) {
	f := New(96)
	for _, bit := range []uint{0, 1, 31, 32, 63, 64, 95} {
		if f.Test(bit) {
			t.Fatalf("fresh field has bit %d set", bit)
		}
		f.Set(bit, true)
		if !f.Test(bit) {
			t.Fatalf("bit %d not set after Set(true)", bit)
		}
		f.Set(bit, false)
		if f.Test(bit) {
			t.Fatalf("bit %d still set after Set(false)", bit)
		}
	}
}

func TestTestOutOfRangeIsUnset(t *testing.T) {
	f := New(32)
	if f.Test(32) || f.Test(1000) {
		t.Error("out-of-range bits must read as unset")
	}
	var empty Field
	if empty.Test(0) {
		t.Error("empty field has no set bits")
	}
}

func TestSetOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range Set")
		}
	}()
	New(32).Set(32, true)
}

func TestLowestZero(t *testing.T) {
	f := New(64)
	if got := f.LowestZero(); got != 0 {
		t.Errorf("LowestZero of empty field = %d, want 0", got)
	}
	// Fill word 0 completely, word 1 partially.
	f[0] = ^uint32(0)
	f[1] = 0b111
	if got := f.LowestZero(); got != 35 {
		t.Errorf("LowestZero = %d, want 35", got)
	}
	if f.Test(f.LowestZero()) {
		t.Error("LowestZero returned a set bit")
	}
}

func TestHighestZero(t *testing.T) {
	f := New(64)
	if got := f.HighestZero(); got != 63 {
		t.Errorf("HighestZero of empty field = %d, want 63", got)
	}
	f[1] = ^uint32(0)
	f[0] = ^uint32(0) >> 2 // bits 30,31 clear
	if got := f.HighestZero(); got != 31 {
		t.Errorf("HighestZero = %d, want 31", got)
	}
	if f.Test(f.HighestZero()) {
		t.Error("HighestZero returned a set bit")
	}
}

func TestZeroScanSentinel(t *testing.T) {
	f := New(64)
	for i := range f {
		f[i] = ^uint32(0)
	}
	if got := f.LowestZero(); got != 64 {
		t.Errorf("LowestZero on all-ones = %d, want sentinel 64", got)
	}
	if got := f.HighestZero(); got != 64 {
		t.Errorf("HighestZero on all-ones = %d, want sentinel 64", got)
	}
}

func TestLowestZeroAfterFillScan(t *testing.T) {
	// Allocation pattern: repeatedly claim the lowest free bit.
	f := New(64)
	for want := uint(0); want < 64; want++ {
		got := f.LowestZero()
		if got != want {
			t.Fatalf("claim %d: LowestZero = %d", want, got)
		}
		f.Set(got, true)
	}
	if f.LowestZero() != f.Size() {
		t.Error("exhausted field should report the sentinel")
	}
}
