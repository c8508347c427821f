package padding

import (
	"testing"
	"unsafe"
)

func TestPaddedTypesFillACacheLine(t *testing.T) {
	if got := unsafe.Sizeof(PaddedAtomicInt64{}); got != CacheLineSize {
		t.Fatalf("sizeof(PaddedAtomicInt64) = %d, want %d", got, CacheLineSize)
	}
	if got := unsafe.Sizeof(PaddedAtomicUint64{}); got != CacheLineSize {
		t.Fatalf("sizeof(PaddedAtomicUint64) = %d, want %d", got, CacheLineSize)
	}
}

func TestPaddedAtomicInt64_Basic(t *testing.T) {
	var v PaddedAtomicInt64
	v.Store(5)
	if got := v.Add(3); got != 8 {
		t.Fatalf("Add = %d, want 8", got)
	}
	if got := v.Load(); got != 8 {
		t.Fatalf("Load = %d, want 8", got)
	}
}
