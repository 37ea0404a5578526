package helpers

import (
	"math"
	"testing"
)

func TestClampInt(t *testing.T) {
	if got := ClampInt(5, 0, 10); got != 5 {
		t.Errorf("in-range value changed: %d", got)
	}
	if got := ClampInt(-3, 0, 10); got != 0 {
		t.Errorf("below range: got %d, want 0", got)
	}
	if got := ClampInt(42, 0, 10); got != 10 {
		t.Errorf("above range: got %d, want 10", got)
	}
}

func TestClampIntToUint16(t *testing.T) {
	if got := ClampIntToUint16(-1); got != 0 {
		t.Errorf("negative: got %d, want 0", got)
	}
	if got := ClampIntToUint16(math.MaxUint16 + 1); got != math.MaxUint16 {
		t.Errorf("overflow: got %d, want %d", got, math.MaxUint16)
	}
	if got := ClampIntToUint16(1234); got != 1234 {
		t.Errorf("in-range: got %d", got)
	}
}
