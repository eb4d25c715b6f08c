package mathx

import (
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	for _, c := range []struct{ v, lo, hi, want int }{
		{5, 16, 256, 16},
		{300, 16, 256, 256},
		{64, 16, 256, 64},
		{64, 256, 16, 64}, // swapped bounds
	} {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%d,%d,%d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
	if got := Clamp(-time.Second, 0, 2*time.Second); got != 0 {
		t.Fatalf("duration clamp = %v", got)
	}
}
