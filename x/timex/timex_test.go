package timex

import (
	"testing"
	"time"
)

func TestPeriodFromHz(t *testing.T) {
	for _, c := range []struct {
		hz   uint32
		want time.Duration
	}{
		{0, time.Second},
		{1, time.Second},
		{100, 10 * time.Millisecond},
		{1000, time.Millisecond},
	} {
		if got := PeriodFromHz(c.hz); got != c.want {
			t.Fatalf("PeriodFromHz(%d) = %v, want %v", c.hz, got, c.want)
		}
	}
}
