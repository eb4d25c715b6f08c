package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	cause := errors.New("uart1 missing")
	wrapped := &E{C: UnknownBus, Op: "platform", Msg: "wireless", Err: cause}

	for _, c := range []struct {
		err  error
		want Code
	}{
		{nil, OK},
		{InvalidParams, InvalidParams},
		{wrapped, UnknownBus},
		{cause, Error},
	} {
		if got := Of(c.err); got != c.want {
			t.Fatalf("Of(%v) = %q, want %q", c.err, got, c.want)
		}
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("E should unwrap to its cause")
	}
	if got, want := wrapped.Error(), "platform: unknown_bus: wireless"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
