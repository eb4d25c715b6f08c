package inputio

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// --- minimal fake port ---

type fakePort struct {
	name string
	mu   sync.Mutex
	rx   []byte
}

func (f *fakePort) inject(b []byte) {
	f.mu.Lock()
	f.rx = append(f.rx, b...)
	f.mu.Unlock()
}

func (f *fakePort) Name() string { return f.name }
func (f *fakePort) Available() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rx)
}
func (f *fakePort) Read(p []byte) (int, error) {
	f.mu.Lock()
	n := copy(p, f.rx)
	f.rx = f.rx[n:]
	f.mu.Unlock()
	return n, nil
}

// selector mimics System.InputChannel: the answer flips on toggle.
type selector struct {
	a, b *fakePort
	onB  atomic.Bool
}

func (s *selector) input() Port {
	if s.onB.Load() {
		return s.b
	}
	return s.a
}

func recvEvent(ch <-chan Event, d time.Duration) (Event, bool) {
	select {
	case ev := <-ch:
		return ev, true
	case <-time.After(d):
		return Event{}, false
	}
}

func TestLinesModeSplitsOnLFAndIgnoresCR(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	usb := &fakePort{name: "USB"}
	sel := &selector{a: usb, b: &fakePort{name: "WIRELESS"}}
	p := New(8)
	p.Start(ctx, Config{Input: sel.input, Mode: "lines", Poll: time.Millisecond})

	usb.inject([]byte("hello\r\nworld\n"))

	for _, want := range []string{"hello", "world"} {
		ev, ok := recvEvent(p.Events(), 500*time.Millisecond)
		if !ok {
			t.Fatalf("timeout waiting for %q", want)
		}
		if string(ev.Data) != want || ev.Channel != "USB" {
			t.Fatalf("got %q from %s, want %q from USB", ev.Data, ev.Channel, want)
		}
	}
}

func TestIdleFlushEmitsPartialLine(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	usb := &fakePort{name: "USB"}
	sel := &selector{a: usb, b: &fakePort{name: "WIRELESS"}}
	p := New(8)
	p.Start(ctx, Config{Input: sel.input, Mode: "lines", IdleFlush: 20 * time.Millisecond, Poll: time.Millisecond})

	usb.inject([]byte("partial"))
	ev, ok := recvEvent(p.Events(), 500*time.Millisecond)
	if !ok || string(ev.Data) != "partial" {
		t.Fatalf("idle flush: ok=%v data=%q", ok, ev.Data)
	}
}

func TestPumpFollowsToggle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	usb := &fakePort{name: "USB"}
	wl := &fakePort{name: "WIRELESS"}
	sel := &selector{a: usb, b: wl}
	p := New(8)
	p.Start(ctx, Config{Input: sel.input, Mode: "bytes", Poll: time.Millisecond})

	// Bytes on the inactive channel stay unread.
	wl.inject([]byte("ble"))
	if ev, ok := recvEvent(p.Events(), 30*time.Millisecond); ok {
		t.Fatalf("read %q from inactive channel", ev.Data)
	}

	sel.onB.Store(true)
	ev, ok := recvEvent(p.Events(), 500*time.Millisecond)
	if !ok || string(ev.Data) != "ble" || ev.Channel != "WIRELESS" {
		t.Fatalf("after toggle: ok=%v ev=%+v", ok, ev)
	}
	if usb.Available() != 0 {
		t.Fatal("usb should be untouched")
	}
}

func TestStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	usb := &fakePort{name: "USB"}
	sel := &selector{a: usb, b: &fakePort{name: "WIRELESS"}}
	p := New(1)
	p.Start(ctx, Config{Input: sel.input, Poll: time.Millisecond})
	cancel()
	time.Sleep(20 * time.Millisecond)

	usb.inject([]byte("late"))
	if ev, ok := recvEvent(p.Events(), 30*time.Millisecond); ok {
		t.Fatalf("pump still running after cancel: %q", ev.Data)
	}
}
