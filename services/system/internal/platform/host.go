// services/system/internal/platform/host.go
//go:build !rp2040

package platform

import (
	"sync"
	"time"

	"plen2-go/errcode"
	"plen2-go/types"
	"plen2-go/x/shmring"
)

// ----------------------------- Serial (host) ---------------------------------

// HostSerial is an in-memory byte stream for host-side tests. The device side
// (Read/Write/Buffered) is what a SerialChannel sees; the peer side
// (Inject/Drain) is what a test drives.
type HostSerial struct {
	rx *shmring.Ring // peer -> device
	tx *shmring.Ring // device -> peer

	mu   sync.Mutex // serialises the device-side writer
	baud uint32
}

func NewHostSerial(size int, baud uint32) *HostSerial {
	if size <= 0 {
		size = 256
	}
	return &HostSerial{rx: shmring.New(size), tx: shmring.New(size), baud: baud}
}

func (s *HostSerial) Read(p []byte) (int, error) { return s.rx.TryRead(p), nil }

// Write accepts what fits; overflow is dropped like a full UART FIFO.
func (s *HostSerial) Write(p []byte) (int, error) {
	s.mu.Lock()
	n := s.tx.TryWrite(p)
	s.mu.Unlock()
	return n, nil
}

func (s *HostSerial) WriteByte(b byte) error {
	one := [1]byte{b}
	_, err := s.Write(one[:])
	return err
}

func (s *HostSerial) Buffered() int { return s.rx.Available() }

func (s *HostSerial) Baud() uint32 { return s.baud }

// Inject queues bytes as if the remote end had sent them.
func (s *HostSerial) Inject(p []byte) int { return s.rx.TryWrite(p) }

// Drain returns everything the device has written so far.
func (s *HostSerial) Drain() []byte {
	var out []byte
	var tmp [64]byte
	for {
		n := s.tx.TryRead(tmp[:])
		if n == 0 {
			return out
		}
		out = append(out, tmp[:n]...)
	}
}

// ----------------------------- Interrupts (host) -----------------------------

// HostMask models the global interrupt-enable flag. Disable holds a mutex
// until Restore, so any goroutine standing in for an ISR is excluded for the
// duration of the critical section. Not reentrant.
type HostMask struct {
	mu      sync.Mutex
	enabled bool
}

func NewHostMask() *HostMask { return &HostMask{enabled: true} }

func (m *HostMask) Disable() types.IRQState {
	m.mu.Lock()
	prior := m.enabled
	m.enabled = false
	if prior {
		return 1
	}
	return 0
}

func (m *HostMask) Restore(s types.IRQState) {
	m.enabled = s != 0
	m.mu.Unlock()
}

// HostTimer is a register mock for the periodic timer interrupt enable bit.
type HostTimer struct {
	mu      sync.Mutex
	enabled bool
	writes  int
	period  time.Duration
	onTick  func()
}

func NewHostTimer(period time.Duration, onTick func()) *HostTimer {
	return &HostTimer{period: period, onTick: onTick}
}

func (t *HostTimer) Enable() {
	t.mu.Lock()
	t.enabled = true
	t.writes++
	t.mu.Unlock()
}

func (t *HostTimer) Disable() {
	t.mu.Lock()
	t.enabled = false
	t.writes++
	t.mu.Unlock()
}

// Enabled reports the current register bit.
func (t *HostTimer) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

// Writes counts register writes since construction.
func (t *HostTimer) Writes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.writes
}

func (t *HostTimer) Period() time.Duration { return t.period }

// Fire simulates one timer expiry. The handler runs only while enabled.
func (t *HostTimer) Fire() bool {
	t.mu.Lock()
	on, h := t.enabled, t.onTick
	t.mu.Unlock()
	if !on {
		return false
	}
	if h != nil {
		h()
	}
	return true
}

// ----------------------------- Defaults (host) -------------------------------

// Default builds inert host resources for plan. Unknown wireless ids fail the
// same way they do on hardware.
func Default(plan Plan, onTick func()) (Resources, error) {
	switch plan.Wireless.ID {
	case "uart0", "uart1":
	default:
		return Resources{}, &errcode.E{C: errcode.UnknownBus, Op: "platform", Msg: plan.Wireless.ID}
	}
	return Resources{
		USB:      NewHostSerial(256, plan.USBBaud),
		Wireless: NewHostSerial(256, plan.Wireless.Baud),
		Mask:     NewHostMask(),
		Timer:    NewHostTimer(plan.Tick, onTick),
	}, nil
}
