// services/system/internal/platform/rp2040.go
//go:build rp2040

package platform

import (
	"device/rp"
	"machine"
	"runtime/interrupt"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"

	"plen2-go/errcode"
	"plen2-go/types"
)

// -----------------------------------------------------------------------------
// Critical section: PRIMASK via runtime/interrupt
// -----------------------------------------------------------------------------

type rp2Mask struct{}

func (rp2Mask) Disable() types.IRQState  { return types.IRQState(interrupt.Disable()) }
func (rp2Mask) Restore(s types.IRQState) { interrupt.Restore(interrupt.State(s)) }

// -----------------------------------------------------------------------------
// Periodic timer: TIMER alarm 3 (alarm 0 belongs to the TinyGo scheduler)
// -----------------------------------------------------------------------------

var (
	tickHandler  func()
	tickPeriodUs uint32
)

func timerISR(interrupt.Interrupt) {
	rp.TIMER.INTR.Set(rp.TIMER_INTR_ALARM_3)
	rp.TIMER.ALARM3.Set(rp.TIMER.TIMERAWL.Get() + tickPeriodUs)
	if tickHandler != nil {
		tickHandler()
	}
}

type rp2Timer struct{}

// Enable arms the next alarm and sets the INTE bit.
func (rp2Timer) Enable() {
	rp.TIMER.ALARM3.Set(rp.TIMER.TIMERAWL.Get() + tickPeriodUs)
	rp.TIMER.INTE.SetBits(rp.TIMER_INTE_ALARM_3)
}

func (rp2Timer) Disable() { rp.TIMER.INTE.ClearBits(rp.TIMER_INTE_ALARM_3) }

// -----------------------------------------------------------------------------
// Serial: USB CDC + uartx for the BLE module
// -----------------------------------------------------------------------------

// rp2SerialPort adapts uartx to drivers.UART.
type rp2SerialPort struct{ u *uartx.UART }

func (p *rp2SerialPort) Read(b []byte) (int, error)  { return p.u.TryRead(b), nil }
func (p *rp2SerialPort) Write(b []byte) (int, error) { return p.u.Write(b) }
func (p *rp2SerialPort) WriteByte(b byte) error      { return p.u.WriteByte(b) }
func (p *rp2SerialPort) Buffered() int               { return p.u.Buffered() }

// usbPort adapts machine.Serial (USB CDC), which only offers ReadByte.
type usbPort struct{ s machine.Serialer }

func (p usbPort) Read(b []byte) (int, error) {
	n := 0
	for n < len(b) && p.s.Buffered() > 0 {
		c, err := p.s.ReadByte()
		if err != nil {
			return n, err
		}
		b[n] = c
		n++
	}
	return n, nil
}
func (p usbPort) Write(b []byte) (int, error) { return p.s.Write(b) }
func (p usbPort) WriteByte(b byte) error      { return p.s.WriteByte(b) }
func (p usbPort) Buffered() int               { return p.s.Buffered() }

var (
	_ drivers.UART = (*rp2SerialPort)(nil)
	_ drivers.UART = usbPort{}
)

// Default configures USB CDC and the wireless UART from plan and installs the
// timer handler with its enable bit cleared.
func Default(plan Plan, onTick func()) (Resources, error) {
	// Baud is nominal on USB CDC.
	_ = machine.Serial.Configure(machine.UARTConfig{BaudRate: plan.USBBaud})

	var hw *uartx.UART
	switch plan.Wireless.ID {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return Resources{}, &errcode.E{C: errcode.UnknownBus, Op: "platform", Msg: plan.Wireless.ID}
	}
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: plan.Wireless.Baud,
		TX:       machine.Pin(plan.Wireless.TX),
		RX:       machine.Pin(plan.Wireless.RX),
	}); err != nil {
		return Resources{}, &errcode.E{C: errcode.Error, Op: "platform", Msg: plan.Wireless.ID, Err: err}
	}

	tickHandler = onTick
	tickPeriodUs = uint32(plan.Tick / time.Microsecond)
	if tickPeriodUs == 0 {
		tickPeriodUs = 1000
	}
	rp.TIMER.INTE.ClearBits(rp.TIMER_INTE_ALARM_3)
	irq := interrupt.New(rp.IRQ_TIMER_IRQ_3, timerISR)
	irq.Enable() // NVIC line only; INTE gates delivery

	return Resources{
		USB:      usbPort{s: machine.Serial},
		Wireless: &rp2SerialPort{u: hw},
		Mask:     rp2Mask{},
		Timer:    rp2Timer{},
	}, nil
}
