// Package system manages the board's basic functions: the USB and wireless
// serial channels, which of them feeds command input, the periodic timer
// interrupt, and a diagnostic dump of identity and live configuration.
//
// Input selection and timer state may be touched from foreground code and
// from interrupt context. Every read and write of them happens inside a
// critical section taken through the board's IRQMask.
package system

import (
	"plen2-go/errcode"
	"plen2-go/services/system/internal/platform"
	"plen2-go/types"
)

// Resources are the hardware handles a System takes ownership of.
type Resources = platform.Resources

type System struct {
	usb      SerialChannel
	wireless SerialChannel
	output   *SerialChannel // fixed at construction
	mask     types.IRQMask
	timer    types.TimerIRQ

	dump [192]byte // Dump scratch; foreground only

	// Guarded by mask.
	input      types.InputSelection
	timerState types.TimerState
}

// New binds the two channels at their fixed baud rates. Input starts on USB,
// output is USB for the life of the System, and the timer starts detached
// without a register write.
func New(r Resources) *System {
	if r.USB == nil || r.Wireless == nil || r.Mask == nil || r.Timer == nil {
		panic("system: incomplete resources")
	}
	s := &System{
		usb:        newSerialChannel(types.InputUSB.String(), r.USB, USBBaudRate),
		wireless:   newSerialChannel(types.InputWireless.String(), r.Wireless, WirelessBaudRate),
		mask:       r.Mask,
		timer:      r.Timer,
		input:      types.InputUSB,
		timerState: types.TimerDetached,
	}
	s.output = &s.usb
	return s
}

// critical runs fn with interrupts masked and restores the prior mask state.
func (s *System) critical(fn func()) {
	st := s.mask.Disable()
	defer s.mask.Restore(st)
	fn()
}

func (s *System) channel(sel types.InputSelection) *SerialChannel {
	if sel == types.InputWireless {
		return &s.wireless
	}
	return &s.usb
}

func (s *System) USBChannel() *SerialChannel      { return &s.usb }
func (s *System) WirelessChannel() *SerialChannel { return &s.wireless }

// InputChannel returns the channel currently selected for input. The answer
// can change with any toggle, so re-query it on every read cycle instead of
// holding on to it.
func (s *System) InputChannel() *SerialChannel {
	var c *SerialChannel
	s.critical(func() { c = s.channel(s.input) })
	return c
}

// OutputChannel is the diagnostic/status channel. Its identity never changes.
func (s *System) OutputChannel() *SerialChannel { return s.output }

// Input returns the current selection.
func (s *System) Input() types.InputSelection {
	var sel types.InputSelection
	s.critical(func() { sel = s.input })
	return sel
}

// ToggleInputChannel flips input between USB and WIRELESS. Safe to call from
// a timer or link-event handler.
func (s *System) ToggleInputChannel() {
	s.critical(func() { s.input = s.input.Other() })
}

// SetInputChannel selects sel explicitly.
func (s *System) SetInputChannel(sel types.InputSelection) error {
	if !sel.Valid() {
		return &errcode.E{C: errcode.InvalidParams, Op: "set_input", Msg: sel.String()}
	}
	s.critical(func() { s.input = sel })
	return nil
}

// FollowTraffic moves input to the other channel when it has bytes waiting
// and the active one has none. It reports whether a switch happened.
// A concurrent toggle between the check and the switch wins.
func (s *System) FollowTraffic() bool {
	sel := s.Input()
	if s.channel(sel).Available() > 0 || s.channel(sel.Other()).Available() == 0 {
		return false
	}
	switched := false
	s.critical(func() {
		if s.input == sel {
			s.input = sel.Other()
			switched = true
		}
	})
	return switched
}
