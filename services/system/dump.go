package system

import (
	"plen2-go/types"
	"plen2-go/x/conv"
)

const eol = "\r\n"

// Info snapshots identity and live configuration.
func (s *System) Info() types.SystemInfo {
	var (
		in types.InputSelection
		tm types.TimerState
	)
	s.critical(func() { in, tm = s.input, s.timerState })
	return types.SystemInfo{
		Device:       Device,
		Codename:     Codename,
		Version:      Version,
		USBBaud:      s.usb.BaudRate(),
		WirelessBaud: s.wireless.BaudRate(),
		EEPROMSize:   InternalEEPROMSize,
		Input:        in,
		Timer:        tm,
	}
}

// Dump writes the diagnostic block to the output channel, one field per line
// in a fixed order:
//
//	DEVICE, CODENAME, VERSION, USB BAUDRATE, WIRELESS BAUDRATE,
//	EEPROM SIZE, INPUT, TIMER
//
// Write errors belong to the transport and are not reported. Dump renders
// into a buffer owned by the System, so call it from foreground code only.
func (s *System) Dump() {
	b := appendInfo(s.dump[:0], s.Info())
	_, _ = s.output.Write(b)
}

func appendInfo(b []byte, in types.SystemInfo) []byte {
	b = appendField(b, "DEVICE: ", in.Device)
	b = appendField(b, "CODENAME: ", in.Codename)
	b = appendField(b, "VERSION: ", in.Version)
	b = append(b, "USB BAUDRATE: "...)
	b = append(conv.AppendUint(b, uint64(in.USBBaud)), eol...)
	b = append(b, "WIRELESS BAUDRATE: "...)
	b = append(conv.AppendUint(b, uint64(in.WirelessBaud)), eol...)
	b = append(b, "EEPROM SIZE: "...)
	b = append(conv.AppendInt(b, int64(in.EEPROMSize)), eol...)
	b = appendField(b, "INPUT: ", in.Input.String())
	b = appendField(b, "TIMER: ", in.Timer.String())
	return b
}

func appendField(b []byte, label, v string) []byte {
	b = append(b, label...)
	b = append(b, v...)
	return append(b, eol...)
}
