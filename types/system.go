package types

// ------------------------
// Input selection
// ------------------------

// InputSelection names the channel currently used for command input.
type InputSelection uint8

const (
	InputUSB InputSelection = iota
	InputWireless
)

func (s InputSelection) String() string {
	switch s {
	case InputUSB:
		return "USB"
	case InputWireless:
		return "WIRELESS"
	default:
		return "INVALID"
	}
}

// Valid reports whether s is one of the two selectable channels.
func (s InputSelection) Valid() bool { return s == InputUSB || s == InputWireless }

// Other returns the opposite selection.
func (s InputSelection) Other() InputSelection {
	if s == InputWireless {
		return InputUSB
	}
	return InputWireless
}

func (s InputSelection) MarshalJSON() ([]byte, error) { return []byte(`"` + s.String() + `"`), nil }

// ------------------------
// Timer interrupt
// ------------------------

// TimerState mirrors the enable bit of the periodic timer interrupt.
type TimerState uint8

const (
	TimerDetached TimerState = iota
	TimerAttached
)

func (t TimerState) String() string {
	if t == TimerAttached {
		return "ATTACHED"
	}
	return "DETACHED"
}

func (t TimerState) MarshalJSON() ([]byte, error) { return []byte(`"` + t.String() + `"`), nil }

// ------------------------
// Identity + live configuration
// ------------------------

type SystemInfo struct {
	Device       string         `json:"device"`
	Codename     string         `json:"codename"`
	Version      string         `json:"version"`
	USBBaud      uint32         `json:"usb_baudrate"`
	WirelessBaud uint32         `json:"wireless_baudrate"`
	EEPROMSize   int            `json:"eeprom_size"`
	Input        InputSelection `json:"input"`
	Timer        TimerState     `json:"timer"`
}
