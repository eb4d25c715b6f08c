package system

import "plen2-go/services/system/internal/platform"

// NewDefault builds a System on the board's default wiring. onTick runs on
// every timer interrupt once TimerAttach is called; it must not block.
func NewDefault(onTick func()) (*System, error) {
	r, err := platform.Default(platform.DefaultPlan(USBBaudRate, WirelessBaudRate), onTick)
	if err != nil {
		return nil, err
	}
	return New(r), nil
}
