//go:build plen2_uart0

package platform

import "plen2-go/x/timex"

// DefaultPlan puts the BLE module on uart0 (GP0/GP1) and ticks every 10 ms.
func DefaultPlan(usbBaud, wirelessBaud uint32) Plan {
	return Plan{
		USBBaud:  usbBaud,
		Wireless: UARTPlan{ID: "uart0", TX: 0, RX: 1, Baud: wirelessBaud},
		Tick:     timex.PeriodFromHz(100),
	}
}
