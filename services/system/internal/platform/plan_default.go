//go:build !plen2_uart0

package platform

import "plen2-go/x/timex"

// DefaultPlan puts the BLE module on uart1 (GP8/GP9) and ticks every 10 ms.
func DefaultPlan(usbBaud, wirelessBaud uint32) Plan {
	return Plan{
		USBBaud:  usbBaud,
		Wireless: UARTPlan{ID: "uart1", TX: 8, RX: 9, Baud: wirelessBaud},
		Tick:     timex.PeriodFromHz(100),
	}
}
