package platform

import (
	"time"

	"tinygo.org/x/drivers"

	"plen2-go/types"
)

// Plan specifies wiring and operating parameters for the two serial channels
// and the periodic timer. It carries no wiring for anything else on the board.
type Plan struct {
	USBBaud  uint32
	Wireless UARTPlan
	Tick     time.Duration
}

type UARTPlan struct {
	ID   string // "uart0" | "uart1"
	TX   int    // GPIO number
	RX   int    // GPIO number
	Baud uint32
}

// Resources are the handles a System is built from.
type Resources struct {
	USB      drivers.UART
	Wireless drivers.UART
	Mask     types.IRQMask
	Timer    types.TimerIRQ
}
