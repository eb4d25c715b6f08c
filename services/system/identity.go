package system

// Identity of the board firmware. Fixed at build time.
const (
	Device   = "PLEN2"
	Codename = "Cytisus"
	Version  = "1.1.0"

	USBBaudRate      uint32 = 2000000
	WirelessBaudRate uint32 = 2000000

	// InternalEEPROMSize is the MCU EEPROM capacity in bytes.
	InternalEEPROMSize = 1024
)
