package types

// ------------------------
// Interrupt control
// ------------------------

// IRQState is the opaque interrupt-enable state captured by IRQMask.Disable.
type IRQState uintptr

// IRQMask brackets a critical section. Restore must be given the value the
// matching Disable returned; it restores that state rather than re-enabling.
type IRQMask interface {
	Disable() IRQState
	Restore(IRQState)
}

// TimerIRQ is the enable bit of the periodic timer interrupt.
// Each call is one register write.
type TimerIRQ interface {
	Enable()
	Disable()
}
