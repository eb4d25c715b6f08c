package system

import "plen2-go/types"

// TimerAttach enables the periodic timer interrupt. Calling it while already
// attached writes nothing.
func (s *System) TimerAttach() {
	s.critical(func() {
		if s.timerState == types.TimerAttached {
			return
		}
		s.timer.Enable()
		s.timerState = types.TimerAttached
	})
}

// TimerDetach disables the periodic timer interrupt. Calling it while already
// detached writes nothing.
func (s *System) TimerDetach() {
	s.critical(func() {
		if s.timerState == types.TimerDetached {
			return
		}
		s.timer.Disable()
		s.timerState = types.TimerDetached
	})
}

// Timer returns the current timer interrupt state.
func (s *System) Timer() types.TimerState {
	var st types.TimerState
	s.critical(func() { st = s.timerState })
	return st
}
