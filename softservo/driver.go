package softservo

// tick is the shared timer callback. On every firing it re-arms the timer for
// the gap to the next occupied channel, pulses the current channel's pin and
// advances the cursor. With nothing active it disarms and stops; the next
// attach or write starts the cycle again.
//
// The high hold is a blocking microsecond delay executed inside the callback.
// That is what produces the pulse width, and it stalls all other timer work
// for its duration; see the package comment for the jitter bound.
func (s *Subsystem) tick() {
	s.mu.Lock()
	if s.active == 0 || s.sched.wait[s.cursor] < 0 {
		s.timer.Disarm()
		s.mu.Unlock()
		return
	}

	cur := s.cursor
	s.timer.Disarm()
	s.timer.Arm(s.sched.wait[cur], s.tick, true)
	fired := s.table.slots[cur]
	s.cursor = s.sched.next[cur]
	s.mu.Unlock()

	if fired.pin != nil {
		fired.pin.Set(true)
		s.hw.DelayMicroseconds(fired.pulseUs)
		fired.pin.Set(false)
	}
}
