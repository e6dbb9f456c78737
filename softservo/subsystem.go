package softservo

import (
	"sync"
	"time"
)

// Subsystem is the shared state behind every Servo handle: the channel table,
// the active bitmap, the pulse schedule and the one timer that serves them
// all. Construct exactly one per timer domain (normally one per process) and
// hand it to each handle.
//
// Handle methods and the timer callback touch the same state; mu makes
// "recompute schedule + re-arm timer" a single critical section. The pulse
// hold itself runs outside the lock on a snapshot of the slot, so writers are
// never blocked for a full pulse width.
type Subsystem struct {
	hw    Hardware
	timer PulseTimer

	mu      sync.Mutex
	refresh time.Duration
	table   channelTable
	sched   schedule
	active  uint8 // bit i set iff channel i participates in the refresh cycle
	cursor  int   // channel the timer callback services next
}

// Option adjusts subsystem construction.
type Option func(*Subsystem)

// WithRefreshInterval overrides the delay between consecutive channel visits.
// Useful for tests; real servos want the default.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Subsystem) {
		if d > 0 {
			s.refresh = d
		}
	}
}

// New creates a servo subsystem on the given hardware and timer.
func New(hw Hardware, timer PulseTimer, opts ...Option) *Subsystem {
	s := &Subsystem{
		hw:      hw,
		timer:   timer,
		refresh: RefreshInterval,
	}
	for _, o := range opts {
		o(s)
	}
	s.table = newChannelTable()
	s.sched = newSchedule(s.refresh)
	return s
}

// claim takes a free channel slot for a freshly configured pin.
func (s *Subsystem) claim(pin OutputPin, pulseUs int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.claim(pin, pulseUs)
}

// writePulse stores a new pulse width, replans the schedule and arms or
// disarms the timer depending on whether anything is left to pulse.
func (s *Subsystem) writePulse(id, us int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.table.setPulse(id, us)
	if s.sched.plan(&s.table, s.refresh) > 0 {
		s.active |= 1 << id
		s.timer.Disarm()
		s.timer.Arm(s.sched.wait[s.cursor], s.tick, true)
	} else {
		s.active &^= 1 << id
		s.timer.Disarm()
	}
}

// detachChannel deactivates the channel, frees its slot and disarms the timer
// once nothing remains scheduled. A timer left running over a freed slot is
// harmless: the callback skips unassigned slots. Returns the pin the slot
// held so the caller can park and release it.
func (s *Subsystem) detachChannel(id int) OutputPin {
	s.mu.Lock()
	defer s.mu.Unlock()

	pin := s.table.slots[id].pin
	s.active &^= 1 << id
	s.table.release(id)
	if s.sched.plan(&s.table, s.refresh) == 0 || s.active == 0 {
		s.timer.Disarm()
	}
	return pin
}

func (s *Subsystem) pulse(id int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.slots[id].pulseUs
}
