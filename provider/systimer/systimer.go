// Package systimer emulates the one-shot/repeating hardware timer the servo
// subsystem expects, using a single goroutine around a time.Timer. On TinyGo
// targets time.Timer is itself driven by the hardware system timer, which
// preserves the one-timer model; on hosts it rides the runtime timer heap.
//
// Arm replaces any pending callback and Disarm cancels it, but a callback
// whose expiry is already in flight when Disarm lands may still run once —
// the same window a real hardware timer has between "interrupt raised" and
// "interrupt masked". Callers that disarm on their own callback path (as the
// servo driver does) are unaffected.
package systimer

import "time"

type command struct {
	arm    bool
	d      time.Duration
	f      func()
	repeat bool
}

// Timer drives armed callbacks from one goroutine.
type Timer struct {
	cmds chan command
	done chan struct{}
}

// New starts the timer goroutine. Close releases it.
func New() *Timer {
	t := &Timer{
		// Buffered so a callback can disarm/re-arm from inside its own
		// firing without blocking the loop that is running it.
		cmds: make(chan command, 8),
		done: make(chan struct{}),
	}
	go t.loop()
	return t
}

// Arm schedules f after d, replacing any pending callback. With repeat set
// the timer keeps firing every d until disarmed or re-armed.
func (t *Timer) Arm(d time.Duration, f func(), repeat bool) {
	t.cmds <- command{arm: true, d: d, f: f, repeat: repeat}
}

// Disarm cancels the pending callback.
func (t *Timer) Disarm() {
	t.cmds <- command{}
}

// Close stops the timer goroutine. The timer must not be armed afterwards.
func (t *Timer) Close() {
	close(t.done)
}

func (t *Timer) loop() {
	tm := time.NewTimer(time.Hour)
	stopTimer(tm)

	var (
		f      func()
		d      time.Duration
		repeat bool
		armed  bool
	)
	for {
		select {
		case <-t.done:
			stopTimer(tm)
			return
		case c := <-t.cmds:
			if !c.arm {
				armed = false
				stopTimer(tm)
				continue
			}
			f, d, repeat, armed = c.f, c.d, c.repeat, true
			resetTimer(tm, d)
		case <-tm.C:
			if !armed {
				continue
			}
			if repeat {
				tm.Reset(d)
			} else {
				armed = false
			}
			f()
		}
	}
}

// stopTimer stops and drains a timer so a later Reset starts clean.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	stopTimer(t)
	if d < 0 {
		d = 0
	}
	t.Reset(d)
}
