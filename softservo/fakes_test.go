package softservo

import (
	"time"

	"softservo-go/errcode"
)

// fakePin records every level transition.
type fakePin struct {
	n          int
	configured bool
	levels     []bool
}

func (p *fakePin) Number() int { return p.n }
func (p *fakePin) ConfigureOutput(initial bool) error {
	p.configured = true
	p.levels = append(p.levels, initial)
	return nil
}
func (p *fakePin) Set(v bool) { p.levels = append(p.levels, v) }

// fakeHW hands out recording pins and counts delay calls.
type fakeHW struct {
	pins     map[int]*fakePin
	released []int
	delays   []int
	failPin  int // ClaimPin fails for this number when nonzero
}

func newFakeHW() *fakeHW {
	return &fakeHW{pins: map[int]*fakePin{}}
}

func (h *fakeHW) ClaimPin(pin int) (OutputPin, error) {
	if h.failPin != 0 && pin == h.failPin {
		return nil, errcode.UnknownPin
	}
	if _, taken := h.pins[pin]; taken {
		return nil, errcode.PinInUse
	}
	p := &fakePin{n: pin}
	h.pins[pin] = p
	return p, nil
}

func (h *fakeHW) ReleasePin(pin int) {
	delete(h.pins, pin)
	h.released = append(h.released, pin)
}

func (h *fakeHW) DelayMicroseconds(us int) { h.delays = append(h.delays, us) }

// fakeTimer is fired by hand so driver tests stay deterministic.
type fakeTimer struct {
	armed   bool
	d       time.Duration
	f       func()
	repeat  bool
	arms    int
	disarms int
}

func (t *fakeTimer) Arm(d time.Duration, f func(), repeat bool) {
	t.armed = true
	t.d = d
	t.f = f
	t.repeat = repeat
	t.arms++
}

func (t *fakeTimer) Disarm() {
	t.armed = false
	t.disarms++
}

// fire invokes the pending callback the way a timer expiry would.
func (t *fakeTimer) fire() {
	if t.armed && t.f != nil {
		t.f()
	}
}

func newTestSubsystem() (*Subsystem, *fakeHW, *fakeTimer) {
	hw := newFakeHW()
	tm := &fakeTimer{}
	return New(hw, tm), hw, tm
}
