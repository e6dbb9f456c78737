package softservo

import (
	"softservo-go/errcode"
	"softservo-go/x/mathx"
)

// Servo is one attached motor. A handle starts unattached; Attach claims a
// channel slot and starts pulsing, Detach releases it. Handles are bound to
// one Subsystem for life and own at most one channel slot at a time.
//
// Angle values below 200 passed to Write are degrees (0..180); anything else
// is taken as microseconds, matching the classic servo library convention.
type Servo struct {
	sub      *Subsystem
	id       int
	attached bool
	minUs    int
	maxUs    int
}

// NewServo returns an unattached handle bound to the subsystem.
func NewServo(sub *Subsystem) *Servo {
	return &Servo{
		sub:   sub,
		minUs: DefaultMinPulseUs,
		maxUs: DefaultMaxPulseUs,
	}
}

// Attach claims the next free channel for the pin with the default 1000/2000
// us range and writes the neutral width. It returns the channel index.
func (sv *Servo) Attach(pin int) (int, error) {
	return sv.AttachWithRange(pin, DefaultMinPulseUs, DefaultMaxPulseUs)
}

// AttachWithRange is Attach with explicit min/max pulse widths.
func (sv *Servo) AttachWithRange(pin, minUs, maxUs int) (int, error) {
	return sv.AttachWithInitial(pin, minUs, maxUs, NeutralPulseUs)
}

// AttachWithInitial is AttachWithRange plus an initial value, interpreted
// like Write. On an already attached handle it only re-validates the range
// and re-writes the value; no second slot is consumed.
//
// Attach fails with errcode.NoFreeChannel when all MaxChannels slots are
// taken, and passes through pin claim failures from the hardware.
func (sv *Servo) AttachWithInitial(pin, minUs, maxUs, value int) (int, error) {
	if !sv.attached {
		out, err := sv.sub.hw.ClaimPin(pin)
		if err != nil {
			return 0, err
		}
		if err := out.ConfigureOutput(false); err != nil {
			sv.sub.hw.ReleasePin(pin)
			return 0, err
		}
		id, ok := sv.sub.claim(out, NeutralPulseUs)
		if !ok {
			sv.sub.hw.ReleasePin(pin)
			return 0, errcode.NoFreeChannel
		}
		sv.id = id
		sv.attached = true
	}

	// Keep min and max within 200..3000 us: extreme but safe bounds that
	// still cover long-throw servos.
	sv.maxUs = mathx.Clamp(maxUs, 250, 3000)
	sv.minUs = mathx.Clamp(minUs, 200, sv.maxUs)

	sv.Write(value)
	return sv.id, nil
}

// Detach stops pulsing, drives the pin low and frees the channel slot.
// No-op when unattached.
func (sv *Servo) Detach() {
	if !sv.attached {
		return
	}
	pin := sv.sub.detachChannel(sv.id)
	if pin != nil {
		pin.Set(false)
		sv.sub.hw.ReleasePin(pin.Number())
	}
	sv.attached = false
	sv.id = 0
}

// Write sets the servo position. Values below 200 are degrees, clamped to
// 0..180 and mapped onto the configured microsecond range; anything else is
// passed to WriteMicroseconds unchanged.
func (sv *Servo) Write(value int) {
	if value < 200 {
		value = mathx.Clamp(value, 0, 180)
		value = mathx.MapRound(value, 0, 180, sv.minUs, sv.maxUs)
	}
	sv.WriteMicroseconds(value)
}

// WriteMicroseconds sets the pulse width, silently clamped into the handle's
// min/max range. Out-of-range input is never rejected: clamping keeps the
// output inside hardware-safe bounds. No-op when unattached.
func (sv *Servo) WriteMicroseconds(value int) {
	value = mathx.Clamp(value, sv.minUs, sv.maxUs)
	if !sv.attached {
		return
	}
	sv.sub.writePulse(sv.id, value)
}

// Read returns the last written position as an angle in 0..180, using the
// same symmetric map as Write so Read(Write(a)) == a.
func (sv *Servo) Read() int {
	return mathx.MapRound(sv.ReadMicroseconds(), sv.minUs, sv.maxUs, 0, 180)
}

// ReadMicroseconds returns the stored pulse width, or 0 when unattached.
func (sv *Servo) ReadMicroseconds() int {
	if !sv.attached {
		return 0
	}
	return sv.sub.pulse(sv.id)
}

// Attached reports whether the handle currently owns a channel.
func (sv *Servo) Attached() bool { return sv.attached }
