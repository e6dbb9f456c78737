//go:build rp2040 || rp2350

package rp2

import (
	"machine"
	"sync"

	"tinygo.org/x/drivers/servo"

	"softservo-go/errcode"
	"softservo-go/softservo"
)

// PWMGroup adapts a servo subsystem to the PWM contract that
// tinygo.org/x/drivers/servo drives, so code written against that API keeps
// working on pins that have no free hardware PWM slice. One count equals one
// microsecond of pulse width: Top() is the frame period in microseconds, so
// the drivers package's top*us/period arithmetic degenerates to the raw
// microsecond value this subsystem stores anyway.
//
// Timing caveats of software pulses apply; see the softservo package
// documentation.
type PWMGroup struct {
	mu     sync.Mutex
	sub    *softservo.Subsystem
	period uint64 // frame period in nanoseconds
	servos [softservo.MaxChannels]*softservo.Servo
}

var _ servo.PWM = (*PWMGroup)(nil)

// NewPWMGroup wraps the subsystem with the default 20 ms servo frame.
func NewPWMGroup(sub *softservo.Subsystem) *PWMGroup {
	return &PWMGroup{sub: sub, period: 20_000_000}
}

func (g *PWMGroup) Configure(config machine.PWMConfig) error {
	if config.Period != 0 {
		g.mu.Lock()
		g.period = config.Period
		g.mu.Unlock()
	}
	return nil
}

func (g *PWMGroup) SetPeriod(period uint64) error {
	if period == 0 {
		return errcode.InvalidParams
	}
	g.mu.Lock()
	g.period = period
	g.mu.Unlock()
	return nil
}

func (g *PWMGroup) Period() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.period
}

// Top reports the counts per frame: the period in microseconds.
func (g *PWMGroup) Top() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return uint32(g.period / 1000)
}

// Channel attaches a software servo channel for the pin. The returned index
// is the channel slot, usable with Set.
func (g *PWMGroup) Channel(pin machine.Pin) (uint8, error) {
	sv := softservo.NewServo(g.sub)
	// Wide open range: the caller's library does its own value mapping.
	ch, err := sv.AttachWithRange(int(pin), 200, 3000)
	if err != nil {
		return 0, err
	}
	g.mu.Lock()
	g.servos[ch] = sv
	g.mu.Unlock()
	return uint8(ch), nil
}

// Set writes a pulse width of `value` counts (= microseconds) to the channel.
func (g *PWMGroup) Set(channel uint8, value uint32) {
	g.mu.Lock()
	var sv *softservo.Servo
	if int(channel) < len(g.servos) {
		sv = g.servos[channel]
	}
	g.mu.Unlock()
	if sv != nil {
		sv.WriteMicroseconds(int(value))
	}
}
