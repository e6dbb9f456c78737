//go:build rp2040 || rp2350

// Package rp2 provides the servo hardware boundary for RP2040/RP2350 boards:
// machine.Pin digital outputs with claim accounting and a busy-wait
// microsecond delay tight enough for pulse shaping.
package rp2

import (
	"machine"
	"sync"
	"time"

	"softservo-go/errcode"
	"softservo-go/softservo"
)

var _ softservo.Hardware = (*Provider)(nil)

// Provider hands out GPIO pins by number. Claiming a pin twice fails until
// it is released, mirroring the slot ownership in the channel table.
type Provider struct {
	mu      sync.Mutex
	claimed map[int]bool
}

func New() *Provider {
	return &Provider{claimed: map[int]bool{}}
}

func (p *Provider) ClaimPin(pin int) (softservo.OutputPin, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.claimed[pin] {
		return nil, errcode.PinInUse
	}
	p.claimed[pin] = true
	return &gpioPin{p: machine.Pin(pin), n: pin}, nil
}

func (p *Provider) ReleasePin(pin int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.claimed, pin)
}

// DelayMicroseconds busy-waits so the pulse hold is not stretched by a
// scheduler yield. It runs inside the timer callback.
func (p *Provider) DelayMicroseconds(us int) {
	if us <= 0 {
		return
	}
	d := time.Duration(us) * time.Microsecond
	start := time.Now()
	for time.Since(start) < d {
	}
}

type gpioPin struct {
	p machine.Pin
	n int
}

func (g *gpioPin) Number() int { return g.n }

func (g *gpioPin) ConfigureOutput(initial bool) error {
	g.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	g.p.Set(initial)
	return nil
}

func (g *gpioPin) Set(v bool) { g.p.Set(v) }
