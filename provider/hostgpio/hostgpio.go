//go:build linux && !tinygo

// Package hostgpio provides the servo hardware boundary on Linux hosts
// (Raspberry Pi class boards) through periph.io memory-mapped GPIO.
package hostgpio

import (
	"strconv"
	"sync"
	"time"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"

	"softservo-go/errcode"
	"softservo-go/softservo"
)

var _ softservo.Hardware = (*Provider)(nil)

// Provider resolves pins by GPIO number via gpioreg.
type Provider struct {
	mu      sync.Mutex
	claimed map[int]bool
}

// New initialises the periph host drivers.
func New() (*Provider, error) {
	if _, err := host.Init(); err != nil {
		return nil, &errcode.E{C: errcode.Error, Op: "hostgpio.New", Msg: "periph host init", Err: err}
	}
	return &Provider{claimed: map[int]bool{}}, nil
}

func (p *Provider) ClaimPin(pin int) (softservo.OutputPin, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.claimed[pin] {
		return nil, errcode.PinInUse
	}
	gp := gpioreg.ByName(strconv.Itoa(pin))
	if gp == nil {
		return nil, errcode.UnknownPin
	}
	p.claimed[pin] = true
	return &hostPin{p: gp, n: pin}, nil
}

func (p *Provider) ReleasePin(pin int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.claimed, pin)
}

// DelayMicroseconds busy-waits: on a preemptive host a microsecond sleep can
// overshoot by far more than a servo pulse tolerates.
func (p *Provider) DelayMicroseconds(us int) {
	if us <= 0 {
		return
	}
	d := time.Duration(us) * time.Microsecond
	start := time.Now()
	for time.Since(start) < d {
	}
}

type hostPin struct {
	p gpio.PinIO
	n int
}

func (h *hostPin) Number() int { return h.n }

func (h *hostPin) ConfigureOutput(initial bool) error {
	return h.p.Out(gpio.Level(initial))
}

func (h *hostPin) Set(v bool) { _ = h.p.Out(gpio.Level(v)) }
