package softservo

import (
	"testing"
)

func TestAttachArmsTimer(t *testing.T) {
	sub, _, tm := newTestSubsystem()
	sv := NewServo(sub)
	if _, err := sv.Attach(10); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if !tm.armed || !tm.repeat {
		t.Fatalf("timer not armed after attach: %+v", tm)
	}
	// Lone channel: the cursor's delay spans a full frame.
	if tm.d != MaxChannels*RefreshInterval {
		t.Fatalf("armed delay %v, want %v", tm.d, MaxChannels*RefreshInterval)
	}
}

func TestTickPulsesPinAndRearms(t *testing.T) {
	sub, hw, tm := newTestSubsystem()
	sv := NewServo(sub)
	sv.Attach(10)
	sv.WriteMicroseconds(1800)

	pin := hw.pins[10]
	before := len(pin.levels)
	tm.fire()

	got := pin.levels[before:]
	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Fatalf("pulse transitions = %v, want [true false]", got)
	}
	if len(hw.delays) != 1 || hw.delays[0] != 1800 {
		t.Fatalf("hold delays = %v, want [1800]", hw.delays)
	}
	if !tm.armed {
		t.Fatal("timer must re-arm after a tick with active channels")
	}
}

func TestTickAdvancesCursorThroughOccupiedChannels(t *testing.T) {
	sub, hw, tm := newTestSubsystem()
	a := NewServo(sub)
	b := NewServo(sub)
	a.Attach(10)
	b.Attach(11)

	// Cursor starts at 0; each fire services the cursor channel and moves on.
	tm.fire()
	tm.fire()
	tm.fire()

	if n := countPulses(hw.pins[10]); n != 2 {
		t.Errorf("channel 0 pulsed %d times, want 2", n)
	}
	if n := countPulses(hw.pins[11]); n != 1 {
		t.Errorf("channel 1 pulsed %d times, want 1", n)
	}
	// The third fire serviced slot 0 again; its hop to the adjacent slot 1
	// is a single interval. (The hop 1 -> 0 seen after the second fire is
	// 3 intervals, skipping the empty slots 2 and 3.)
	if tm.d != RefreshInterval {
		t.Errorf("re-arm delay %v, want %v", tm.d, RefreshInterval)
	}
}

func TestTickSkipsFreedSlot(t *testing.T) {
	sub, hw, tm := newTestSubsystem()
	a := NewServo(sub)
	b := NewServo(sub)
	a.Attach(10)
	b.Attach(11)
	a.Detach()

	// Cursor may still sit on the freed slot; firing must not touch a pin
	// that is no longer assigned.
	released := len(hw.released)
	tm.fire()
	tm.fire()

	if len(hw.released) != released {
		t.Fatal("tick released a pin")
	}
	if n := countPulses(hw.pins[11]); n == 0 {
		t.Fatal("surviving channel stopped pulsing after a peer detached")
	}
}

func TestTickWithNothingActiveDisarms(t *testing.T) {
	sub, _, tm := newTestSubsystem()
	sv := NewServo(sub)
	sv.Attach(10)
	f := tm.f
	sv.Detach()

	if tm.armed {
		t.Fatal("timer still armed after last detach")
	}
	// A stale callback still in flight must self-terminate, not re-arm.
	f()
	if tm.armed {
		t.Fatal("stale tick re-armed the timer")
	}
}

func countPulses(p *fakePin) int {
	n := 0
	for _, l := range p.levels {
		if l {
			n++
		}
	}
	return n
}
