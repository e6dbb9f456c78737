package softservo

import "time"

// Pulse width defaults, in microseconds. The min/max here are uncalibrated
// values inside the range virtually all servos accept; attach-time overrides
// are clamped to 200..3000 us so extreme servos can be driven without ever
// exceeding publically specified limits.
const (
	DefaultMinPulseUs = 1000
	DefaultMaxPulseUs = 2000
	NeutralPulseUs    = 1500 // written on attach when no initial value is given
)

const (
	// RefreshInterval is the base scheduling unit: the delay between two
	// consecutive channel visits. A full sweep of the table nominally takes
	// MaxChannels * RefreshInterval (the classic 20 ms servo frame).
	RefreshInterval = 5 * time.Millisecond

	// MaxChannels is the fixed capacity of the channel table.
	MaxChannels = 4
)

// OutputPin is a digital output claimed for one channel.
type OutputPin interface {
	Number() int
	ConfigureOutput(initial bool) error
	Set(bool)
}

// Hardware provides pins and the blocking microsecond delay used to hold a
// pulse high. DelayMicroseconds runs inside the timer callback and must not
// yield for longer than asked; a busy wait is acceptable.
type Hardware interface {
	ClaimPin(pin int) (OutputPin, error)
	ReleasePin(pin int)
	DelayMicroseconds(us int)
}

// PulseTimer is the single shared timer behind the subsystem. Arm replaces
// any pending callback; implementations must never deliver two overlapping
// callbacks for one timer. Disarm stops the pending callback if it has not
// fired yet.
type PulseTimer interface {
	Arm(d time.Duration, f func(), repeat bool)
	Disarm()
}
