// Package softservo drives hobby servo motors from boards that have no free
// hardware PWM channel, by emulating the servo pulse train with one shared
// repeating timer.
//
// A Subsystem owns a fixed table of up to MaxChannels channels, each pairing
// an output pin with a pulse width. One timer callback walks the table in
// circular order, raising each attached pin, holding it high for the channel's
// pulse width with a blocking microsecond delay, lowering it again and then
// re-arming the timer for the next occupied channel. Every occupied channel is
// visited once per MaxChannels*RefreshInterval regardless of how many slots
// are empty, because the re-arm delay folds in one RefreshInterval per skipped
// empty slot.
//
// Timing is best effort. The pulse hold runs inside the timer callback, so
// while one channel is being pulsed no other channel can fire; worst-case
// jitter is therefore bounded by the longest configured pulse width (3 ms at
// the extreme), on top of whatever latency the platform timer itself has.
// Applications that need microsecond-exact pulses should use a hardware PWM
// channel instead.
package softservo
