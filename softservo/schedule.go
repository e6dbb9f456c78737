package softservo

import "time"

// schedule holds, for every channel index, the next channel the timer visits
// and how long to wait before visiting it. Following next from any index
// cycles through exactly the occupied slots in increasing circular order.
type schedule struct {
	next [MaxChannels]int
	wait [MaxChannels]time.Duration
}

func newSchedule(interval time.Duration) schedule {
	var s schedule
	for i := range s.next {
		s.next[i] = (i + 1) % MaxChannels
		s.wait[i] = interval
	}
	return s
}

// plan recomputes next/wait from the table's occupancy and returns how many
// channels were given a next hop (zero means there is nothing to pulse and
// the caller must disarm the timer).
//
// For each index the walk searches i+1, i+2, ... circularly for the first
// occupied slot; the wait grows by one interval per empty slot skipped, so a
// sparse table still sweeps every occupied channel once per full
// MaxChannels*interval frame.
func (s *schedule) plan(t *channelTable, interval time.Duration) int {
	scheduled := 0
	for i := 0; i < MaxChannels; i++ {
		gap := interval
		for j := 0; j < MaxChannels; j++ {
			k := (i + j + 1) % MaxChannels
			if !t.occupied(k) {
				gap += interval
				continue
			}
			s.next[i] = k
			s.wait[i] = gap
			scheduled++
			break
		}
	}
	return scheduled
}
