package softservo

// slot is one channel table entry. A free slot has pin == nil; there is no
// numeric sentinel. A slot's pin is non-nil iff a Servo handle owns it.
type slot struct {
	pin     OutputPin
	pulseUs int
}

// channelTable is the fixed-capacity registry of servo channels. No dynamic
// growth: claim fails once all MaxChannels slots are taken.
type channelTable struct {
	slots [MaxChannels]slot
}

func newChannelTable() channelTable {
	var t channelTable
	for i := range t.slots {
		t.slots[i].pulseUs = NeutralPulseUs
	}
	return t
}

// claim assigns the first free slot in index order and returns its index.
func (t *channelTable) claim(pin OutputPin, pulseUs int) (int, bool) {
	for i := range t.slots {
		if t.slots[i].pin == nil {
			t.slots[i] = slot{pin: pin, pulseUs: pulseUs}
			return i, true
		}
	}
	return 0, false
}

// release frees the slot and restores the neutral pulse width so a later
// claimant starts from a safe value.
func (t *channelTable) release(i int) {
	t.slots[i] = slot{pulseUs: NeutralPulseUs}
}

func (t *channelTable) setPulse(i, us int) {
	t.slots[i].pulseUs = us
}

func (t *channelTable) occupied(i int) bool {
	return t.slots[i].pin != nil
}
