package softservo

import "testing"

func TestTableClaimInIndexOrder(t *testing.T) {
	tab := newChannelTable()
	for want := 0; want < MaxChannels; want++ {
		id, ok := tab.claim(&fakePin{n: 10 + want}, NeutralPulseUs)
		if !ok || id != want {
			t.Fatalf("claim %d: got (%d, %v)", want, id, ok)
		}
	}
	if _, ok := tab.claim(&fakePin{n: 99}, NeutralPulseUs); ok {
		t.Fatal("claim on a full table must fail")
	}
}

func TestTableReleaseReusesExactSlot(t *testing.T) {
	tab := newChannelTable()
	for i := 0; i < MaxChannels; i++ {
		tab.claim(&fakePin{n: i}, NeutralPulseUs)
	}
	tab.setPulse(2, 1800)
	tab.release(2)

	if tab.occupied(2) {
		t.Fatal("released slot still occupied")
	}
	if tab.slots[2].pulseUs != NeutralPulseUs {
		t.Fatalf("release must restore neutral width, got %d", tab.slots[2].pulseUs)
	}

	id, ok := tab.claim(&fakePin{n: 7}, NeutralPulseUs)
	if !ok || id != 2 {
		t.Fatalf("expected freed slot 2 to be reused, got (%d, %v)", id, ok)
	}
}

func TestTableSetPulseLeavesOccupancyAlone(t *testing.T) {
	tab := newChannelTable()
	id, _ := tab.claim(&fakePin{n: 3}, NeutralPulseUs)
	tab.setPulse(id, 1234)
	if !tab.occupied(id) || tab.slots[id].pulseUs != 1234 {
		t.Fatalf("setPulse changed the wrong thing: %+v", tab.slots[id])
	}
}
