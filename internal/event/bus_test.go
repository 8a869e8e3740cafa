package event

import (
	"testing"

	"github.com/samdwyer/wayfarer/internal/world"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()

	var zones []ZoneChanged
	bus.SubscribeZoneChanged(func(ev ZoneChanged) { zones = append(zones, ev) })
	bus.SubscribeZoneChanged(func(ev ZoneChanged) { zones = append(zones, ev) })

	var moves []PlayerMoved
	bus.SubscribePlayerMoved(func(ev PlayerMoved) { moves = append(moves, ev) })

	bus.PublishZoneChanged(ZoneChanged{X: 1, Y: 2, Dimension: world.Underground, Depth: 3})
	bus.PublishPlayerMoved(PlayerMoved{X: 4, Y: 5})

	if len(zones) != 2 {
		t.Errorf("Zone event delivered %d times, want 2", len(zones))
	}
	if zones[0].Depth != 3 || zones[0].Dimension != world.Underground {
		t.Errorf("Zone event payload: %+v", zones[0])
	}
	if len(moves) != 1 || moves[0] != (PlayerMoved{X: 4, Y: 5}) {
		t.Errorf("Move events: %v", moves)
	}
}

func TestBusWithNoSubscribers(t *testing.T) {
	bus := NewBus()
	// Publishing into the void must be harmless
	bus.PublishZoneChanged(ZoneChanged{})
	bus.PublishPlayerMoved(PlayerMoved{})
}
