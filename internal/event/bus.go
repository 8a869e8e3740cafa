// Package event carries fire-and-forget world notifications to subscribers
// such as the minimap and UI layers.
package event

import "github.com/samdwyer/wayfarer/internal/world"

// ZoneChanged announces that a different zone became active.
type ZoneChanged struct {
	X, Y      int
	Dimension world.Dimension
	Depth     int
}

// PlayerMoved announces the player's new tile position in the active zone.
type PlayerMoved struct {
	X, Y int
}

// Bus dispatches notifications synchronously to registered subscribers.
// Publishing never fails and never blocks on a slow consumer's behalf;
// subscribers are expected to queue their own work.
type Bus struct {
	zoneSubs []func(ZoneChanged)
	moveSubs []func(PlayerMoved)
}

// NewBus creates a bus with no subscribers.
func NewBus() *Bus {
	return &Bus{}
}

// SubscribeZoneChanged registers a zone-change consumer.
func (b *Bus) SubscribeZoneChanged(fn func(ZoneChanged)) {
	b.zoneSubs = append(b.zoneSubs, fn)
}

// SubscribePlayerMoved registers a player-movement consumer.
func (b *Bus) SubscribePlayerMoved(fn func(PlayerMoved)) {
	b.moveSubs = append(b.moveSubs, fn)
}

// PublishZoneChanged delivers the event to all zone-change subscribers.
func (b *Bus) PublishZoneChanged(ev ZoneChanged) {
	for _, fn := range b.zoneSubs {
		fn(ev)
	}
}

// PublishPlayerMoved delivers the event to all player-movement subscribers.
func (b *Bus) PublishPlayerMoved(ev PlayerMoved) {
	for _, fn := range b.moveSubs {
		fn(ev)
	}
}
