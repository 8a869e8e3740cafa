package transition

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wayfarer/internal/event"
	"github.com/samdwyer/wayfarer/internal/world"
)

// SaveHook persists the whole session. It is invoked after every completed
// transition; failures are recorded on the trace and otherwise ignored, since
// a missed checkpoint must never block play.
type SaveHook func(ctx context.Context) error

// Finalizer ends a transition: it announces the new zone and player position
// and triggers the session save hook. Callers reset their in-flight context
// to zero immediately after; finalization is the last consumer of it.
type Finalizer struct {
	bus  *event.Bus
	save SaveHook // may be nil
}

// NewFinalizer creates a finalizer. save may be nil when no session
// persistence is wired.
func NewFinalizer(bus *event.Bus, save SaveHook) *Finalizer {
	return &Finalizer{bus: bus, save: save}
}

// Finalize emits the zone-changed and player-moved notifications and runs
// the save hook.
func (f *Finalizer) Finalize(ctx context.Context, key world.ZoneKey, player world.Point) {
	f.bus.PublishZoneChanged(event.ZoneChanged{
		X:         key.X,
		Y:         key.Y,
		Dimension: key.Dimension,
		Depth:     key.Depth,
	})
	f.bus.PublishPlayerMoved(event.PlayerMoved{X: player.X, Y: player.Y})

	if f.save != nil {
		if err := f.save(ctx); err != nil {
			span := trace.SpanFromContext(ctx)
			span.AddEvent("session save failed", trace.WithAttributes(
				attribute.String("error", err.Error()),
			))
		}
	}
}
