package transition

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wayfarer/internal/entity"
	"github.com/samdwyer/wayfarer/internal/telemetry"
	"github.com/samdwyer/wayfarer/internal/world"
	"github.com/samdwyer/wayfarer/internal/zone"
)

// Outcome is the result of a completed transition: the new active zone, its
// live roster, the player's landing point, and the replacement player state.
type Outcome struct {
	Key      world.ZoneKey
	Snapshot *world.ZoneSnapshot
	Enemies  []*entity.Enemy
	Landing  world.Point
	State    PlayerState
}

// Coordinator runs a whole transition in order: write back the zone being
// left, resolve the destination, place the player, finalize. Exactly one
// transition is in flight at a time; input is gated externally while one
// runs.
type Coordinator struct {
	resolver *IntentResolver
	persist  *zone.PersistenceManager
	orch     *Orchestrator
	placer   *Placer
	fin      *Finalizer

	// sink receives the outcome after placement and before finalization;
	// this is the moment ownership of the live zone passes to the new one.
	sink func(*Outcome)

	// inflight holds the context of the transition currently running. It is
	// zeroed at the end of every transition; observable emptiness between
	// transitions is part of the contract.
	inflight Context
}

// NewCoordinator wires a coordinator from its stages. sink may be nil when
// no session consumes outcomes directly.
func NewCoordinator(resolver *IntentResolver, persist *zone.PersistenceManager, orch *Orchestrator, placer *Placer, fin *Finalizer, sink func(*Outcome)) *Coordinator {
	return &Coordinator{
		resolver: resolver,
		persist:  persist,
		orch:     orch,
		placer:   placer,
		fin:      fin,
		sink:     sink,
	}
}

// InFlight returns the context of the transition currently running. Between
// transitions it is always the zero context.
func (c *Coordinator) InFlight() Context {
	return c.inflight
}

// Port runs a port-tile transition. The live grid and roster belong to the
// zone being left and are written back before the destination is resolved.
// A non-nil Rejection means nothing happened and all state is untouched.
func (c *Coordinator) Port(ctx context.Context, state PlayerState, liveGrid world.Grid, liveEnemies []*entity.Enemy, px, py int, pitfallHold bool) (*Outcome, *Rejection) {
	tile := liveGrid.At(px, py)
	below := liveGrid.At(px, py+1)

	target, tc, rejection := c.resolver.ResolvePort(state, px, py, tile, below, pitfallHold)
	if rejection != nil {
		return nil, rejection
	}
	return c.run(ctx, state, liveGrid, liveEnemies, target, tc), nil
}

// Pitfall runs the involuntary fall-through transition. The source tile is
// converted to a permanent hazard before the zone is written back, so the
// collapsed floor never becomes a navigable port again.
func (c *Coordinator) Pitfall(ctx context.Context, state PlayerState, liveGrid world.Grid, liveEnemies []*entity.Enemy, px, py int) *Outcome {
	target, tc := c.resolver.ResolvePitfall(state, px, py)
	liveGrid.Set(px, py, world.Tile{Kind: world.TileHazard})
	return c.run(ctx, state, liveGrid, liveEnemies, target, tc)
}

// EdgeExit runs a geometric zone step through one edge. Edge exits never
// change dimension or depth and carry no transition context; placement is
// pure mirroring.
func (c *Coordinator) EdgeExit(ctx context.Context, state PlayerState, liveGrid world.Grid, liveEnemies []*entity.Enemy, side Side, exitX, exitY int) *Outcome {
	tracer := telemetry.Tracer("transition")
	ctx, span := tracer.Start(ctx, "transition.edge")
	defer span.End()

	c.writeBack(state, liveGrid, liveEnemies)

	dx, dy := side.Delta()
	next := PlayerState{
		ZoneX:     state.ZoneX + dx,
		ZoneY:     state.ZoneY + dy,
		Dimension: state.Dimension,
		Depth:     state.Depth,
	}
	key := next.Key()

	snap, enemies := c.orch.Resolve(ctx, key, Context{})
	landing := c.placer.PlaceEdge(snap.Grid, side, exitX, exitY)

	span.SetAttributes(
		attribute.String("edge.side", side.String()),
		attribute.Int("zone.x", key.X),
		attribute.Int("zone.y", key.Y),
	)

	outcome := &Outcome{Key: key, Snapshot: snap, Enemies: enemies, Landing: landing, State: next}
	c.deliver(ctx, outcome)
	return outcome
}

// Teleport relocates the player to the center of an arbitrary zone.
func (c *Coordinator) Teleport(ctx context.Context, state PlayerState, liveGrid world.Grid, liveEnemies []*entity.Enemy, dest world.ZoneKey) *Outcome {
	tracer := telemetry.Tracer("transition")
	ctx, span := tracer.Start(ctx, "transition.teleport")
	defer span.End()

	c.writeBack(state, liveGrid, liveEnemies)

	snap, enemies := c.orch.Resolve(ctx, dest, Context{})
	landing := c.placer.PlaceTeleport(snap.Grid)

	next := PlayerState{
		ZoneX:     dest.X,
		ZoneY:     dest.Y,
		Dimension: dest.Dimension,
		Depth:     dest.Depth,
	}

	outcome := &Outcome{Key: dest, Snapshot: snap, Enemies: enemies, Landing: landing, State: next}
	c.deliver(ctx, outcome)
	return outcome
}

// run executes the shared port pipeline: persist, resolve, place, finalize.
func (c *Coordinator) run(ctx context.Context, state PlayerState, liveGrid world.Grid, liveEnemies []*entity.Enemy, target Target, tc Context) *Outcome {
	tracer := telemetry.Tracer("transition")
	ctx, span := tracer.Start(ctx, "transition.port")
	defer span.End()

	c.inflight = tc
	srcKey := state.Key()

	// The zone being left must be written back before the destination is
	// resolved; there is no window with two live zones.
	c.writeBack(state, liveGrid, liveEnemies)

	next := PlayerState{
		ZoneX:     state.ZoneX,
		ZoneY:     state.ZoneY,
		Dimension: target.Dimension,
		Depth:     target.Depth,
		Port:      target.Port,
	}
	key := next.Key()

	snap, enemies := c.orch.Resolve(ctx, key, tc)
	landing := c.placer.PlacePort(snap, key.Dimension, state.Dimension, srcKey, tc)

	span.SetAttributes(
		attribute.String("transition.from", tc.From.String()),
		attribute.String("zone.dimension", key.Dimension.String()),
		attribute.Int("zone.depth", key.Depth),
		attribute.Int("landing.x", landing.X),
		attribute.Int("landing.y", landing.Y),
	)

	outcome := &Outcome{Key: key, Snapshot: snap, Enemies: enemies, Landing: landing, State: next}
	c.deliver(ctx, outcome)
	return outcome
}

// writeBack persists the zone being left. On the very first transition of a
// session there is no live zone yet; a nil grid skips the write-back rather
// than storing an empty snapshot over a real zone.
func (c *Coordinator) writeBack(state PlayerState, liveGrid world.Grid, liveEnemies []*entity.Enemy) {
	if len(liveGrid) == 0 {
		return
	}
	c.persist.Snapshot(state.Key(), liveGrid, liveEnemies)
}

// deliver hands the outcome to the session sink, finalizes, and resets the
// in-flight context so it cannot leak into an unrelated later transition.
func (c *Coordinator) deliver(ctx context.Context, outcome *Outcome) {
	if c.sink != nil {
		c.sink(outcome)
	}
	c.fin.Finalize(ctx, outcome.Key, outcome.Landing)
	c.inflight = Context{}
}
