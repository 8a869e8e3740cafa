package transition

import (
	"github.com/samdwyer/wayfarer/internal/world"
	"github.com/samdwyer/wayfarer/internal/zone"
)

// Target is the destination of an accepted transition intent.
type Target struct {
	Dimension world.Dimension
	Depth     int
	Port      world.PortKind
}

// Rejection is a user-visible refusal of a transition intent. It is not an
// error: the transition simply does not occur and no state changes.
type Rejection struct {
	Message string
	Cue     string // audio cue id for the input layer
}

// IntentResolver classifies an activated port and produces the transition
// context for it. It consults the repository only to decide whether an
// ascent from depth one returns to an interior.
type IntentResolver struct {
	repo *zone.Repository
}

// NewIntentResolver creates a resolver over the given repository.
func NewIntentResolver(repo *zone.Repository) *IntentResolver {
	return &IntentResolver{repo: repo}
}

// ResolvePort decides what activating a port tile at (px, py) means. tile is
// the tile the player occupies and below the tile one row down (cisterns act
// on the tile above them). pitfallHold is true while a pitfall survival
// requirement is unsatisfied; every port use is refused until it clears.
//
// Returns the target, the context to thread through the transition, and a
// rejection when the intent is refused.
func (r *IntentResolver) ResolvePort(state PlayerState, px, py int, tile, below world.Tile, pitfallHold bool) (Target, Context, *Rejection) {
	if pitfallHold {
		return Target{}, Context{}, &Rejection{
			Message: "You must survive a little longer before climbing out.",
			Cue:     "error",
		}
	}

	switch state.Dimension {
	case world.Interior:
		return r.resolveInteriorPort(state, px, py, tile)
	case world.Underground:
		return r.resolveUndergroundPort(state, px, py, tile)
	default:
		// Surface and custom dimensions share the surface rules.
		return r.resolveSurfacePort(state, px, py, tile, below)
	}
}

// resolveSurfacePort applies the surface priority order: cistern below the
// player, then hole, then stair metadata, then a plain interior door.
func (r *IntentResolver) resolveSurfacePort(state PlayerState, px, py int, tile, below world.Tile) (Target, Context, *Rejection) {
	if below.Kind == world.TileCistern {
		return r.accept(state, KindCistern, px, py)
	}
	if tile.Kind == world.TileHole {
		return r.accept(state, KindHole, px, py)
	}
	if tile.IsPort() {
		switch tile.Port {
		case world.PortStairDown:
			return r.accept(state, KindStairDown, px, py)
		case world.PortStairUp:
			return r.accept(state, KindStairUp, px, py)
		}
	}
	return r.accept(state, KindInteriorDoor, px, py)
}

// resolveUndergroundPort handles descent and ascent between cave levels. At
// depth one, ascending consults the cached snapshot of the current zone: an
// interior return link redirects the ascent into that interior.
func (r *IntentResolver) resolveUndergroundPort(state PlayerState, px, py int, tile world.Tile) (Target, Context, *Rejection) {
	if tile.IsPort() && tile.Port == world.PortStairDown {
		return r.accept(state, KindStairDown, px, py)
	}

	if state.Depth <= 1 {
		if cur := r.repo.Get(state.Key()); cur != nil && cur.ReturnToInterior != nil {
			target := Target{Dimension: world.Interior, Depth: 0, Port: world.PortStairUp}
			ctx := Context{From: KindStairUp, X: px, Y: py, ToInterior: true}
			return target, ctx, nil
		}
	}
	return r.accept(state, KindStairUp, px, py)
}

// resolveInteriorPort handles leaving an interior: stairs lead underground
// with the interior recorded as origin, anything else surfaces.
func (r *IntentResolver) resolveInteriorPort(state PlayerState, px, py int, tile world.Tile) (Target, Context, *Rejection) {
	if tile.IsPort() && tile.Port == world.PortStairDown {
		route := PortRoute(KindStairDown, state.Dimension, 0)
		target := Target{Dimension: route.Dimension, Depth: route.Depth, Port: world.PortStairDown}
		ctx := Context{From: KindStairDown, X: px, Y: py, FromInterior: true}
		return target, ctx, nil
	}
	if tile.IsPort() && tile.Port == world.PortStairUp {
		return r.accept(state, KindStairUp, px, py)
	}
	return r.accept(state, KindInteriorDoor, px, py)
}

// ResolvePitfall produces the unconditional transition for falling through a
// pitfall: underground, depth one, regardless of current dimension. The
// caller marks the source tile as a permanent hazard before leaving.
func (r *IntentResolver) ResolvePitfall(state PlayerState, x, y int) (Target, Context) {
	route := PortRoute(KindPitfall, state.Dimension, state.Depth)
	target := Target{Dimension: route.Dimension, Depth: route.Depth, Port: world.PortStairUp}
	ctx := Context{From: KindPitfall, X: x, Y: y, FromInterior: state.Dimension == world.Interior}
	return target, ctx
}

// accept builds the target/context pair for the given kind via the pure
// route function.
func (r *IntentResolver) accept(state PlayerState, kind Kind, x, y int) (Target, Context, *Rejection) {
	route := PortRoute(kind, state.Dimension, state.Depth)
	target := Target{Dimension: route.Dimension, Depth: route.Depth, Port: portForKind(kind)}
	ctx := Context{
		From:         kind,
		X:            x,
		Y:            y,
		FromInterior: state.Dimension == world.Interior,
	}
	return target, ctx, nil
}

// portForKind maps a transition kind to the port type recorded on the player
// state after the transition.
func portForKind(kind Kind) world.PortKind {
	switch kind {
	case KindStairDown:
		return world.PortStairDown
	case KindStairUp:
		return world.PortStairUp
	default:
		return world.PortPlain
	}
}
