// Package transition decides which zone loads next, where the player lands
// in it, and how landing points stay consistent with departure points.
package transition

import "github.com/samdwyer/wayfarer/internal/world"

// Kind identifies how a transition was initiated.
type Kind int

const (
	// KindNone means no port transition is in flight (edge exits, teleports,
	// first entry).
	KindNone Kind = iota
	// KindInteriorDoor is a plain surface door into an interior.
	KindInteriorDoor
	// KindHole is a natural opening leading underground.
	KindHole
	// KindPitfall is an involuntary fall through a collapsing tile.
	KindPitfall
	// KindCistern is a descent through a well shaft.
	KindCistern
	// KindStairDown is a descent by stairs.
	KindStairDown
	// KindStairUp is an ascent by stairs.
	KindStairUp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInteriorDoor:
		return "interiorDoor"
	case KindHole:
		return "hole"
	case KindPitfall:
		return "pitfall"
	case KindCistern:
		return "cistern"
	case KindStairDown:
		return "stairdown"
	case KindStairUp:
		return "stairup"
	default:
		return "unknown"
	}
}

// Context is the one-shot record of how the current transition was initiated.
// It is passed by value from the intent resolver through the orchestrator to
// the placer and never outlives a single transition, so a stale context can
// never influence an unrelated later one.
type Context struct {
	From Kind

	// X, Y are the port coordinates in the zone being left; the destination
	// remembers them to close the loop on the return trip.
	X, Y int

	// FromInterior records that the transition originated inside an interior
	// zone, so the destination links back to the interior rather than the
	// surface.
	FromInterior bool

	// ToInterior redirects an ascent into the interior the underground was
	// entered from.
	ToInterior bool
}

// IsZero returns true for the default context, i.e. no port transition.
func (c Context) IsZero() bool {
	return c == Context{}
}

// PlayerState locates the player in the world: which zone, which dimension,
// how deep, and the kind of port last used. It is replaced wholesale by a
// completed transition, never field by field, so a zone key is never computed
// from half-updated state.
type PlayerState struct {
	ZoneX, ZoneY int
	Dimension    world.Dimension
	Depth        int
	Port         world.PortKind
}

// Key returns the zone key for the state.
func (s PlayerState) Key() world.ZoneKey {
	return world.NewZoneKey(s.ZoneX, s.ZoneY, s.Dimension, s.Depth)
}
