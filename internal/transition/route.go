package transition

import "github.com/samdwyer/wayfarer/internal/world"

// Emergence names the patch rule applied to the destination tile so that it
// mirrors the transition just taken.
type Emergence int

const (
	// EmergeNone applies no patch.
	EmergeNone Emergence = iota
	// EmergeStairUp forces a stairup port at the recorded coordinates.
	EmergeStairUp
	// EmergeStairDown forces a stairdown port at the recorded coordinates.
	EmergeStairDown
	// EmergeCisternBelow ensures a cistern one row below the recorded
	// coordinates.
	EmergeCisternBelow
	// EmergeStairUpIfHazard converts the recorded tile to a stairup port only
	// while it is still a primitive hole or hazard. Regenerated zones may
	// have placed something else there; that tile is never stomped.
	EmergeStairUpIfHazard
)

// Route describes where a port transition of a given kind leads from a given
// dimension and depth, plus the emergence rule for the destination. It is a
// pure function of its inputs; grid state never enters into it. The ascent
// from depth one may be redirected into an interior by the resolver when the
// underground zone records an interior return link.
type Route struct {
	Dimension world.Dimension
	Depth     int
	Emergence Emergence
}

// PortRoute computes the route for activating a port of the given kind while
// in the given dimension at the given depth.
func PortRoute(kind Kind, from world.Dimension, depth int) Route {
	switch kind {
	case KindHole, KindPitfall:
		return Route{Dimension: world.Underground, Depth: 1, Emergence: EmergeStairUpIfHazard}

	case KindCistern:
		return Route{Dimension: world.Underground, Depth: 1, Emergence: EmergeCisternBelow}

	case KindStairDown:
		d := depth + 1
		if d < 1 {
			d = 1
		}
		return Route{Dimension: world.Underground, Depth: d, Emergence: EmergeStairUp}

	case KindStairUp:
		if depth > 1 {
			return Route{Dimension: world.Underground, Depth: depth - 1, Emergence: EmergeStairDown}
		}
		return Route{Dimension: world.Surface, Depth: 0, Emergence: EmergeStairDown}

	case KindInteriorDoor:
		if from == world.Interior {
			return Route{Dimension: world.Surface, Depth: 0, Emergence: EmergeNone}
		}
		return Route{Dimension: world.Interior, Depth: 0, Emergence: EmergeNone}

	default:
		return Route{Dimension: from, Depth: depth, Emergence: EmergeNone}
	}
}
