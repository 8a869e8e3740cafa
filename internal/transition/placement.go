package transition

import (
	"github.com/samdwyer/wayfarer/internal/world"
	"github.com/samdwyer/wayfarer/internal/zone"
)

// Side is an edge of a zone.
type Side int

const (
	// North is the top edge (row zero).
	North Side = iota
	// South is the bottom edge.
	South
	// East is the rightmost column.
	East
	// West is column zero.
	West
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the zone coordinate step for leaving through this side.
func (s Side) Delta() (int, int) {
	switch s {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

// Placer chooses the player's landing coordinates inside a newly active zone.
// It reads the repository only for the stored snapshot of the zone just left,
// whose return links close the loop on the way back out.
type Placer struct {
	repo *zone.Repository
}

// NewPlacer creates a placer over the given repository.
func NewPlacer(repo *zone.Repository) *Placer {
	return &Placer{repo: repo}
}

// PlaceEdge mirrors the traveling coordinate onto the opposite edge of the
// destination grid and forces the landing cell walkable, clearing any
// generator-placed obstruction so the player is never trapped on arrival.
func (p *Placer) PlaceEdge(grid world.Grid, side Side, exitX, exitY int) world.Point {
	var landing world.Point
	switch side {
	case North:
		landing = world.Point{X: clamp(exitX, grid.Width()), Y: grid.Height() - 1}
	case South:
		landing = world.Point{X: clamp(exitX, grid.Width()), Y: 0}
	case East:
		landing = world.Point{X: 0, Y: clamp(exitY, grid.Height())}
	default: // West
		landing = world.Point{X: grid.Width() - 1, Y: clamp(exitY, grid.Height())}
	}
	grid.ForceWalkable(landing.X, landing.Y)
	return landing
}

// PlacePort chooses landing coordinates for a port transition into dest.
// srcKey addresses the zone just left; its stored snapshot may carry the
// return link recorded when it was generated. The priority chains are fixed:
// recorded links first, then context coordinates, then grid scans, then a
// forced default. Every branch ends on a real port tile so the trip back is
// always possible.
func (p *Placer) PlacePort(dest *world.ZoneSnapshot, destDim world.Dimension, srcDim world.Dimension, srcKey world.ZoneKey, tc Context) world.Point {
	if tc.From == KindPitfall {
		if dest.PlayerSpawn != nil {
			return *dest.PlayerSpawn
		}
		dest.Grid.ForcePort(tc.X, tc.Y, world.PortStairUp)
		return world.Point{X: tc.X, Y: tc.Y}
	}

	switch {
	case destDim == world.Interior && srcDim == world.Surface:
		return p.placeInteriorEntry(dest, tc)

	case destDim == world.Interior && srcDim == world.Underground:
		return p.placeInteriorReturn(dest, tc)

	case destDim == world.Surface && srcDim == world.Underground:
		return p.placeSurfaceFromUnderground(dest, srcKey, tc)

	case destDim == world.Surface && srcDim == world.Interior:
		return p.placeSurfaceFromInterior(dest, srcKey, tc)

	default:
		// Port-to-port within a dimension pairing handled by no special
		// rule: land exactly where the matching port was patched.
		dest.Grid.ForcePort(tc.X, tc.Y, world.PortPlain)
		return world.Point{X: tc.X, Y: tc.Y}
	}
}

// PlaceTeleport lands in the center of the zone, unconditionally.
func (p *Placer) PlaceTeleport(grid world.Grid) world.Point {
	landing := world.Point{X: grid.Width() / 2, Y: grid.Height() / 2}
	grid.ForceWalkable(landing.X, landing.Y)
	return landing
}

// placeInteriorEntry handles walking through a surface door: land at the
// exact surface door coordinates if possible so the round trip is symmetric.
func (p *Placer) placeInteriorEntry(dest *world.ZoneSnapshot, tc Context) world.Point {
	t := dest.Grid.At(tc.X, tc.Y)
	if t.IsPort() {
		return world.Point{X: tc.X, Y: tc.Y}
	}
	if t.Kind == world.TileFloor {
		dest.Grid.ForcePort(tc.X, tc.Y, world.PortPlain)
		return world.Point{X: tc.X, Y: tc.Y}
	}
	if dest.PlayerSpawn != nil {
		return *dest.PlayerSpawn
	}
	if pt, ok := dest.Grid.FindPort(world.PortInterior); ok {
		return pt
	}
	if pt, ok := dest.Grid.FindPort(world.PortPlain); ok {
		return pt
	}
	return p.defaultPort(dest.Grid)
}

// placeInteriorReturn handles ascending into an interior: land on the
// stairdown the player originally descended through.
func (p *Placer) placeInteriorReturn(dest *world.ZoneSnapshot, tc Context) world.Point {
	if pt, ok := dest.Grid.FindPort(world.PortStairDown); ok {
		return pt
	}
	dest.Grid.ForcePort(tc.X, tc.Y, world.PortStairDown)
	return world.Point{X: tc.X, Y: tc.Y}
}

// placeSurfaceFromUnderground closes the loop recorded when the underground
// zone was generated.
func (p *Placer) placeSurfaceFromUnderground(dest *world.ZoneSnapshot, srcKey world.ZoneKey, tc Context) world.Point {
	landing := world.Point{X: tc.X, Y: tc.Y}
	if src := p.repo.Get(srcKey); src != nil && src.ReturnToSurface != nil {
		landing = *src.ReturnToSurface
	}
	dest.Grid.ForcePort(landing.X, landing.Y, world.PortPlain)
	return landing
}

// placeSurfaceFromInterior prefers the interior's recorded surface link, then
// the exit coordinates if they already hold a port, then any port in the
// grid, then the raw exit coordinates with a forced port.
func (p *Placer) placeSurfaceFromInterior(dest *world.ZoneSnapshot, srcKey world.ZoneKey, tc Context) world.Point {
	if src := p.repo.Get(srcKey); src != nil && src.ReturnToSurface != nil {
		landing := *src.ReturnToSurface
		dest.Grid.ForcePort(landing.X, landing.Y, world.PortPlain)
		return landing
	}
	if dest.Grid.At(tc.X, tc.Y).IsPort() {
		return world.Point{X: tc.X, Y: tc.Y}
	}
	if pt, ok := dest.Grid.FindPort(world.PortPlain); ok {
		return pt
	}
	dest.Grid.ForcePort(tc.X, tc.Y, world.PortPlain)
	return world.Point{X: tc.X, Y: tc.Y}
}

// defaultPort synthesizes a port at the fixed fallback cell.
func (p *Placer) defaultPort(grid world.Grid) world.Point {
	landing := world.Point{X: grid.Width() / 2, Y: grid.Height() / 2}
	grid.ForcePort(landing.X, landing.Y, world.PortPlain)
	return landing
}

// clamp keeps a mirrored coordinate inside a grid axis of length n.
func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
