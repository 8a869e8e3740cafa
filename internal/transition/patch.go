package transition

import "github.com/samdwyer/wayfarer/internal/world"

// PatchEmergence makes the destination's emergence tile mirror the transition
// that created it: descending stairs must find ascending stairs waiting at
// the landing point, and so on. The patch is idempotent and runs on every
// resolve, cache hit or miss, because the connectivity of the world is never
// stored explicitly; it is re-derived from these patches each visit.
//
// Out-of-bounds coordinates are skipped silently; an imperfect emergence tile
// is always preferable to a blocked transition.
func PatchEmergence(snap *world.ZoneSnapshot, ctx Context) {
	if snap == nil || ctx.IsZero() {
		return
	}

	// The emergence rule depends only on the transition kind, so the route
	// lookup here does not need the true source dimension or depth.
	route := PortRoute(ctx.From, world.Surface, 0)
	switch route.Emergence {
	case EmergeStairUp:
		snap.Grid.ForcePort(ctx.X, ctx.Y, world.PortStairUp)

	case EmergeStairDown:
		snap.Grid.ForcePort(ctx.X, ctx.Y, world.PortStairDown)

	case EmergeCisternBelow:
		ensureCistern(snap.Grid, ctx.X, ctx.Y+1)

	case EmergeStairUpIfHazard:
		// Only a tile that is still a primitive hazard is converted. A zone
		// regenerated for unrelated reasons may hold anything here, and an
		// accidental port must never appear in it.
		switch snap.Grid.At(ctx.X, ctx.Y).Kind {
		case world.TileHole, world.TileHazard:
			snap.Grid.Set(ctx.X, ctx.Y, world.Port(world.PortStairUp))
		}
	}
}

// ensureCistern places a cistern at (x, y) unless the cell already holds one
// or carries a keyed port whose kind is a link to another zone.
func ensureCistern(g world.Grid, x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	t := g.At(x, y)
	if t.Kind == world.TileCistern || t.IsKeyedPort() {
		return
	}
	g.Set(x, y, world.Tile{Kind: world.TileCistern})
}
