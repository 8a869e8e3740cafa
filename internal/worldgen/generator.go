// Package worldgen is the bundled procedural zone generator. The transition
// core treats it as an opaque collaborator behind the Generator contract.
package worldgen

import (
	"context"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/telemetry"
	"github.com/samdwyer/wayfarer/internal/transition"
	"github.com/samdwyer/wayfarer/internal/world"
)

const (
	// maxEnemiesPerZone caps the roster of a freshly generated zone.
	maxEnemiesPerZone = 4
	// maxFoodsPerZone caps consumable placement per zone.
	maxFoodsPerZone = 3
)

// Generator produces zone content per dimension: an open field on the
// surface, a walled room for interiors, and rooms-and-corridors underground.
// Output is deterministic per (seed, zone key): revisiting coordinates after
// an eviction regenerates the same layout.
type Generator struct {
	seed     int64
	registry *gamedata.EnemyRegistry
}

// New creates a generator. registry may be nil to generate empty rosters.
func New(seed int64, registry *gamedata.EnemyRegistry) *Generator {
	return &Generator{seed: seed, registry: registry}
}

// Generate builds the snapshot for one zone. conns is accepted per the
// generator contract but unused by this implementation: connectivity is
// patched lazily by the transition core, not planned ahead.
func (g *Generator) Generate(ctx context.Context, zoneX, zoneY int, dim world.Dimension, depth int, conns transition.Connections, assets []gamedata.FoodDef, hint transition.Kind) *world.ZoneSnapshot {
	tracer := telemetry.Tracer("worldgen")
	_, span := tracer.Start(ctx, "zone.generate")
	defer span.End()

	startTime := time.Now()

	key := world.NewZoneKey(zoneX, zoneY, dim, depth)
	rng := rand.New(rand.NewSource(g.seed ^ int64(xxhash.Sum64String(key.String()))))

	var snap *world.ZoneSnapshot
	switch dim {
	case world.Interior:
		snap = g.generateInterior(rng)
	case world.Underground:
		snap = g.generateUnderground(rng, depth)
	default:
		snap = g.generateSurface(rng)
	}

	g.scatterFood(rng, snap.Grid, assets)
	snap.Enemies = g.spawnEnemies(rng, snap.Grid, dim)

	span.SetAttributes(
		attribute.Int("zone.x", zoneX),
		attribute.Int("zone.y", zoneY),
		attribute.String("zone.dimension", dim.String()),
		attribute.Int("zone.depth", depth),
		attribute.String("zone.hint", hint.String()),
		attribute.Int("zone.enemies", len(snap.Enemies)),
		attribute.Int64("zone.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return snap
}

// generateSurface builds an open field: mostly floor, scattered water and
// rock, an occasional hole down, and a terrain decor layer.
func (g *Generator) generateSurface(rng *rand.Rand) *world.ZoneSnapshot {
	grid := world.NewGrid(world.DefaultZoneWidth, world.DefaultZoneHeight, world.Floor())

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			switch roll := rng.Intn(100); {
			case roll < 4:
				grid.Set(x, y, world.Tile{Kind: world.TileWall})
			case roll < 7:
				grid.Set(x, y, world.Tile{Kind: world.TileWater})
			}
		}
	}

	// One natural way down per field, away from the edges
	if rng.Intn(3) == 0 {
		hx := 2 + rng.Intn(grid.Width()-4)
		hy := 2 + rng.Intn(grid.Height()-4)
		grid.Set(hx, hy, world.Tile{Kind: world.TileHole})
	}

	terrain := make([][]uint8, grid.Height())
	for y := range terrain {
		terrain[y] = make([]uint8, grid.Width())
		for x := range terrain[y] {
			terrain[y][x] = uint8(rng.Intn(4))
		}
	}

	return &world.ZoneSnapshot{Grid: grid, Decor: world.Decor{Terrain: terrain}}
}

// generateInterior builds a single walled room with the entry spot marked.
func (g *Generator) generateInterior(rng *rand.Rand) *world.ZoneSnapshot {
	width := 8 + rng.Intn(6)
	height := 6 + rng.Intn(4)
	grid := world.NewGrid(width, height, world.Floor())

	for x := 0; x < width; x++ {
		grid.Set(x, 0, world.Tile{Kind: world.TileWall})
		grid.Set(x, height-1, world.Tile{Kind: world.TileWall})
	}
	for y := 0; y < height; y++ {
		grid.Set(0, y, world.Tile{Kind: world.TileWall})
		grid.Set(width-1, y, world.Tile{Kind: world.TileWall})
	}

	// Entry spot near the bottom wall
	grid.Set(width/2, height-2, world.Port(world.PortInterior))

	return &world.ZoneSnapshot{Grid: grid}
}

// generateUnderground builds rooms connected by corridors. Deeper levels get
// denser rock. A stairdown to the next level is placed in the last room.
func (g *Generator) generateUnderground(rng *rand.Rand, depth int) *world.ZoneSnapshot {
	grid := world.NewGrid(world.DefaultZoneWidth, world.DefaultZoneHeight, world.Tile{Kind: world.TileWall})

	rooms := carveRooms(grid, rng)
	for i := 1; i < len(rooms); i++ {
		carveCorridor(grid, rng, rooms[i-1], rooms[i])
	}

	if len(rooms) > 0 && depth < 9 {
		cx, cy := rooms[len(rooms)-1].center()
		grid.Set(cx, cy, world.Port(world.PortStairDown))
	}

	return &world.ZoneSnapshot{Grid: grid}
}

// scatterFood places consumables from the asset list on random floor tiles.
func (g *Generator) scatterFood(rng *rand.Rand, grid world.Grid, assets []gamedata.FoodDef) {
	if len(assets) == 0 {
		return
	}
	for i := 0; i < maxFoodsPerZone; i++ {
		x := rng.Intn(grid.Width())
		y := rng.Intn(grid.Height())
		if grid.At(x, y).Kind != world.TileFloor {
			continue
		}
		def := assets[rng.Intn(len(assets))]
		grid.Set(x, y, world.Tile{
			Kind: world.TileFloor,
			Food: world.FoodKind(def.Kind),
			Uses: def.Uses,
		})
	}
}

// spawnEnemies rolls a roster for the dimension on passable tiles. Ids are
// minted as uuids by the entity layer on first rehydration; here snapshots
// carry fresh ids directly.
func (g *Generator) spawnEnemies(rng *rand.Rand, grid world.Grid, dim world.Dimension) []world.EnemySnapshot {
	if g.registry == nil {
		return nil
	}
	count := rng.Intn(maxEnemiesPerZone + 1)
	enemies := make([]world.EnemySnapshot, 0, count)
	for i := 0; i < count; i++ {
		def := g.registry.SpawnRandom(rng, dim.String())
		if def == nil {
			continue
		}
		x := rng.Intn(grid.Width())
		y := rng.Intn(grid.Height())
		if !grid.At(x, y).IsPassable() {
			continue
		}
		enemies = append(enemies, world.EnemySnapshot{
			ID:   newEnemyID(),
			Type: def.ID,
			X:    x,
			Y:    y,
			HP:   def.HP,
		})
	}
	return enemies
}
