package transition

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wayfarer/internal/entity"
	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/telemetry"
	"github.com/samdwyer/wayfarer/internal/world"
	"github.com/samdwyer/wayfarer/internal/zone"
)

// Connections is the sparse world connectivity graph handed to the generator.
// The transition core never reads it; connectivity between zones is re-derived
// lazily through emergence patching instead of stored as explicit edges.
type Connections map[world.ZoneKey][]world.ZoneKey

// Generator produces the content of a zone. Implementations are external
// collaborators; a nil result is tolerated and degrades to a synthesized
// walkable zone.
type Generator interface {
	Generate(ctx context.Context, zoneX, zoneY int, dim world.Dimension, depth int, conns Connections, assets []gamedata.FoodDef, hint Kind) *world.ZoneSnapshot
}

// BoardSource supplies hand-authored zones, which take precedence over the
// procedural generator.
type BoardSource interface {
	HasBoard(x, y int, dim world.Dimension) bool
	LoadSnapshot(x, y int, dim world.Dimension) *world.ZoneSnapshot
}

// Orchestrator retrieves or generates the destination zone of a transition,
// stamps return links, patches the emergence tile, and rehydrates the enemy
// roster.
type Orchestrator struct {
	repo     *zone.Repository
	gen      Generator
	boards   BoardSource // may be nil
	conns    Connections
	assets   []gamedata.FoodDef
	registry *gamedata.EnemyRegistry
	defeated *entity.DefeatedRegistry
}

// NewOrchestrator wires an orchestrator. boards may be nil when no
// hand-authored zones exist.
func NewOrchestrator(repo *zone.Repository, gen Generator, boards BoardSource, conns Connections, assets []gamedata.FoodDef, registry *gamedata.EnemyRegistry, defeated *entity.DefeatedRegistry) *Orchestrator {
	return &Orchestrator{
		repo:     repo,
		gen:      gen,
		boards:   boards,
		conns:    conns,
		assets:   assets,
		registry: registry,
		defeated: defeated,
	}
}

// Resolve returns a checked-out snapshot for the destination zone plus its
// live enemy roster. Failures never propagate: a generator that returns
// nothing yields an empty walkable zone, and patch steps out of bounds are
// skipped.
func (o *Orchestrator) Resolve(ctx context.Context, key world.ZoneKey, tc Context) (*world.ZoneSnapshot, []*entity.Enemy) {
	tracer := telemetry.Tracer("transition")
	ctx, span := tracer.Start(ctx, "zone.resolve")
	defer span.End()

	startTime := time.Now()
	cacheHit := o.repo.Has(key)

	if cacheHit {
		o.repairDecor(key)
	} else {
		snap := o.produce(ctx, key, tc)
		o.stampReturnLinks(snap, key, tc)
		o.repo.Put(key, snap)
	}

	// Patching runs on every resolve, hit or miss, against the stored
	// snapshot so the emergence tile survives later write-backs.
	PatchEmergence(o.repo.Get(key), tc)

	live := o.repo.Checkout(key)
	enemies := o.rehydrate(live)

	span.SetAttributes(
		attribute.Int("zone.x", key.X),
		attribute.Int("zone.y", key.Y),
		attribute.String("zone.dimension", key.Dimension.String()),
		attribute.Int("zone.depth", key.Depth),
		attribute.Bool("zone.cache_hit", cacheHit),
		attribute.String("transition.from", tc.From.String()),
		attribute.Int("zone.enemies", len(enemies)),
		attribute.Int64("zone.resolve_ms", time.Since(startTime).Milliseconds()),
	)

	return live, enemies
}

// produce creates a snapshot for a zone seen for the first time: a
// hand-authored board if one exists, otherwise the external generator,
// otherwise an empty walkable fallback.
func (o *Orchestrator) produce(ctx context.Context, key world.ZoneKey, tc Context) *world.ZoneSnapshot {
	if o.boards != nil && o.boards.HasBoard(key.X, key.Y, key.Dimension) {
		if snap := o.boards.LoadSnapshot(key.X, key.Y, key.Dimension); snap != nil {
			return snap
		}
	}
	if o.gen != nil {
		if snap := o.gen.Generate(ctx, key.X, key.Y, key.Dimension, key.Depth, o.conns, o.assets, tc.From); snap != nil && len(snap.Grid) > 0 {
			return snap
		}
	}
	// The generator gave nothing usable. Degrade to a walkable empty zone
	// rather than block the player.
	return &world.ZoneSnapshot{
		Grid: world.NewGrid(world.DefaultZoneWidth, world.DefaultZoneHeight, world.Floor()),
	}
}

// stampReturnLinks records, on a freshly produced snapshot, the coordinates
// the incoming transition departed from, so the eventual trip back out lands
// at the matching spot. Stamped once at creation, never rewritten.
func (o *Orchestrator) stampReturnLinks(snap *world.ZoneSnapshot, key world.ZoneKey, tc Context) {
	p := &world.Point{X: tc.X, Y: tc.Y}

	switch key.Dimension {
	case world.Interior:
		if tc.From == KindInteriorDoor && !tc.FromInterior {
			snap.ReturnToSurface = p
		}
	case world.Underground:
		switch tc.From {
		case KindHole, KindPitfall, KindCistern, KindStairDown:
			if tc.FromInterior {
				snap.ReturnToInterior = p
			} else {
				snap.ReturnToSurface = p
			}
		}
	}
}

// repairDecor backfills decorative layers on cached surface snapshots
// persisted before decor existed, and re-stores the repaired snapshot.
func (o *Orchestrator) repairDecor(key world.ZoneKey) {
	if key.Dimension != world.Surface {
		return
	}
	snap := o.repo.Get(key)
	if snap == nil || !snap.Decor.Empty() {
		return
	}
	terrain := make([][]uint8, snap.Grid.Height())
	for y := range terrain {
		terrain[y] = make([]uint8, snap.Grid.Width())
	}
	snap.Decor.Terrain = terrain
	o.repo.Put(key, snap)
}

// rehydrate replaces stored enemy entries with live instances, dropping every
// id recorded as permanently defeated.
func (o *Orchestrator) rehydrate(snap *world.ZoneSnapshot) []*entity.Enemy {
	if snap == nil {
		return nil
	}
	enemies := make([]*entity.Enemy, 0, len(snap.Enemies))
	for _, s := range snap.Enemies {
		if o.defeated != nil && o.defeated.Contains(s.ID) {
			continue
		}
		enemies = append(enemies, entity.FromSnapshot(s, o.registry))
	}
	return enemies
}
