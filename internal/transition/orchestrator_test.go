package transition

import (
	"context"
	"testing"

	"github.com/samdwyer/wayfarer/internal/entity"
	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/world"
	"github.com/samdwyer/wayfarer/internal/zone"
)

// stubGenerator returns a canned snapshot and records its call count.
type stubGenerator struct {
	snap  *world.ZoneSnapshot
	calls int
}

func (g *stubGenerator) Generate(_ context.Context, _, _ int, _ world.Dimension, _ int, _ Connections, _ []gamedata.FoodDef, _ Kind) *world.ZoneSnapshot {
	g.calls++
	if g.snap == nil {
		return nil
	}
	return g.snap.Clone()
}

// stubBoards serves one hand-authored zone.
type stubBoards struct {
	x, y int
	dim  world.Dimension
	snap *world.ZoneSnapshot
}

func (b *stubBoards) HasBoard(x, y int, dim world.Dimension) bool {
	return x == b.x && y == b.y && dim == b.dim
}

func (b *stubBoards) LoadSnapshot(x, y int, dim world.Dimension) *world.ZoneSnapshot {
	if !b.HasBoard(x, y, dim) {
		return nil
	}
	return b.snap.Clone()
}

func newOrchestrator(repo *zone.Repository, gen Generator, boards BoardSource, defeated *entity.DefeatedRegistry) *Orchestrator {
	return NewOrchestrator(repo, gen, boards, Connections{}, nil, nil, defeated)
}

func TestResolveGeneratesOnMissAndCachesAfter(t *testing.T) {
	repo := zone.NewRepository()
	gen := &stubGenerator{snap: floorSnapshot(8, 8)}
	o := newOrchestrator(repo, gen, nil, entity.NewDefeatedRegistry())
	key := world.NewZoneKey(2, 3, world.Surface, 0)

	live, _ := o.Resolve(context.Background(), key, Context{})
	if live == nil || len(live.Grid) != 8 {
		t.Fatalf("First resolve returned %v", live)
	}
	if gen.calls != 1 {
		t.Fatalf("Generator calls = %d, want 1", gen.calls)
	}

	o.Resolve(context.Background(), key, Context{})
	if gen.calls != 1 {
		t.Errorf("Generator called again on a cache hit: %d calls", gen.calls)
	}
}

func TestResolveReturnsDetachedCopy(t *testing.T) {
	repo := zone.NewRepository()
	o := newOrchestrator(repo, &stubGenerator{snap: floorSnapshot(8, 8)}, nil, entity.NewDefeatedRegistry())
	key := world.NewZoneKey(0, 0, world.Surface, 0)

	live, _ := o.Resolve(context.Background(), key, Context{})
	live.Grid.Set(1, 1, world.Tile{Kind: world.TileWall})

	if repo.Get(key).Grid.At(1, 1).Kind == world.TileWall {
		t.Error("Mutating the live grid altered the stored snapshot")
	}
}

func TestResolveNilGeneratorFallsBack(t *testing.T) {
	repo := zone.NewRepository()
	o := newOrchestrator(repo, nil, nil, entity.NewDefeatedRegistry())
	key := world.NewZoneKey(5, 5, world.Underground, 2)

	live, _ := o.Resolve(context.Background(), key, Context{From: KindStairDown, X: 3, Y: 3})
	if live == nil {
		t.Fatal("Resolve returned nil with no generator")
	}
	if live.Grid.Width() != world.DefaultZoneWidth || live.Grid.Height() != world.DefaultZoneHeight {
		t.Errorf("Fallback grid is %dx%d, want %dx%d",
			live.Grid.Width(), live.Grid.Height(), world.DefaultZoneWidth, world.DefaultZoneHeight)
	}
	if !live.Grid.At(3, 3).IsPassable() {
		t.Error("Fallback zone landing tile is not walkable")
	}
}

func TestResolveBoardsTakePrecedence(t *testing.T) {
	repo := zone.NewRepository()
	board := floorSnapshot(8, 8)
	board.Grid.Set(0, 0, world.Tile{Kind: world.TileWater})
	gen := &stubGenerator{snap: floorSnapshot(8, 8)}
	boards := &stubBoards{x: 1, y: 1, dim: world.Surface, snap: board}
	o := newOrchestrator(repo, gen, boards, entity.NewDefeatedRegistry())

	live, _ := o.Resolve(context.Background(), world.NewZoneKey(1, 1, world.Surface, 0), Context{})
	if live.Grid.At(0, 0).Kind != world.TileWater {
		t.Error("Hand-authored board was not used")
	}
	if gen.calls != 0 {
		t.Errorf("Generator called despite a board existing: %d calls", gen.calls)
	}

	// A zone without a board still goes through the generator.
	o.Resolve(context.Background(), world.NewZoneKey(4, 4, world.Surface, 0), Context{})
	if gen.calls != 1 {
		t.Errorf("Generator calls = %d, want 1 for the boardless zone", gen.calls)
	}
}

func TestResolveStampsReturnLinks(t *testing.T) {
	cases := []struct {
		name         string
		key          world.ZoneKey
		tc           Context
		wantSurface  bool
		wantInterior bool
	}{
		{
			name:        "surface door into interior",
			key:         world.NewZoneKey(0, 0, world.Interior, 0),
			tc:          Context{From: KindInteriorDoor, X: 4, Y: 5},
			wantSurface: true,
		},
		{
			name:        "hole into underground",
			key:         world.NewZoneKey(0, 0, world.Underground, 1),
			tc:          Context{From: KindHole, X: 4, Y: 5},
			wantSurface: true,
		},
		{
			name:         "interior stairs into underground",
			key:          world.NewZoneKey(0, 0, world.Underground, 1),
			tc:           Context{From: KindStairDown, X: 4, Y: 5, FromInterior: true},
			wantInterior: true,
		},
		{
			name: "deeper descent records nothing",
			key:  world.NewZoneKey(0, 0, world.Underground, 3),
			tc:   Context{From: KindStairUp, X: 4, Y: 5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := zone.NewRepository()
			o := newOrchestrator(repo, &stubGenerator{snap: floorSnapshot(8, 8)}, nil, entity.NewDefeatedRegistry())
			o.Resolve(context.Background(), tc.key, tc.tc)

			stored := repo.Get(tc.key)
			if got := stored.ReturnToSurface != nil; got != tc.wantSurface {
				t.Errorf("ReturnToSurface set = %v, want %v", got, tc.wantSurface)
			}
			if got := stored.ReturnToInterior != nil; got != tc.wantInterior {
				t.Errorf("ReturnToInterior set = %v, want %v", got, tc.wantInterior)
			}
			if tc.wantSurface && *stored.ReturnToSurface != (world.Point{X: 4, Y: 5}) {
				t.Errorf("ReturnToSurface = %v, want (4,5)", *stored.ReturnToSurface)
			}
		})
	}
}

func TestResolveLinksStampedOnceOnly(t *testing.T) {
	repo := zone.NewRepository()
	o := newOrchestrator(repo, &stubGenerator{snap: floorSnapshot(8, 8)}, nil, entity.NewDefeatedRegistry())
	key := world.NewZoneKey(0, 0, world.Underground, 1)

	o.Resolve(context.Background(), key, Context{From: KindHole, X: 4, Y: 5})
	o.Resolve(context.Background(), key, Context{From: KindHole, X: 9, Y: 9})

	if link := repo.Get(key).ReturnToSurface; link == nil || *link != (world.Point{X: 4, Y: 5}) {
		t.Errorf("ReturnToSurface = %v, want the original (4,5)", link)
	}
}

func TestResolvePatchesCachedZones(t *testing.T) {
	repo := zone.NewRepository()
	key := world.NewZoneKey(0, 0, world.Underground, 1)
	repo.Put(key, floorSnapshot(8, 8))

	o := newOrchestrator(repo, nil, nil, entity.NewDefeatedRegistry())
	live, _ := o.Resolve(context.Background(), key, Context{From: KindStairDown, X: 2, Y: 2})

	if tile := live.Grid.At(2, 2); tile.Port != world.PortStairUp {
		t.Errorf("Cached zone landing tile = %v, want stairup port", tile)
	}
	// The stored copy carries the patch too, so a later write-back keeps it.
	if tile := repo.Get(key).Grid.At(2, 2); tile.Port != world.PortStairUp {
		t.Errorf("Stored snapshot missing the patch: %v", tile)
	}
}

func TestResolveFiltersDefeatedEnemies(t *testing.T) {
	repo := zone.NewRepository()
	key := world.NewZoneKey(0, 0, world.Surface, 0)

	snap := floorSnapshot(8, 8)
	snap.Enemies = []world.EnemySnapshot{
		{ID: "e-1", Type: "slime", X: 1, Y: 1, HP: 4},
		{ID: "e-2", Type: "bat", X: 2, Y: 2, HP: 3},
	}
	repo.Put(key, snap)

	defeated := entity.NewDefeatedRegistry()
	defeated.Record("e-1")

	o := newOrchestrator(repo, nil, nil, defeated)
	_, enemies := o.Resolve(context.Background(), key, Context{})

	if len(enemies) != 1 {
		t.Fatalf("Enemy count = %d, want 1", len(enemies))
	}
	if enemies[0].ID != "e-2" {
		t.Errorf("Survivor id = %q, want e-2", enemies[0].ID)
	}
}

func TestResolveRepairsMissingSurfaceDecor(t *testing.T) {
	repo := zone.NewRepository()
	key := world.NewZoneKey(0, 0, world.Surface, 0)
	repo.Put(key, floorSnapshot(8, 8))

	o := newOrchestrator(repo, nil, nil, entity.NewDefeatedRegistry())
	live, _ := o.Resolve(context.Background(), key, Context{})

	if live.Decor.Empty() {
		t.Error("Surface zone decor not backfilled on cache hit")
	}
	if len(live.Decor.Terrain) != 8 || len(live.Decor.Terrain[0]) != 8 {
		t.Errorf("Backfilled terrain layer is %dx%d, want 8x8",
			len(live.Decor.Terrain), len(live.Decor.Terrain[0]))
	}
}
