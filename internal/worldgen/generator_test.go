package worldgen

import (
	"context"
	"testing"

	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/transition"
	"github.com/samdwyer/wayfarer/internal/world"
)

func TestGenerateLayoutReproducibility(t *testing.T) {
	ctx := context.Background()
	g1 := New(12345, nil)
	g2 := New(12345, nil)

	s1 := g1.Generate(ctx, 3, 4, world.Underground, 2, nil, nil, transition.KindStairDown)
	s2 := g2.Generate(ctx, 3, 4, world.Underground, 2, nil, nil, transition.KindStairDown)

	if s1.Grid.Width() != s2.Grid.Width() || s1.Grid.Height() != s2.Grid.Height() {
		t.Fatalf("Grid sizes differ: %dx%d vs %dx%d",
			s1.Grid.Width(), s1.Grid.Height(), s2.Grid.Width(), s2.Grid.Height())
	}
	for y := 0; y < s1.Grid.Height(); y++ {
		for x := 0; x < s1.Grid.Width(); x++ {
			if s1.Grid.At(x, y) != s2.Grid.At(x, y) {
				t.Fatalf("Tile mismatch at (%d,%d): %v != %v", x, y, s1.Grid.At(x, y), s2.Grid.At(x, y))
			}
		}
	}
}

func TestGenerateDistinctZonesDiffer(t *testing.T) {
	ctx := context.Background()
	g := New(12345, nil)

	s1 := g.Generate(ctx, 0, 0, world.Underground, 1, nil, nil, transition.KindHole)
	s2 := g.Generate(ctx, 0, 1, world.Underground, 1, nil, nil, transition.KindHole)

	identical := true
	for y := 0; y < s1.Grid.Height() && identical; y++ {
		for x := 0; x < s1.Grid.Width(); x++ {
			if s1.Grid.At(x, y) != s2.Grid.At(x, y) {
				identical = false
				break
			}
		}
	}
	if identical {
		t.Error("Neighboring zones generated identical layouts")
	}
}

func TestGenerateUndergroundIsTraversable(t *testing.T) {
	g := New(7, nil)
	snap := g.Generate(context.Background(), 1, 1, world.Underground, 1, nil, nil, transition.KindStairDown)

	floors := 0
	for y := 0; y < snap.Grid.Height(); y++ {
		for x := 0; x < snap.Grid.Width(); x++ {
			if snap.Grid.At(x, y).IsPassable() {
				floors++
			}
		}
	}
	if floors == 0 {
		t.Fatal("Underground zone has no passable tiles")
	}
}

func TestGenerateSurfaceHasDecor(t *testing.T) {
	g := New(7, nil)
	snap := g.Generate(context.Background(), 0, 0, world.Surface, 0, nil, nil, transition.KindNone)
	if snap.Decor.Empty() {
		t.Error("Surface zone generated without decorative terrain")
	}
	if len(snap.Decor.Terrain) != snap.Grid.Height() {
		t.Errorf("Terrain layer height %d != grid height %d", len(snap.Decor.Terrain), snap.Grid.Height())
	}
}

func TestGenerateInteriorHasEntrySpot(t *testing.T) {
	g := New(99, nil)
	snap := g.Generate(context.Background(), 5, 5, world.Interior, 0, nil, nil, transition.KindInteriorDoor)
	if _, ok := snap.Grid.FindPort(world.PortInterior); !ok {
		t.Error("Interior zone generated without an entry-spot port")
	}
}

func TestGenerateSpawnsDimensionAppropriateEnemies(t *testing.T) {
	registry := gamedata.MustLoadEnemyRegistry()
	g := New(3, registry)

	// A few seeds' worth of zones; every roster entry must be legal underground
	for zx := 0; zx < 8; zx++ {
		snap := g.Generate(context.Background(), zx, 0, world.Underground, 1, nil, nil, transition.KindHole)
		for _, e := range snap.Enemies {
			def := registry.GetByID(e.Type)
			if def == nil {
				t.Fatalf("Unknown enemy type %q", e.Type)
			}
			if !def.SpawnsIn("underground") {
				t.Errorf("Enemy %q spawned underground but is limited to %v", e.Type, def.Dimensions)
			}
			if e.ID == "" {
				t.Error("Enemy spawned without an id")
			}
		}
	}
}

func TestGenerateScattersFood(t *testing.T) {
	foods := []gamedata.FoodDef{{ID: "berry", Kind: 1, Uses: 3}}
	g := New(11, nil)

	found := false
	for zx := 0; zx < 10 && !found; zx++ {
		snap := g.Generate(context.Background(), zx, 0, world.Surface, 0, nil, foods, transition.KindNone)
		for y := 0; y < snap.Grid.Height(); y++ {
			for x := 0; x < snap.Grid.Width(); x++ {
				if snap.Grid.At(x, y).Food == world.FoodKind(1) {
					found = true
				}
			}
		}
	}
	if !found {
		t.Error("No food placed across ten surface zones")
	}
}
