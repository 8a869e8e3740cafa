package transition

import (
	"testing"

	"github.com/samdwyer/wayfarer/internal/world"
	"github.com/samdwyer/wayfarer/internal/zone"
)

func TestPlaceEdgeMirrorsExit(t *testing.T) {
	p := NewPlacer(zone.NewRepository())
	grid := world.NewGrid(24, 16, world.Floor())

	cases := []struct {
		name         string
		side         Side
		exitX, exitY int
		want         world.Point
	}{
		{"north exit lands on bottom row", North, 7, 0, world.Point{X: 7, Y: 15}},
		{"south exit lands on top row", South, 7, 15, world.Point{X: 7, Y: 0}},
		{"east exit lands on left column", East, 23, 9, world.Point{X: 0, Y: 9}},
		{"west exit lands on right column", West, 0, 9, world.Point{X: 23, Y: 9}},
		{"out-of-range coordinate is clamped", North, 99, 0, world.Point{X: 23, Y: 15}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.PlaceEdge(grid, tc.side, tc.exitX, tc.exitY)
			if got != tc.want {
				t.Errorf("PlaceEdge(%v, %d, %d) = %v, want %v", tc.side, tc.exitX, tc.exitY, got, tc.want)
			}
		})
	}
}

func TestPlaceEdgeClearsObstruction(t *testing.T) {
	p := NewPlacer(zone.NewRepository())
	grid := world.NewGrid(10, 10, world.Floor())
	grid.Set(4, 9, world.Tile{Kind: world.TileWall})

	landing := p.PlaceEdge(grid, North, 4, 0)
	if landing != (world.Point{X: 4, Y: 9}) {
		t.Fatalf("Landing = %v, want (4,9)", landing)
	}
	if !grid.At(4, 9).IsPassable() {
		t.Errorf("Landing tile still blocked: %v", grid.At(4, 9))
	}
}

func TestPlacePortPitfall(t *testing.T) {
	p := NewPlacer(zone.NewRepository())

	// With a recorded spawn the fall lands there.
	dest := floorSnapshot(10, 10)
	dest.PlayerSpawn = &world.Point{X: 2, Y: 2}
	got := p.PlacePort(dest, world.Underground, world.Surface, world.ZoneKey{}, Context{From: KindPitfall, X: 8, Y: 8})
	if got != (world.Point{X: 2, Y: 2}) {
		t.Errorf("Pitfall landing = %v, want recorded spawn (2,2)", got)
	}

	// Without one the fall coordinates become a stairup port.
	dest = floorSnapshot(10, 10)
	got = p.PlacePort(dest, world.Underground, world.Surface, world.ZoneKey{}, Context{From: KindPitfall, X: 8, Y: 8})
	if got != (world.Point{X: 8, Y: 8}) {
		t.Errorf("Pitfall landing = %v, want fall coordinates (8,8)", got)
	}
	if tile := dest.Grid.At(8, 8); tile.Port != world.PortStairUp {
		t.Errorf("Fall landing tile = %v, want stairup port", tile)
	}
}

func TestPlacePortInteriorEntry(t *testing.T) {
	p := NewPlacer(zone.NewRepository())
	ctx := Context{From: KindInteriorDoor, X: 3, Y: 3}

	t.Run("door coordinates already a port", func(t *testing.T) {
		dest := floorSnapshot(10, 10)
		dest.Grid.Set(3, 3, world.Port(world.PortInterior))
		got := p.PlacePort(dest, world.Interior, world.Surface, world.ZoneKey{}, ctx)
		if got != (world.Point{X: 3, Y: 3}) {
			t.Errorf("Landing = %v, want door coordinates (3,3)", got)
		}
	})

	t.Run("floor at door coordinates becomes the exit port", func(t *testing.T) {
		dest := floorSnapshot(10, 10)
		got := p.PlacePort(dest, world.Interior, world.Surface, world.ZoneKey{}, ctx)
		if got != (world.Point{X: 3, Y: 3}) {
			t.Errorf("Landing = %v, want (3,3)", got)
		}
		if !dest.Grid.At(3, 3).IsPort() {
			t.Error("Landing tile was not promoted to a port")
		}
	})

	t.Run("blocked coordinates fall back to spawn then scan", func(t *testing.T) {
		dest := floorSnapshot(10, 10)
		dest.Grid.Set(3, 3, world.Tile{Kind: world.TileWall})
		dest.PlayerSpawn = &world.Point{X: 5, Y: 6}
		got := p.PlacePort(dest, world.Interior, world.Surface, world.ZoneKey{}, ctx)
		if got != (world.Point{X: 5, Y: 6}) {
			t.Errorf("Landing = %v, want spawn (5,6)", got)
		}

		dest = floorSnapshot(10, 10)
		dest.Grid.Set(3, 3, world.Tile{Kind: world.TileWall})
		dest.Grid.Set(7, 2, world.Port(world.PortInterior))
		got = p.PlacePort(dest, world.Interior, world.Surface, world.ZoneKey{}, ctx)
		if got != (world.Point{X: 7, Y: 2}) {
			t.Errorf("Landing = %v, want scanned interior port (7,2)", got)
		}
	})

	t.Run("empty zone synthesizes a center port", func(t *testing.T) {
		dest := &world.ZoneSnapshot{Grid: world.NewGrid(10, 10, world.Tile{Kind: world.TileWall})}
		got := p.PlacePort(dest, world.Interior, world.Surface, world.ZoneKey{}, ctx)
		if got != (world.Point{X: 5, Y: 5}) {
			t.Errorf("Landing = %v, want center (5,5)", got)
		}
		if !dest.Grid.At(5, 5).IsPort() {
			t.Error("Fallback landing is not a port")
		}
	})
}

func TestPlacePortInteriorReturn(t *testing.T) {
	p := NewPlacer(zone.NewRepository())
	ctx := Context{From: KindStairUp, X: 4, Y: 4, ToInterior: true}

	dest := floorSnapshot(10, 10)
	dest.Grid.Set(6, 1, world.Port(world.PortStairDown))
	got := p.PlacePort(dest, world.Interior, world.Underground, world.ZoneKey{}, ctx)
	if got != (world.Point{X: 6, Y: 1}) {
		t.Errorf("Landing = %v, want the interior stairdown (6,1)", got)
	}

	dest = floorSnapshot(10, 10)
	got = p.PlacePort(dest, world.Interior, world.Underground, world.ZoneKey{}, ctx)
	if got != (world.Point{X: 4, Y: 4}) {
		t.Errorf("Landing = %v, want forced stairdown at (4,4)", got)
	}
	if tile := dest.Grid.At(4, 4); tile.Port != world.PortStairDown {
		t.Errorf("Forced landing tile = %v, want stairdown port", tile)
	}
}

func TestPlacePortSurfaceFromUnderground(t *testing.T) {
	repo := zone.NewRepository()
	p := NewPlacer(repo)
	srcKey := world.NewZoneKey(0, 0, world.Underground, 1)
	ctx := Context{From: KindStairUp, X: 9, Y: 9}

	src := floorSnapshot(10, 10)
	src.ReturnToSurface = &world.Point{X: 2, Y: 7}
	repo.Put(srcKey, src)

	dest := floorSnapshot(10, 10)
	got := p.PlacePort(dest, world.Surface, world.Underground, srcKey, ctx)
	if got != (world.Point{X: 2, Y: 7}) {
		t.Errorf("Landing = %v, want recorded surface link (2,7)", got)
	}
	if !dest.Grid.At(2, 7).IsPort() {
		t.Error("Surface landing tile is not a port")
	}

	// Without a recorded link the exit coordinates are used.
	dest = floorSnapshot(10, 10)
	got = p.PlacePort(dest, world.Surface, world.Underground, world.NewZoneKey(5, 5, world.Underground, 1), ctx)
	if got != (world.Point{X: 9, Y: 9}) {
		t.Errorf("Landing = %v, want exit coordinates (9,9)", got)
	}
}

func TestPlacePortSurfaceFromInterior(t *testing.T) {
	repo := zone.NewRepository()
	p := NewPlacer(repo)
	srcKey := world.NewZoneKey(1, 0, world.Interior, 0)
	ctx := Context{From: KindInteriorDoor, X: 3, Y: 8}

	t.Run("recorded surface link wins", func(t *testing.T) {
		src := floorSnapshot(10, 10)
		src.ReturnToSurface = &world.Point{X: 6, Y: 6}
		repo.Put(srcKey, src)

		dest := floorSnapshot(10, 10)
		got := p.PlacePort(dest, world.Surface, world.Interior, srcKey, ctx)
		if got != (world.Point{X: 6, Y: 6}) {
			t.Errorf("Landing = %v, want recorded link (6,6)", got)
		}
	})

	t.Run("without a link the exit port is reused", func(t *testing.T) {
		emptyKey := world.NewZoneKey(9, 9, world.Interior, 0)
		dest := floorSnapshot(10, 10)
		dest.Grid.Set(3, 8, world.Port(world.PortPlain))
		got := p.PlacePort(dest, world.Surface, world.Interior, emptyKey, ctx)
		if got != (world.Point{X: 3, Y: 8}) {
			t.Errorf("Landing = %v, want exit port (3,8)", got)
		}
	})

	t.Run("port scan before forcing one", func(t *testing.T) {
		emptyKey := world.NewZoneKey(9, 9, world.Interior, 0)
		dest := floorSnapshot(10, 10)
		dest.Grid.Set(1, 1, world.Port(world.PortPlain))
		got := p.PlacePort(dest, world.Surface, world.Interior, emptyKey, ctx)
		if got != (world.Point{X: 1, Y: 1}) {
			t.Errorf("Landing = %v, want scanned port (1,1)", got)
		}
	})
}

func TestPlaceTeleportCentersPlayer(t *testing.T) {
	p := NewPlacer(zone.NewRepository())
	grid := world.NewGrid(24, 16, world.Tile{Kind: world.TileWall})

	got := p.PlaceTeleport(grid)
	if got != (world.Point{X: 12, Y: 8}) {
		t.Errorf("Teleport landing = %v, want center (12,8)", got)
	}
	if !grid.At(12, 8).IsPassable() {
		t.Error("Teleport landing still blocked")
	}
}
