// Package board converts hand-authored boards into zone snapshots.
package board

import (
	"fmt"

	"github.com/samdwyer/wayfarer/data"
	"github.com/samdwyer/wayfarer/internal/world"
)

// Loader indexes the embedded hand-authored boards by zone coordinates and
// dimension. Hand-authored boards take precedence over procedural generation.
type Loader struct {
	boards map[boardKey]data.RawBoard
}

type boardKey struct {
	x, y      int
	dimension string
}

// NewLoader builds a loader over the given raw boards.
func NewLoader(boards []data.RawBoard) *Loader {
	index := make(map[boardKey]data.RawBoard, len(boards))
	for _, b := range boards {
		index[boardKey{x: b.X, y: b.Y, dimension: b.Dimension}] = b
	}
	return &Loader{boards: index}
}

// LoadEmbedded creates a loader over the boards shipped in the data package.
func LoadEmbedded() (*Loader, error) {
	boards, err := data.LoadBoards()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded boards: %w", err)
	}
	return NewLoader(boards), nil
}

// HasBoard returns true if a hand-authored board exists for the zone.
func (l *Loader) HasBoard(x, y int, dim world.Dimension) bool {
	_, ok := l.boards[boardKey{x: x, y: y, dimension: dim.String()}]
	return ok
}

// LoadBoard returns the raw board for the zone, if one exists.
func (l *Loader) LoadBoard(x, y int, dim world.Dimension) (data.RawBoard, bool) {
	b, ok := l.boards[boardKey{x: x, y: y, dimension: dim.String()}]
	return b, ok
}

// LoadSnapshot loads and converts the board for the zone, or returns nil if
// no hand-authored board covers it.
func (l *Loader) LoadSnapshot(x, y int, dim world.Dimension) *world.ZoneSnapshot {
	raw, ok := l.LoadBoard(x, y, dim)
	if !ok {
		return nil
	}
	return ConvertToGrid(raw)
}

// ConvertToGrid turns a raw board into a partial zone snapshot. Unknown or
// unmapped legend characters fall back to floor so a typo in board data can
// never produce an untraversable zone.
func ConvertToGrid(raw data.RawBoard) *world.ZoneSnapshot {
	height := len(raw.Rows)
	width := 0
	for _, row := range raw.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := world.NewGrid(width, height, world.Floor())
	for y, row := range raw.Rows {
		for x, ch := range row {
			name := raw.Legend[string(ch)]
			grid.Set(x, y, tileForName(name))
		}
	}

	snap := &world.ZoneSnapshot{Grid: grid}
	if raw.PlayerSpawn != nil {
		snap.PlayerSpawn = &world.Point{X: raw.PlayerSpawn.X, Y: raw.PlayerSpawn.Y}
	}
	return snap
}

// tileForName maps a legend tile name to a concrete tile.
func tileForName(name string) world.Tile {
	switch name {
	case "wall":
		return world.Tile{Kind: world.TileWall}
	case "water":
		return world.Tile{Kind: world.TileWater}
	case "hole":
		return world.Tile{Kind: world.TileHole}
	case "hazard":
		return world.Tile{Kind: world.TileHazard}
	case "cistern":
		return world.Tile{Kind: world.TileCistern}
	case "door":
		return world.Port(world.PortPlain)
	case "interior":
		return world.Port(world.PortInterior)
	case "stairdown":
		return world.Port(world.PortStairDown)
	case "stairup":
		return world.Port(world.PortStairUp)
	default:
		return world.Floor()
	}
}
