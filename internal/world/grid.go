package world

const (
	// DefaultZoneWidth and DefaultZoneHeight size every zone grid, including
	// the synthesized fallback when generation fails.
	DefaultZoneWidth  = 24
	DefaultZoneHeight = 16
)

// Grid is a rectangular tile matrix indexed [y][x].
type Grid [][]Tile

// NewGrid creates a grid of the given size with every cell set to fill.
func NewGrid(width, height int, fill Tile) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]Tile, width)
		for x := range g[y] {
			g[y][x] = fill
		}
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// InBounds returns true if (x, y) addresses a cell of the grid.
func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y])
}

// At returns the tile at (x, y). Out-of-bounds reads return a wall so that
// callers never walk off the grid.
func (g Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Tile{Kind: TileWall}
	}
	return g[y][x]
}

// Set writes the tile at (x, y). Out-of-bounds writes are dropped and
// reported via the return value.
func (g Grid) Set(x, y int, t Tile) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g[y][x] = t
	return true
}

// Clone returns a deep copy of the grid. The live grid is mutated during
// play, so snapshots must never share rows with it.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y := range g {
		out[y] = make([]Tile, len(g[y]))
		copy(out[y], g[y])
	}
	return out
}

// ForcePort ensures a port of the given kind exists at (x, y).
// A keyed port already present is left untouched unless it carries the same
// kind; its recorded kind may be the only link back to another zone.
// Returns the tile now occupying the cell.
func (g Grid) ForcePort(x, y int, kind PortKind) Tile {
	if !g.InBounds(x, y) {
		return Tile{Kind: TileWall}
	}
	cur := g[y][x]
	if cur.IsKeyedPort() && cur.Port != kind {
		return cur
	}
	if cur.IsPort() && kind == PortPlain {
		// Plain never downgrades an existing port.
		return cur
	}
	t := Port(kind)
	g[y][x] = t
	return t
}

// ForceWalkable clears any obstruction at (x, y) so an arriving player is
// never trapped. Ports and other passable tiles are kept as they are.
func (g Grid) ForceWalkable(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	if g[y][x].IsPassable() {
		return
	}
	g[y][x] = Tile{Kind: TileExit}
}

// FindPort scans the grid in row order for a port of the given kind and
// returns its coordinates. With PortPlain it matches any port at all.
func (g Grid) FindPort(kind PortKind) (Point, bool) {
	for y := range g {
		for x := range g[y] {
			t := g[y][x]
			if !t.IsPort() {
				continue
			}
			if kind == PortPlain || t.Port == kind {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}
