// Package world defines the coordinate model, tiles, and zone snapshots.
package world

// TileKind discriminates the tile variant.
type TileKind int

const (
	// TileFloor is plain walkable ground.
	TileFloor TileKind = iota
	// TileWall is impassable.
	TileWall
	// TileWater is impassable open water.
	TileWater
	// TilePort is an interactive tile that starts a transition when activated.
	TilePort
	// TileHole is a natural opening leading underground.
	TileHole
	// TileHazard is the permanent open pit left behind by a sprung pitfall.
	TileHazard
	// TileCistern is a well shaft; the tile directly above it acts as a port
	// down into the underground.
	TileCistern
	// TileExit is a forced-walkable landing cell on a zone edge.
	TileExit
)

// String returns the tile kind name.
func (k TileKind) String() string {
	switch k {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileWater:
		return "water"
	case TilePort:
		return "port"
	case TileHole:
		return "hole"
	case TileHazard:
		return "hazard"
	case TileCistern:
		return "cistern"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}

// PortKind distinguishes what a port tile does when activated.
type PortKind int

const (
	// PortPlain is a generic door or opening with no recorded destination kind.
	PortPlain PortKind = iota
	// PortStairDown descends one underground level.
	PortStairDown
	// PortStairUp ascends one underground level, or surfaces from level one.
	PortStairUp
	// PortInterior marks the entry spot inside an interior zone.
	PortInterior
)

// String returns the port kind name.
func (k PortKind) String() string {
	switch k {
	case PortPlain:
		return "plain"
	case PortStairDown:
		return "stairdown"
	case PortStairUp:
		return "stairup"
	case PortInterior:
		return "interior"
	default:
		return "unknown"
	}
}

// FoodKind identifies a consumable asset placed on a tile.
// Zero means the tile carries no consumable.
type FoodKind int

// Tile is a tagged variant: Kind selects the case, the remaining fields carry
// case-specific metadata. Port is meaningful only when Kind is TilePort; Food
// and Uses only when Food is nonzero.
type Tile struct {
	Kind TileKind `json:"kind"`
	Port PortKind `json:"port,omitempty"`
	Food FoodKind `json:"food,omitempty"`
	Uses int      `json:"uses,omitempty"`
}

// Floor returns a plain floor tile.
func Floor() Tile {
	return Tile{Kind: TileFloor}
}

// Port returns a port tile of the given kind.
func Port(kind PortKind) Tile {
	return Tile{Kind: TilePort, Port: kind}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	switch t.Kind {
	case TileWall, TileWater, TileHazard:
		return false
	default:
		return true
	}
}

// IsPort returns true if activating the tile starts a transition.
func (t Tile) IsPort() bool {
	return t.Kind == TilePort
}

// IsKeyedPort returns true for a port carrying a specific recorded kind.
// A keyed port's kind is the only record of where the port leads, so it is
// never overwritten by a plain port.
func (t Tile) IsKeyedPort() bool {
	return t.Kind == TilePort && t.Port != PortPlain
}
