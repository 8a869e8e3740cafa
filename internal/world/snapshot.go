package world

// EnemySnapshot is the persisted form of an enemy: position, type, health,
// and a stable id. Transient animation or AI state is never snapshotted.
type EnemySnapshot struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	HP   int    `json:"hp"`
}

// Decor is presentation metadata attached by the generator: texture indices
// and rotations per cell. The transition core preserves it across write-backs
// but never interprets it.
type Decor struct {
	Terrain  [][]uint8 `json:"terrain,omitempty"`
	Overlay  [][]uint8 `json:"overlay,omitempty"`
	Rotation [][]uint8 `json:"rotation,omitempty"`
}

// Empty returns true if no decorative layers are present.
func (d Decor) Empty() bool {
	return d.Terrain == nil && d.Overlay == nil && d.Rotation == nil
}

// ZoneSnapshot is the stored form of one zone. Once stored it is owned by the
// repository; gameplay mutates a checked-out copy that is written back before
// another zone becomes active.
type ZoneSnapshot struct {
	Grid    Grid            `json:"grid"`
	Enemies []EnemySnapshot `json:"enemies,omitempty"`

	// PlayerSpawn is consulted only the very first time the zone is entered
	// without a transition context of its own.
	PlayerSpawn *Point `json:"playerSpawn,omitempty"`

	// ReturnToSurface and ReturnToInterior are stamped once, when the zone is
	// generated as the consequence of a specific incoming transition, and
	// close the loop on the way back out.
	ReturnToSurface  *Point `json:"returnToSurface,omitempty"`
	ReturnToInterior *Point `json:"returnToInterior,omitempty"`

	Decor Decor `json:"decor,omitempty"`
}

// Clone returns a deep copy. Grid rows, enemy slices, and return links are
// all duplicated; decorative layers are shared since the core never writes
// to them.
func (s *ZoneSnapshot) Clone() *ZoneSnapshot {
	if s == nil {
		return nil
	}
	out := &ZoneSnapshot{
		Grid:  s.Grid.Clone(),
		Decor: s.Decor,
	}
	if len(s.Enemies) > 0 {
		out.Enemies = make([]EnemySnapshot, len(s.Enemies))
		copy(out.Enemies, s.Enemies)
	}
	out.PlayerSpawn = clonePoint(s.PlayerSpawn)
	out.ReturnToSurface = clonePoint(s.ReturnToSurface)
	out.ReturnToInterior = clonePoint(s.ReturnToInterior)
	return out
}

func clonePoint(p *Point) *Point {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
