package entity

// Player is the traveling avatar. Its tile position is local to the active
// zone; which zone that is lives in the session's zone state.
type Player struct {
	X, Y int
}

// NewPlayer creates a player at the given tile position.
func NewPlayer(x, y int) *Player {
	return &Player{X: x, Y: y}
}

// MoveTo relocates the player inside the active zone.
func (p *Player) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the current tile coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}
