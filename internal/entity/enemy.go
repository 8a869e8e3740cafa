// Package entity provides live game entities: the player avatar and enemies.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/world"
)

// Enemy is a live enemy instance inside the active zone. Only the fields in
// world.EnemySnapshot survive a write-back; anything else is transient.
type Enemy struct {
	ID    string // stable across save/reload, assigned once at spawn
	Type  string // definition id (e.g. "slime")
	X, Y  int
	HP    int
	MaxHP int
}

// NewEnemy spawns a fresh enemy of the given definition at a position.
// The id is minted here and never changes for the life of the enemy.
func NewEnemy(def *gamedata.EnemyDef, x, y int) *Enemy {
	return &Enemy{
		ID:    uuid.NewString(),
		Type:  def.ID,
		X:     x,
		Y:     y,
		HP:    def.HP,
		MaxHP: def.HP,
	}
}

// FromSnapshot rehydrates a live enemy from its persisted form. MaxHP is
// looked up from the definition when available so healing caps correctly.
func FromSnapshot(s world.EnemySnapshot, reg *gamedata.EnemyRegistry) *Enemy {
	maxHP := s.HP
	if reg != nil {
		if def := reg.GetByID(s.Type); def != nil {
			maxHP = def.HP
		}
	}
	return &Enemy{
		ID:    s.ID,
		Type:  s.Type,
		X:     s.X,
		Y:     s.Y,
		HP:    s.HP,
		MaxHP: maxHP,
	}
}

// Snapshot returns the persisted form of the enemy.
func (e *Enemy) Snapshot() world.EnemySnapshot {
	return world.EnemySnapshot{
		ID:   e.ID,
		Type: e.Type,
		X:    e.X,
		Y:    e.Y,
		HP:   e.HP,
	}
}

// IsAlive returns true while the enemy has hit points left.
func (e *Enemy) IsAlive() bool {
	return e.HP > 0
}

// Position returns the enemy's current coordinates.
func (e *Enemy) Position() (int, int) {
	return e.X, e.Y
}
