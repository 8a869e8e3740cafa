package worldgen

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/wayfarer/internal/world"
)

const (
	minRoomSize  = 3
	maxRoomSize  = 7
	maxRoomTries = 24
)

// room is a rectangular carved area in an underground zone.
type room struct {
	x, y          int
	width, height int
}

// center returns the middle cell of the room.
func (r room) center() (int, int) {
	return r.x + r.width/2, r.y + r.height/2
}

// intersects returns true if the rooms overlap, including a one-cell border.
func (r room) intersects(other room) bool {
	return r.x-1 < other.x+other.width &&
		r.x+r.width+1 > other.x &&
		r.y-1 < other.y+other.height &&
		r.y+r.height+1 > other.y
}

// carveRooms places random non-overlapping rooms and carves them to floor.
func carveRooms(grid world.Grid, rng *rand.Rand) []room {
	var rooms []room
	for i := 0; i < maxRoomTries; i++ {
		w := minRoomSize + rng.Intn(maxRoomSize-minRoomSize+1)
		h := minRoomSize + rng.Intn(maxRoomSize-minRoomSize+1)
		if w >= grid.Width()-2 || h >= grid.Height()-2 {
			continue
		}
		r := room{
			x:      1 + rng.Intn(grid.Width()-w-1),
			y:      1 + rng.Intn(grid.Height()-h-1),
			width:  w,
			height: h,
		}

		overlaps := false
		for _, other := range rooms {
			if r.intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		for y := r.y; y < r.y+r.height; y++ {
			for x := r.x; x < r.x+r.width; x++ {
				grid.Set(x, y, world.Floor())
			}
		}
		rooms = append(rooms, r)
	}
	return rooms
}

// carveCorridor connects two rooms with an L-shaped tunnel, randomly going
// horizontal-then-vertical or the reverse.
func carveCorridor(grid world.Grid, rng *rand.Rand, a, b room) {
	x1, y1 := a.center()
	x2, y2 := b.center()

	if rng.Intn(2) == 0 {
		carveHorizontal(grid, x1, x2, y1)
		carveVertical(grid, y1, y2, x2)
	} else {
		carveVertical(grid, y1, y2, x1)
		carveHorizontal(grid, x1, x2, y2)
	}
}

func carveHorizontal(grid world.Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if grid.At(x, y).Kind == world.TileWall {
			grid.Set(x, y, world.Floor())
		}
	}
}

func carveVertical(grid world.Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if grid.At(x, y).Kind == world.TileWall {
			grid.Set(x, y, world.Floor())
		}
	}
}

// newEnemyID mints a stable identity for a freshly generated enemy.
func newEnemyID() string {
	return uuid.NewString()
}
