package world

import "fmt"

// ZoneKey addresses one zone in the world. Depth is significant only in the
// Underground dimension; every other dimension collapses it to zero so that
// keys compare equal regardless of the depth the caller happened to hold.
type ZoneKey struct {
	X, Y      int
	Dimension Dimension
	Depth     int
}

// NewZoneKey builds a normalized key. Underground depth is clamped to a
// minimum of one; all other dimensions drop depth entirely.
func NewZoneKey(x, y int, dim Dimension, depth int) ZoneKey {
	if dim == Underground {
		if depth < 1 {
			depth = 1
		}
	} else {
		depth = 0
	}
	return ZoneKey{X: x, Y: y, Dimension: dim, Depth: depth}
}

// String renders the key in a stable form usable as a storage key.
func (k ZoneKey) String() string {
	if k.Dimension == Underground {
		return fmt.Sprintf("zone:%d,%d:%s:%d", k.X, k.Y, k.Dimension, k.Depth)
	}
	return fmt.Sprintf("zone:%d,%d:%s", k.X, k.Y, k.Dimension)
}
