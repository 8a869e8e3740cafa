package world

// Dimension is one layer of the world sharing the same zone coordinate space.
type Dimension int

const (
	// Surface is the open overworld layer.
	Surface Dimension = iota
	// Interior is the inside-a-building layer.
	Interior
	// Underground is the cave layer; the only dimension where depth matters.
	Underground
	// Custom is reserved for hand-authored special areas.
	Custom
)

// String returns the dimension name.
func (d Dimension) String() string {
	switch d {
	case Surface:
		return "surface"
	case Interior:
		return "interior"
	case Underground:
		return "underground"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// Point is a tile coordinate within a zone grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}
