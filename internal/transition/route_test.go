package transition

import (
	"testing"

	"github.com/samdwyer/wayfarer/internal/world"
)

func TestPortRoute(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		from  world.Dimension
		depth int
		want  Route
	}{
		{
			name: "hole goes to depth one",
			kind: KindHole, from: world.Surface, depth: 0,
			want: Route{Dimension: world.Underground, Depth: 1, Emergence: EmergeStairUpIfHazard},
		},
		{
			name: "pitfall goes to depth one from anywhere",
			kind: KindPitfall, from: world.Interior, depth: 0,
			want: Route{Dimension: world.Underground, Depth: 1, Emergence: EmergeStairUpIfHazard},
		},
		{
			name: "cistern goes to depth one",
			kind: KindCistern, from: world.Surface, depth: 0,
			want: Route{Dimension: world.Underground, Depth: 1, Emergence: EmergeCisternBelow},
		},
		{
			name: "stairdown from surface",
			kind: KindStairDown, from: world.Surface, depth: 0,
			want: Route{Dimension: world.Underground, Depth: 1, Emergence: EmergeStairUp},
		},
		{
			name: "stairdown deepens",
			kind: KindStairDown, from: world.Underground, depth: 3,
			want: Route{Dimension: world.Underground, Depth: 4, Emergence: EmergeStairUp},
		},
		{
			name: "stairup within caves",
			kind: KindStairUp, from: world.Underground, depth: 3,
			want: Route{Dimension: world.Underground, Depth: 2, Emergence: EmergeStairDown},
		},
		{
			name: "stairup surfaces from depth one",
			kind: KindStairUp, from: world.Underground, depth: 1,
			want: Route{Dimension: world.Surface, Depth: 0, Emergence: EmergeStairDown},
		},
		{
			name: "stairup on the surface stays on the surface",
			kind: KindStairUp, from: world.Surface, depth: 0,
			want: Route{Dimension: world.Surface, Depth: 0, Emergence: EmergeStairDown},
		},
		{
			name: "door enters interior",
			kind: KindInteriorDoor, from: world.Surface, depth: 0,
			want: Route{Dimension: world.Interior, Depth: 0, Emergence: EmergeNone},
		},
		{
			name: "door leaves interior",
			kind: KindInteriorDoor, from: world.Interior, depth: 0,
			want: Route{Dimension: world.Surface, Depth: 0, Emergence: EmergeNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PortRoute(tt.kind, tt.from, tt.depth)
			if got != tt.want {
				t.Errorf("PortRoute(%v, %v, %d) = %+v, want %+v", tt.kind, tt.from, tt.depth, got, tt.want)
			}
		})
	}
}

func TestPortRouteNeverNegativeDepth(t *testing.T) {
	for depth := 0; depth <= 5; depth++ {
		r := PortRoute(KindStairUp, world.Underground, depth)
		if r.Dimension == world.Underground && r.Depth < 1 {
			t.Errorf("Stairup from depth %d produced underground depth %d", depth, r.Depth)
		}
	}
}
