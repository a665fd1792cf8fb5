package nav

import (
	"testing"

	"github.com/automoto/labhunt/dungeon"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/tilemap"
)

func buildGrid(t *testing.T, g *roomgraph.Graph, open ...[2]int) *Grid {
	t.Helper()
	world, err := dungeon.Build(g, tilemap.DefaultMapping(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return NewGrid(world, g, open...)
}

func TestFindPathThroughDoor(t *testing.T) {
	g := roomgraph.Lattice(2, 1, 7)
	grid := buildGrid(t, g)
	a, b := g.Rooms[0], g.Rooms[1]

	path := grid.FindPath(a.CenterX(), a.CenterY(), b.CenterX(), b.CenterY())
	if len(path) == 0 {
		t.Fatal("no path between neighbouring rooms")
	}
	first, last := path[0], path[len(path)-1]
	if first.X != a.CenterX() || first.Y != a.CenterY() || last.X != b.CenterX() || last.Y != b.CenterY() {
		t.Fatalf("path runs (%d,%d) -> (%d,%d)", first.X, first.Y, last.X, last.Y)
	}

	door := false
	for i, n := range path {
		if !n.Walkable {
			t.Fatalf("step %d (%d,%d) is not walkable", i, n.X, n.Y)
		}
		if i > 0 {
			prev := path[i-1]
			if absInt(prev.X-n.X)+absInt(prev.Y-n.Y) != 1 {
				t.Fatalf("step %d jumps from (%d,%d) to (%d,%d)", i, prev.X, prev.Y, n.X, n.Y)
			}
		}
		if n.X == a.Right() && n.Y == a.CenterY() {
			door = true
		}
	}
	if !door {
		t.Fatal("path should pass the shared door")
	}
}

func TestWalkable(t *testing.T) {
	g := &roomgraph.Graph{Width: 12, Height: 9, Rooms: []*roomgraph.Room{{X: 0, Y: 0, Width: 7, Height: 7}}}
	grid := buildGrid(t, g, [2]int{2, 2})

	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"interior", 3, 3, true},
		{"edge", 3, 0, false},
		{"void", 10, 3, false},
		{"outside_grid", -1, 3, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := grid.Walkable(c.x, c.y); got != c.want {
				t.Fatalf("Walkable(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestSolidGoalMovesToNearestWalkable(t *testing.T) {
	g := roomgraph.Lattice(1, 1, 7)
	grid := buildGrid(t, g)

	path := grid.FindPath(3, 3, 3, 0)
	if len(path) == 0 {
		t.Fatal("expected a path next to the wall")
	}
	if last := path[len(path)-1]; last.X != 3 || last.Y != 1 {
		t.Fatalf("path ends at (%d,%d), want (3,1)", last.X, last.Y)
	}

	if got := grid.FindPath(3, 3, 3, 3); len(got) != 1 {
		t.Fatalf("path to self has %d steps", len(got))
	}

	x, y := grid.TileCenter(2, 3)
	if x != 80 || y != 112 {
		t.Fatalf("TileCenter = (%v,%v)", x, y)
	}
}
