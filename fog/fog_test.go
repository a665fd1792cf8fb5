package fog

import (
	"testing"

	"github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/scatter"
	"github.com/automoto/labhunt/tilemap"
)

func newLevel(t *testing.T) (*roomgraph.Graph, *tilemap.World) {
	t.Helper()
	g := roomgraph.Lattice(3, 1, 7)
	return g, tilemap.NewWorld(g.Width, g.Height, config.Dungeon.TileSize, tilemap.DefaultMapping())
}

func TestSetActiveRoom(t *testing.T) {
	g, world := newLevel(t)
	shadow := world.Layer(tilemap.LayerShadow)
	tr := NewTracker(g, shadow)
	a, b, c := g.Rooms[0], g.Rooms[1], g.Rooms[2]

	if !tr.SetActiveRoom(a) {
		t.Fatal("first room should become active")
	}
	if got := shadow.Alpha(a.CenterX(), a.CenterY()); got != config.Fog.ActiveAlpha {
		t.Fatalf("active alpha = %v", got)
	}
	if got := shadow.Alpha(b.CenterX(), b.CenterY()); got != config.Fog.UnexploredAlpha {
		t.Fatalf("unexplored alpha = %v", got)
	}

	tr.SetActiveRoom(b)
	if !tr.Explored(a) || tr.Explored(c) {
		t.Fatal("leaving a room should mark only it explored")
	}
	if got := shadow.Alpha(a.CenterX(), a.CenterY()); got != config.Fog.ExploredAlpha {
		t.Fatalf("explored alpha = %v", got)
	}
	// The wall shared by a and b belongs to the active footprint.
	if got := shadow.Alpha(b.Left(), b.CenterY()); got != config.Fog.ActiveAlpha {
		t.Fatalf("shared wall alpha = %v", got)
	}

	if tr.SetActiveRoom(nil) || tr.Active() != b {
		t.Fatal("a nil room should keep the previous active room")
	}
	if tr.SetActiveRoom(b) {
		t.Fatal("re-entering the active room is not a change")
	}
}

func TestFollow(t *testing.T) {
	g, world := newLevel(t)
	tr := NewTracker(g, world.Layer(tilemap.LayerShadow))

	cases := []struct {
		name   string
		tx, ty int
		want   *roomgraph.Room
	}{
		{"first", 3, 3, g.Rooms[0]},
		{"third", 15, 3, g.Rooms[2]},
		{"void_keeps_last", 100, 100, g.Rooms[2]},
		{"second", 9, 3, g.Rooms[1]},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := tr.Follow(c.tx, c.ty); got != c.want {
				t.Fatalf("Follow(%d,%d) = %v, want %v", c.tx, c.ty, got, c.want)
			}
		})
	}
}

func TestVisible(t *testing.T) {
	a, b := &roomgraph.Room{}, &roomgraph.Room{X: 10}

	cases := []struct {
		name   string
		found  bool
		room   *roomgraph.Room
		active *roomgraph.Room
		want   bool
	}{
		{"same_room", false, a, a, true},
		{"other_room", false, a, b, false},
		{"found", true, a, a, false},
		{"no_active", false, a, nil, false},
		{"outside_rooms", false, nil, nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Visible(c.found, c.room, c.active); got != c.want {
				t.Fatalf("Visible = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRefreshEntityVisibility(t *testing.T) {
	g, world := newLevel(t)
	size := float64(config.Dungeon.TileSize)
	at := func(r *roomgraph.Room) *scatter.Entity {
		return &scatter.Entity{Room: r, X: float64(r.CenterX()) * size, Y: float64(r.CenterY()) * size}
	}
	inA, inB, foundInB := at(g.Rooms[0]), at(g.Rooms[1]), at(g.Rooms[1])
	foundInB.Found = true
	foundInB.Visible = true
	entities := []*scatter.Entity{inA, inB, foundInB}

	RefreshEntityVisibility(g, world, entities, g.Rooms[1])
	if inA.Visible || !inB.Visible || foundInB.Visible {
		t.Fatalf("visibility = %v %v %v", inA.Visible, inB.Visible, foundInB.Visible)
	}

	// Moving rooms within a tick leaves nothing stale behind.
	RefreshEntityVisibility(g, world, entities, g.Rooms[0])
	if !inA.Visible || inB.Visible || foundInB.Visible {
		t.Fatalf("visibility after move = %v %v %v", inA.Visible, inB.Visible, foundInB.Visible)
	}
}
