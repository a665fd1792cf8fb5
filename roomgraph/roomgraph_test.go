package roomgraph

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"
)

func TestClassifyDoor(t *testing.T) {
	room := &Room{X: 10, Y: 20, Width: 9, Height: 7}

	cases := []struct {
		name    string
		door    Door
		want    Side
		wantErr bool
	}{
		{"top", Door{X: 4, Y: 0}, SideTop, false},
		{"bottom", Door{X: 2, Y: 6}, SideBottom, false},
		{"left", Door{X: 0, Y: 3}, SideLeft, false},
		{"right", Door{X: 8, Y: 4}, SideRight, false},
		{"interior", Door{X: 3, Y: 3}, 0, true},
		{"corner", Door{X: 0, Y: 0}, 0, true},
		{"near_corner", Door{X: 1, Y: 0}, 0, true},
		{"near_far_corner", Door{X: 7, Y: 6}, 0, true},
		{"left_near_corner", Door{X: 0, Y: 5}, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ClassifyDoor(room, c.door, 2)
			if c.wantErr {
				if !errors.Is(err, ErrGeometry) {
					t.Fatalf("ClassifyDoor(%+v) err = %v, want geometry violation", c.door, err)
				}
				var ge *GeometryError
				if !errors.As(err, &ge) || ge.Door == nil {
					t.Fatalf("error should carry the offending door")
				}
				return
			}
			if err != nil {
				t.Fatalf("ClassifyDoor(%+v): %v", c.door, err)
			}
			if got != c.want {
				t.Fatalf("ClassifyDoor(%+v) = %s, want %s", c.door, got, c.want)
			}
		})
	}
}

func TestRoomBounds(t *testing.T) {
	r := &Room{X: 3, Y: 5, Width: 7, Height: 9}
	if r.Left() != 3 || r.Right() != 9 || r.Top() != 5 || r.Bottom() != 13 {
		t.Fatalf("bounds = %d %d %d %d", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if r.CenterX() != 6 || r.CenterY() != 9 {
		t.Fatalf("center = (%d,%d)", r.CenterX(), r.CenterY())
	}
	if !r.Contains(3, 5) || !r.Contains(9, 13) || r.Contains(10, 13) || r.Contains(3, 4) {
		t.Fatal("Contains should use inclusive bounds")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		g    *Graph
	}{
		{"empty", &Graph{Width: 10, Height: 10}},
		{"even", &Graph{Width: 20, Height: 20, Rooms: []*Room{{Width: 8, Height: 7}}}},
		{"small", &Graph{Width: 20, Height: 20, Rooms: []*Room{{Width: 5, Height: 5}}}},
		{"outside", &Graph{Width: 8, Height: 8, Rooms: []*Room{{X: 2, Width: 7, Height: 7}}}},
		{"bad_door", &Graph{Width: 20, Height: 20, Rooms: []*Room{{Width: 7, Height: 7, Doors: []Door{{X: 3, Y: 3}}}}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.g.Validate(7, 2); !errors.Is(err, ErrGeometry) {
				t.Fatalf("Validate err = %v, want geometry violation", err)
			}
		})
	}

	if err := Lattice(3, 3, 9).Validate(7, 2); err != nil {
		t.Fatalf("lattice should validate: %v", err)
	}
}

func TestRoomAtSharedWall(t *testing.T) {
	g := Lattice(2, 1, 9)

	if got := g.RoomAt(8, 4); got != g.Rooms[0] {
		t.Fatalf("shared wall should resolve to the first room, got %v", got)
	}
	if got := g.RoomAt(9, 4); got != g.Rooms[1] {
		t.Fatalf("RoomAt(9,4) = %v, want second room", got)
	}
	if got := g.RoomAt(40, 40); got != nil {
		t.Fatalf("RoomAt outside = %v, want nil", got)
	}
	if g.IndexOf(g.Rooms[1]) != 1 || g.IndexOf(&Room{}) != -1 {
		t.Fatal("IndexOf mismatch")
	}
}

func TestLatticeDoorsMeet(t *testing.T) {
	g := Lattice(3, 2, 7)
	if len(g.Rooms) != 6 || g.Width != 19 || g.Height != 13 {
		t.Fatalf("lattice = %d rooms %dx%d", len(g.Rooms), g.Width, g.Height)
	}

	// Every door tile must be shared with a neighbouring room's door.
	doorTiles := map[[2]int]int{}
	for _, r := range g.Rooms {
		for _, d := range r.Doors {
			doorTiles[[2]int{r.X + d.X, r.Y + d.Y}]++
		}
	}
	for tile, n := range doorTiles {
		if n != 2 {
			t.Errorf("door tile %v owned by %d rooms, want 2", tile, n)
		}
	}
}

const twoRoomLayout = `
width: 17
height: 9
rooms:
  - {x: 0, y: 0, width: 9, height: 9, doors: [{x: 8, y: 4}]}
  - {x: 8, y: 0, width: 9, height: 9, doors: [{x: 0, y: 4}]}
`

func TestParseLayout(t *testing.T) {
	g, err := ParseLayout([]byte(twoRoomLayout))
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if len(g.Rooms) != 2 || g.Rooms[1].X != 8 || g.Rooms[1].Doors[0].Y != 4 {
		t.Fatalf("unexpected graph %+v", g)
	}
	if err := g.Validate(7, 2); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if _, err := ParseLayout([]byte("width: 3\n")); err == nil {
		t.Fatal("layout without rooms should fail")
	}
}

func TestLayoutProviderCyclesAndReloads(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.yaml", twoRoomLayout)
	write("b.yml", "width: 9\nheight: 9\nrooms:\n  - {x: 0, y: 0, width: 9, height: 9}\n")
	write("notes.txt", "ignored")

	p, err := NewLayoutProvider(dir)
	if err != nil {
		t.Fatalf("NewLayoutProvider: %v", err)
	}
	if len(p.Names()) != 2 {
		t.Fatalf("Names = %v", p.Names())
	}

	for level, rooms := range map[int]int{1: 2, 2: 1, 3: 2} {
		g, err := p.Graph(level)
		if err != nil {
			t.Fatal(err)
		}
		if len(g.Rooms) != rooms {
			t.Errorf("level %d: %d rooms, want %d", level, len(g.Rooms), rooms)
		}
	}

	write("b.yml", "rooms: [\n")
	p.MarkDirty()
	if g, err := p.Graph(2); err != nil || len(g.Rooms) != 1 {
		t.Fatalf("broken reload should keep previous layouts, got %v %v", g, err)
	}

	write("b.yml", "width: 9\nheight: 18\nrooms:\n  - {x: 0, y: 0, width: 9, height: 9}\n  - {x: 0, y: 8, width: 9, height: 9}\n")
	p.MarkDirty()
	if g, _ := p.Graph(2); len(g.Rooms) != 2 {
		t.Fatalf("reload should pick up the edited layout")
	}
}

func TestLayoutProviderEmptyDir(t *testing.T) {
	if _, err := NewLayoutProvider(t.TempDir()); err == nil {
		t.Fatal("empty directory should fail")
	}
}

const twoRoomTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="17" height="9" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="Rooms">
  <object id="2" x="256" y="0" width="288" height="288"/>
  <object id="1" x="0" y="0" width="288" height="288"/>
 </objectgroup>
 <objectgroup id="2" name="Doors">
  <object id="3" x="256" y="128">
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/lab.tmx": {Data: []byte(twoRoomTMX)},
	}

	g, err := LoadTMX(fsys, "levels/lab.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	if g.Width != 17 || g.Height != 9 || len(g.Rooms) != 2 {
		t.Fatalf("graph = %dx%d with %d rooms", g.Width, g.Height, len(g.Rooms))
	}
	if g.Rooms[0].X != 0 || g.Rooms[1].X != 8 || g.Rooms[1].Width != 9 {
		t.Fatalf("rooms should be ordered by object id: %v %v", g.Rooms[0], g.Rooms[1])
	}
	if len(g.Rooms[0].Doors) != 1 || g.Rooms[0].Doors[0] != (Door{X: 8, Y: 4}) {
		t.Fatalf("first room doors = %v", g.Rooms[0].Doors)
	}
	if len(g.Rooms[1].Doors) != 1 || g.Rooms[1].Doors[0] != (Door{X: 0, Y: 4}) {
		t.Fatalf("second room doors = %v", g.Rooms[1].Doors)
	}
	if err := g.Validate(7, 2); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if _, err := LoadTMX(fsys, "levels/missing.tmx"); err == nil {
		t.Fatal("missing map should fail")
	}
}

func TestShippedLayoutsValidate(t *testing.T) {
	p, err := NewLayoutProvider(filepath.Join("..", "layouts"))
	if err != nil {
		t.Fatalf("NewLayoutProvider: %v", err)
	}
	if len(p.Names()) < 2 {
		t.Fatalf("layouts = %v", p.Names())
	}
	for level := 1; level <= len(p.Names()); level++ {
		g, err := p.Graph(level)
		if err != nil {
			t.Fatalf("Graph(%d): %v", level, err)
		}
		if err := g.Validate(7, 2); err != nil {
			t.Errorf("%s: %v", p.Names()[level-1], err)
		}
	}
}

func TestWatcherMarksProviderDirty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.yaml")
	if err := os.WriteFile(path, []byte(twoRoomLayout), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := NewLayoutProvider(dir)
	if err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()
	w.Follow(p)

	if err := os.WriteFile(path, []byte(twoRoomLayout+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		p.mu.Lock()
		dirty := p.dirty
		p.mu.Unlock()
		if dirty {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("layout change never marked the provider dirty")
}
