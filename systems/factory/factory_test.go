package factory

import (
	"testing"

	"github.com/automoto/labhunt/components"
	cfg "github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/dungeon"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/scatter"
	"github.com/automoto/labhunt/tags"
	"github.com/automoto/labhunt/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateWallsMergesRuns(t *testing.T) {
	g := &roomgraph.Graph{Width: 7, Height: 7, Rooms: []*roomgraph.Room{{X: 0, Y: 0, Width: 7, Height: 7}}}
	world, err := dungeon.Build(g, tilemap.DefaultMapping(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	cases := []struct {
		name string
		skip [][2]int
		want int
	}{
		// Top and bottom edges are one run each, the side walls one per row.
		{"closed_room", nil, 12},
		{"skip_splits_a_run", [][2]int{{3, 0}}, 13},
		{"skip_a_side_tile", [][2]int{{0, 3}}, 11},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			CreateSpace(e, world.PixelWidth(), world.PixelHeight(), 16, 16)
			if got := CreateWalls(e, world, c.skip...); got != c.want {
				t.Fatalf("CreateWalls = %d, want %d", got, c.want)
			}
			n := 0
			tags.Wall.Each(e.World, func(*donburi.Entry) { n++ })
			if n != c.want {
				t.Fatalf("%d wall entities, want %d", n, c.want)
			}
		})
	}
}

func TestCreateFindableTrigger(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 640, 640, 16, 16)

	room := &roomgraph.Room{X: 0, Y: 0, Width: 9, Height: 9}
	ent := &scatter.Entity{Kind: cfg.KindPowerUp, Room: room, TileX: 4, TileY: 4, X: 128, Y: 128}
	entry := CreateFindable(e, ent)

	if !entry.HasComponent(tags.PowerUp) {
		t.Fatal("power-up should carry the PowerUp tag")
	}
	obj := components.Object.Get(entry).Object
	reach := cfg.Player.PickupReach
	if obj.X != 128-reach || obj.W != float64(cfg.Dungeon.TileSize)+2*reach {
		t.Fatalf("trigger at %v size %v", obj.X, obj.W)
	}
	if !obj.HasTags(tags.ResolvPowerUp) || obj.Space == nil {
		t.Fatal("trigger should be tagged and in the space")
	}
	if components.Findable.Get(entry).Entity != ent {
		t.Fatal("findable should point at the placement record")
	}
}
