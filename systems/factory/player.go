package factory

import (
	"github.com/automoto/labhunt/archetypes"
	"github.com/automoto/labhunt/components"
	cfg "github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/nav"
	"github.com/automoto/labhunt/progression"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/zyedidia/generic/mapset"
)

// CreatePlayer places the player hitbox centered on the given tile.
func CreatePlayer(ecs *ecs.ECS, tileX, tileY int, room *roomgraph.Room) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.CollisionSize
	tile := float64(cfg.Dungeon.TileSize)
	x := float64(tileX)*tile + (tile-size)/2
	y := float64(tileY)*tile + (tile-size)/2

	obj := resolv.NewObject(x, y, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Speed: progression.SpeedFor(false),
		TileX: tileX,
		TileY: tileY,
		Room:  room,
	})
	components.Input.SetValue(player, components.InputData{})

	return player
}

// AttachAutopilot lets the player steer itself over grid.
func AttachAutopilot(player *donburi.Entry, grid *nav.Grid) {
	donburi.Add(player, components.Autopilot, &components.AutopilotData{
		Grid:    grid,
		Visited: mapset.New[*roomgraph.Room](),
	})
}
