package factory

import (
	"github.com/automoto/labhunt/archetypes"
	"github.com/automoto/labhunt/components"
	cfg "github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/scatter"
	"github.com/automoto/labhunt/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFindable spawns the trigger for an item or power-up. The trigger
// covers the entity's tile plus the pickup reach on every side, so a pickup
// resting on a prop can still be touched from next to it.
func CreateFindable(ecs *ecs.ECS, e *scatter.Entity) *donburi.Entry {
	arch, tag := archetypes.Item, tags.ResolvItem
	if e.Kind == cfg.KindPowerUp {
		arch, tag = archetypes.PowerUp, tags.ResolvPowerUp
	}
	entry := arch.Spawn(ecs)

	reach := cfg.Player.PickupReach
	size := float64(cfg.Dungeon.TileSize) + 2*reach

	obj := resolv.NewObject(e.X-reach, e.Y-reach, size, size, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Findable.SetValue(entry, components.FindableData{Entity: e})
	addToSpace(ecs, obj)

	return entry
}

func CreateExit(ecs *ecs.ECS, tileX, tileY int) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)
	components.Exit.SetValue(exit, components.ExitData{TileX: tileX, TileY: tileY})
	return exit
}
