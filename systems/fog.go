package systems

import (
	"github.com/automoto/labhunt/components"
	"github.com/automoto/labhunt/fog"
	"github.com/automoto/labhunt/logger"
	"github.com/automoto/labhunt/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFog reveals the room under the player and recomputes which
// entities can be seen.
func UpdateFog(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	playerEntry, ok := tags.Player.First(ecs.World)
	if level == nil || !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	before := level.Fog.Active()
	if now := level.Fog.Follow(player.TileX, player.TileY); now != before {
		logger.For("fog").WithField("room", now).Debug("active room changed")
	}
	fog.RefreshEntityVisibility(level.Graph, level.World, level.Placement.Entities(), level.Fog.Active())
}
