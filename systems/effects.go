package systems

import (
	"github.com/automoto/labhunt/components"
	cfg "github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/logger"
	"github.com/automoto/labhunt/progression"
	"github.com/automoto/labhunt/schedule"
	"github.com/automoto/labhunt/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

func applyPowerUp(ecs *ecs.ECS, level *components.LevelData, effect cfg.PowerUpEffectID) {
	switch effect {
	case cfg.EffectDirectionHint:
		showHint(ecs, level)
	case cfg.EffectSpeedBoost:
		boostSpeed(ecs)
	}
}

// showHint points from the player at the closest unfound item and fades the
// arrow out after the hint duration. Nothing happens once all items are found.
func showHint(ecs *ecs.ECS, level *components.LevelData) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry).Object
	px, py := obj.X+obj.W/2, obj.Y+obj.H/2
	half := float64(level.World.TileSize) / 2

	target := progression.NearestItem(px-half, py-half, level.Placement.Items)
	if target == nil {
		logger.For("powerup").Debug("no item left to point at")
		return
	}

	hint := GetOrCreateHint(ecs)
	hint.Active = true
	hint.Angle = progression.HintAngle(px, py, target.X+half, target.Y+half)
	hint.Target = target.Name
	hint.Alpha = 1

	replaced := GetOrCreateScheduler(ecs).After(schedule.HintFade, cfg.PowerUp.HintDuration, func() {
		h := GetOrCreateHint(ecs)
		h.Active = false
		h.Alpha = 0
	})
	logger.For("powerup").WithFields(logrus.Fields{
		"target":   target.Name,
		"angle":    hint.Angle,
		"replaced": replaced,
	}).Debug("direction hint shown")
}

// boostSpeed raises the player speed for a while. A second boost restarts
// the timer instead of stacking.
func boostSpeed(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	player.Boosted = true
	player.Speed = progression.SpeedFor(true)

	GetOrCreateScheduler(ecs).After(schedule.SpeedReset, cfg.PowerUp.SpeedBoostDuration, func() {
		entry, ok := tags.Player.First(ecs.World)
		if !ok {
			return
		}
		p := components.Player.Get(entry)
		p.Boosted = false
		p.Speed = progression.SpeedFor(false)
		logger.For("powerup").Debug("speed boost ended")
	})
}
