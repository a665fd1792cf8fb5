package systems

import (
	"github.com/automoto/labhunt/progression"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHUD rebuilds the status, countdown and banner text.
func UpdateHUD(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}
	hud := GetOrCreateHUD(ecs)
	hud.Status = progression.Status(level.State, remainingNames(level))
	hud.Countdown = progression.CountdownText(level.State)
	hud.Banner = progression.Banner(level.State)
}
