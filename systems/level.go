package systems

import (
	"github.com/automoto/labhunt/components"
	cfg "github.com/automoto/labhunt/config"
	"github.com/yohamta/donburi/ecs"
)

// GetLevel returns the level singleton, or nil before a level is built.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// IsRunning reports whether the level still accepts movement and pickups.
func IsRunning(e *ecs.ECS) bool {
	level := GetLevel(e)
	return level != nil && level.State.Running()
}

// IsGameOver reports a won or timed out game.
func IsGameOver(e *ecs.ECS) bool {
	level := GetLevel(e)
	return level != nil && level.State.GameOver
}

// WithGameplayChecks wraps a system to skip execution once the level stops
// running: after a timeout, a win, or while waiting for the next level.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsRunning(e) {
			return
		}
		system(e)
	}
}

// UpdateLevelClock counts frames. It runs first every frame.
func UpdateLevelClock(e *ecs.ECS) {
	if level := GetLevel(e); level != nil {
		level.Frame++
	}
}

// frameSeconds is the fixed simulation step.
func frameSeconds() float64 {
	if cfg.C.TickRate <= 0 {
		return 0
	}
	return 1 / float64(cfg.C.TickRate)
}
