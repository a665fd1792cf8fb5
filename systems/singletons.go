package systems

import (
	"github.com/automoto/labhunt/components"
	"github.com/automoto/labhunt/schedule"
	"github.com/yohamta/donburi/ecs"
)

func GetOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	if _, ok := components.HUD.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.HUD))
	}

	ent, _ := components.HUD.First(ecs.World)
	return components.HUD.Get(ent)
}

func GetOrCreateHint(ecs *ecs.ECS) *components.HintData {
	if _, ok := components.Hint.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Hint))
	}

	ent, _ := components.Hint.First(ecs.World)
	return components.Hint.Get(ent)
}

func GetOrCreateTransition(ecs *ecs.ECS) *components.TransitionData {
	if _, ok := components.Transition.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Transition))
		components.Transition.SetValue(ent, components.TransitionData{Fade: 1})
	}

	ent, _ := components.Transition.First(ecs.World)
	return components.Transition.Get(ent)
}

// GetOrCreateScheduler returns the per-level scheduler. It is dropped with
// the world on a restart, so nothing pending survives a level change.
func GetOrCreateScheduler(ecs *ecs.ECS) *schedule.Scheduler {
	if _, ok := components.Scheduler.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Scheduler))
		components.Scheduler.Set(ent, schedule.New())
	}

	ent, _ := components.Scheduler.First(ecs.World)
	return components.Scheduler.Get(ent)
}

// RestartRequired reports that the level fade finished and the next level
// should be built.
func RestartRequired(ecs *ecs.ECS) bool {
	return GetOrCreateTransition(ecs).RestartRequired
}
