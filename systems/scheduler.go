package systems

import (
	"github.com/automoto/labhunt/schedule"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScheduler advances pending timers and mirrors their tween values
// into the hint arrow and the level fade.
func UpdateScheduler(ecs *ecs.ECS) {
	sched := GetOrCreateScheduler(ecs)
	sched.Update(float32(frameSeconds()))

	if v, ok := sched.Value(schedule.HintFade); ok {
		GetOrCreateHint(ecs).Alpha = v
	}
	if v, ok := sched.Value(schedule.RestartFade); ok {
		GetOrCreateTransition(ecs).Fade = v
	}
}
