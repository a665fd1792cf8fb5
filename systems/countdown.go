package systems

import (
	"github.com/automoto/labhunt/logger"
	"github.com/automoto/labhunt/progression"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCountdown removes one second from the clock. It is driven by the
// one-second ticker, not the frame loop. The timeout itself is detected by
// the next UpdateProgression.
func UpdateCountdown(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}
	before := level.State.Countdown
	level.State = progression.TickSecond(level.State)
	if level.State.Countdown != before {
		logger.For("countdown").WithField("remaining", level.State.Countdown).Debug("tick")
	}
	UpdateHUD(ecs)
}
