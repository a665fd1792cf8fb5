package systems

import (
	"github.com/automoto/labhunt/components"
	cfg "github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/logger"
	"github.com/automoto/labhunt/progression"
	"github.com/automoto/labhunt/schedule"
	"github.com/automoto/labhunt/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgression feeds the level state machine with this frame's item
// count and exit contact, and reacts to the transition it makes.
func UpdateProgression(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}

	before := level.State
	level.State = progression.Evaluate(level.State, progression.Frame{
		Remaining:    remainingItems(level),
		PlayerOnExit: playerOnExit(ecs),
	})
	if level.State.Phase == before.Phase {
		return
	}

	logger.For("progression").WithFields(logrus.Fields{
		"levelNumber": level.State.Level,
		"from":        before.Phase,
		"to":          level.State.Phase,
		"countdown":   level.State.Countdown,
		"frame":       level.Frame,
	}).Info("phase changed")

	switch level.State.Phase {
	case cfg.StateLevelAdvance:
		freezePlayer(ecs)
		startRestartFade(ecs)
	case cfg.StateWin, cfg.StateTimeExpired:
		freezePlayer(ecs)
	}
}

func remainingItems(level *components.LevelData) int {
	n := 0
	for _, it := range level.Placement.Items {
		if !it.Found {
			n++
		}
	}
	return n
}

func remainingNames(level *components.LevelData) []string {
	var names []string
	for _, it := range level.Placement.Items {
		if !it.Found {
			names = append(names, it.Name)
		}
	}
	return names
}

func playerOnExit(ecs *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	exitEntry, ok := components.Exit.First(ecs.World)
	if !ok {
		return false
	}
	player := components.Player.Get(playerEntry)
	exit := components.Exit.Get(exitEntry)
	return player.TileX == exit.TileX && player.TileY == exit.TileY
}

func freezePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Player.Get(e).Frozen = true
		*components.Input.Get(e) = components.InputData{}
	})
}

// startRestartFade fades the level out and then asks the scene for the
// next one.
func startRestartFade(ecs *ecs.ECS) {
	transition := GetOrCreateTransition(ecs)
	transition.Fading = true
	transition.Fade = 1

	GetOrCreateScheduler(ecs).After(schedule.RestartFade, cfg.Transition.RestartFade, func() {
		t := GetOrCreateTransition(ecs)
		t.Fade = 0
		t.RestartRequired = true
	})
}
