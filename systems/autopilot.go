package systems

import (
	"math"

	"github.com/automoto/labhunt/components"
	cfg "github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/logger"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

type autopilotGoal struct {
	tileX, tileY int
	room         *roomgraph.Room // set when exploring
}

// UpdateAutopilot writes the player input for a player that steers itself.
// It heads for the exit once every item is found, otherwise for the nearest
// visible item, otherwise for the closest room it has not entered yet.
func UpdateAutopilot(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	playerEntry, ok := tags.Player.First(ecs.World)
	if level == nil || !ok || !playerEntry.HasComponent(components.Autopilot) {
		return
	}

	pilot := components.Autopilot.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	input := components.Input.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	if player.Room != nil && player.Room.Contains(player.TileX, player.TileY) {
		pilot.Visited.Put(player.Room)
	}

	goal, ok := chooseGoal(ecs, level, pilot, player)
	if !ok {
		*input = components.InputData{}
		return
	}

	if !pilot.HasGoal || pilot.GoalX != goal.tileX || pilot.GoalY != goal.tileY || len(pilot.Path) == 0 {
		if !planPath(pilot, player, goal) {
			*input = components.InputData{}
			return
		}
	}

	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
	for len(pilot.Path) > 0 {
		wp := pilot.Path[0]
		if math.Hypot(wp.X-cx, wp.Y-cy) > cfg.Autopilot.ArriveDistance {
			break
		}
		pilot.Path = pilot.Path[1:]
	}
	if len(pilot.Path) == 0 {
		// Arrived. The next frame picks a new goal.
		pilot.HasGoal = false
		if goal.room != nil {
			pilot.Visited.Put(goal.room)
		}
		*input = components.InputData{}
		return
	}

	wp := pilot.Path[0]
	input.Move = dmath.Vec2{X: wp.X - cx, Y: wp.Y - cy}
	input.Limit = math.Hypot(wp.X-cx, wp.Y-cy)
}

func planPath(pilot *components.AutopilotData, player *components.PlayerData, goal autopilotGoal) bool {
	nodes := pilot.Grid.FindPath(player.TileX, player.TileY, goal.tileX, goal.tileY)
	pilot.GoalX, pilot.GoalY = goal.tileX, goal.tileY
	if nodes == nil {
		pilot.HasGoal = false
		pilot.Path = nil
		if goal.room != nil {
			// Unreachable rooms are given up on rather than retried forever.
			pilot.Visited.Put(goal.room)
		}
		logger.For("autopilot").WithFields(logrus.Fields{
			"goalX": goal.tileX,
			"goalY": goal.tileY,
		}).Warn("no path to goal")
		return false
	}

	pilot.Path = pilot.Path[:0]
	for _, n := range nodes {
		x, y := pilot.Grid.TileCenter(n.X, n.Y)
		pilot.Path = append(pilot.Path, dmath.Vec2{X: x, Y: y})
	}
	pilot.HasGoal = true
	return true
}

func chooseGoal(ecs *ecs.ECS, level *components.LevelData, pilot *components.AutopilotData, player *components.PlayerData) (autopilotGoal, bool) {
	if level.State.ItemsComplete {
		if exitEntry, ok := components.Exit.First(ecs.World); ok {
			exit := components.Exit.Get(exitEntry)
			return autopilotGoal{tileX: exit.TileX, tileY: exit.TileY}, true
		}
	}

	best, bestDist := autopilotGoal{}, math.MaxInt
	for _, e := range level.Placement.Entities() {
		if !e.Visible || e.Found || !pilot.Grid.Walkable(e.TileX, e.TileY) {
			continue
		}
		if d := manhattan(player.TileX, player.TileY, e.TileX, e.TileY); d < bestDist {
			best, bestDist = autopilotGoal{tileX: e.TileX, tileY: e.TileY}, d
		}
	}
	if bestDist != math.MaxInt {
		return best, true
	}

	for _, r := range level.Graph.Rooms {
		if pilot.Visited.Has(r) {
			continue
		}
		if d := manhattan(player.TileX, player.TileY, r.CenterX(), r.CenterY()); d < bestDist {
			best, bestDist = autopilotGoal{tileX: r.CenterX(), tileY: r.CenterY(), room: r}, d
		}
	}
	return best, bestDist != math.MaxInt
}

func manhattan(ax, ay, bx, by int) int {
	dx, dy := ax-bx, ay-by
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
