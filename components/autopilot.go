package components

import (
	"github.com/automoto/labhunt/nav"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/zyedidia/generic/mapset"
)

// AutopilotData steers the player when nobody is at the controls.
type AutopilotData struct {
	Grid    *nav.Grid
	Path    []math.Vec2 // remaining waypoints in pixels, tile centers
	GoalX   int
	GoalY   int
	HasGoal bool
	Visited mapset.Set[*roomgraph.Room]
}

var Autopilot = donburi.NewComponentType[AutopilotData]()
