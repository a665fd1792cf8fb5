package components

import (
	"math/rand"

	"github.com/automoto/labhunt/fog"
	"github.com/automoto/labhunt/progression"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/scatter"
	"github.com/automoto/labhunt/tilemap"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	State     progression.LevelState
	Graph     *roomgraph.Graph
	World     *tilemap.World
	Placement *scatter.Placement
	Fog       *fog.Tracker
	Rand      *rand.Rand
	Frame     int // frames since the level started
}

var Level = donburi.NewComponentType[LevelData]()
