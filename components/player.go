package components

import (
	"github.com/automoto/labhunt/roomgraph"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed   float64 // pixels per second
	Boosted bool
	Frozen  bool // set while the level fades out
	TileX   int
	TileY   int
	Room    *roomgraph.Room // last room the player stood in
}

var Player = donburi.NewComponentType[PlayerData]()
