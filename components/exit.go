package components

import "github.com/yohamta/donburi"

// ExitData marks the tile that finishes a level once every item is found.
type ExitData struct {
	TileX, TileY int
}

var Exit = donburi.NewComponentType[ExitData]()
