package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Item    = donburi.NewTag().SetName("Item")
	PowerUp = donburi.NewTag().SetName("PowerUp")
	Exit    = donburi.NewTag().SetName("Exit")
	Wall    = donburi.NewTag().SetName("Wall")
)

// Resolv tags for collision
const (
	ResolvSolid   = "solid"
	ResolvPlayer  = "Player"
	ResolvItem    = "item"
	ResolvPowerUp = "powerup"
)
