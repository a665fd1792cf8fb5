package components

import "github.com/yohamta/donburi"

// HintData is the direction arrow shown by a power-up.
type HintData struct {
	Active bool
	Angle  float64 // radians, y grows downwards
	Target string  // name of the item pointed at
	Alpha  float32
}

var Hint = donburi.NewComponentType[HintData]()
