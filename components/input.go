package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputData is the movement intent for the next frame. Move is normalized
// by the movement system, so any non-zero vector means full speed.
type InputData struct {
	Move  math.Vec2
	Limit float64 // max pixels to travel this frame, 0 for no limit
}

var Input = donburi.NewComponentType[InputData]()
