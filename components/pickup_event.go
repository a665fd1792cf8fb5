package components

import "github.com/yohamta/donburi"

// PickupEventData is added to a findable the player overlapped this frame and
// removed once the pickup is applied.
type PickupEventData struct {
	Frame int
}

var PickupEvent = donburi.NewComponentType[PickupEventData]()
