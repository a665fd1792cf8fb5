package components

import "github.com/yohamta/donburi"

// HUDData holds the text a renderer would draw this frame.
type HUDData struct {
	Status    string
	Countdown string
	Banner    string
}

var HUD = donburi.NewComponentType[HUDData]()
