package components

import "github.com/yohamta/donburi"

// TransitionData tracks the fade before a level restart.
type TransitionData struct {
	Fading          bool
	Fade            float32 // 1 fully visible, 0 black
	RestartRequired bool
}

var Transition = donburi.NewComponentType[TransitionData]()
