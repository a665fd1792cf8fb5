package components

import (
	"github.com/automoto/labhunt/schedule"
	"github.com/yohamta/donburi"
)

var Scheduler = donburi.NewComponentType[schedule.Scheduler]()
