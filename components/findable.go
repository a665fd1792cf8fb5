package components

import (
	"github.com/automoto/labhunt/scatter"
	"github.com/yohamta/donburi"
)

// FindableData links an item or power-up entity to its placement record.
type FindableData struct {
	*scatter.Entity
}

var Findable = donburi.NewComponentType[FindableData]()
