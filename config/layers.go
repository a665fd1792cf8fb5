package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer; nothing is drawn, so one layer is enough.
const Default ecs.LayerID = 0
