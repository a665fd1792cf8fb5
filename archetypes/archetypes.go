package archetypes

import (
	"github.com/automoto/labhunt/components"
	cfg "github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Input,
	)
	Item = newArchetype(
		tags.Item,
		components.Findable,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.Findable,
		components.Object,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Exit,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
