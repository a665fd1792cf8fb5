package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/labhunt/archetypes"
	"github.com/automoto/labhunt/components"
	cfg "github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/dungeon"
	"github.com/automoto/labhunt/fog"
	"github.com/automoto/labhunt/logger"
	"github.com/automoto/labhunt/progression"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/scatter"
	"github.com/automoto/labhunt/tilemap"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel composes and distributes level number. Every check runs before
// the level entity exists, so a failed start leaves the world untouched.
func CreateLevel(ecs *ecs.ECS, number int, provider roomgraph.Provider, m *tilemap.Mapping, rng *rand.Rand) (*donburi.Entry, error) {
	graph, err := provider.Graph(number)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", number, err)
	}

	placement, err := scatter.Distribute(graph, m, cfg.Catalog, rng)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", number, err)
	}
	world, err := dungeon.Build(graph, m, rng)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", number, err)
	}
	world.Apply(placement.Plan, rng)

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		State:     progression.NewLevelState(number),
		Graph:     graph,
		World:     world,
		Placement: placement,
		Fog:       fog.NewTracker(graph, world.Layer(tilemap.LayerShadow)),
		Rand:      rng,
	})

	names := make([]string, len(placement.Items))
	for i, it := range placement.Items {
		names[i] = it.Name
	}
	logger.For("level").WithFields(logrus.Fields{
		"levelNumber": number,
		"rooms":       len(graph.Rooms),
		"items":       names,
		"powerups":    len(placement.PowerUps),
		"props":       len(placement.Props),
		"countdown":   progression.InitialCountdown(number),
	}).Info("level composed")

	return level, nil
}
