package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides mirrors the global configuration; keys missing from the file keep their defaults.
type overrides struct {
	Sim          Config             `yaml:"sim"`
	Dungeon      DungeonConfig      `yaml:"dungeon"`
	Distribution DistributionConfig `yaml:"distribution"`
	Level        LevelConfig        `yaml:"level"`
	PowerUp      PowerUpConfig      `yaml:"powerUp"`
	Player       PlayerConfig       `yaml:"player"`
	Fog          FogConfig          `yaml:"fog"`
	Transition   TransitionConfig   `yaml:"transition"`
	Autopilot    AutopilotConfig    `yaml:"autopilot"`
	Catalog      []string           `yaml:"catalog"`
}

// Load merges a YAML override file onto the defaults.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply merges YAML override data onto the defaults. Nothing is changed when
// the data fails to parse or validate.
func Apply(data []byte) error {
	o := overrides{
		Sim:          *C,
		Dungeon:      Dungeon,
		Distribution: Distribution,
		Level:        Level,
		PowerUp:      PowerUp,
		Player:       Player,
		Fog:          Fog,
		Transition:   Transition,
		Autopilot:    Autopilot,
		Catalog:      Catalog,
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if err := o.validate(); err != nil {
		return err
	}

	*C = o.Sim
	Dungeon = o.Dungeon
	Distribution = o.Distribution
	Level = o.Level
	PowerUp = o.PowerUp
	Player = o.Player
	Fog = o.Fog
	Transition = o.Transition
	Autopilot = o.Autopilot
	Catalog = o.Catalog
	return nil
}

func (o *overrides) validate() error {
	switch {
	case o.Sim.TickRate <= 0:
		return fmt.Errorf("sim.tickRate must be positive, got %d", o.Sim.TickRate)
	case o.Dungeon.TileSize <= 0:
		return fmt.Errorf("dungeon.tileSize must be positive, got %d", o.Dungeon.TileSize)
	case o.Dungeon.MinRoomSize < 5 || o.Dungeon.MinRoomSize%2 == 0:
		return fmt.Errorf("dungeon.minRoomSize must be odd and at least 5, got %d", o.Dungeon.MinRoomSize)
	case o.Dungeon.DoorPadding < 2:
		return fmt.Errorf("dungeon.doorPadding must be at least 2, got %d", o.Dungeon.DoorPadding)
	case o.Distribution.ItemCount <= 0:
		return fmt.Errorf("distribution.itemCount must be positive, got %d", o.Distribution.ItemCount)
	case o.Distribution.DecorationShare < 0 || o.Distribution.DecorationShare > 1:
		return fmt.Errorf("distribution.decorationShare must be within [0,1], got %v", o.Distribution.DecorationShare)
	case o.Level.FinalLevel < 1:
		return fmt.Errorf("level.finalLevel must be at least 1, got %d", o.Level.FinalLevel)
	case o.Player.Speed <= 0:
		return fmt.Errorf("player.speed must be positive, got %v", o.Player.Speed)
	case o.Player.CollisionSize <= 0 || o.Player.CollisionSize >= float64(o.Dungeon.TileSize):
		return fmt.Errorf("player.collisionSize must be within (0,%d), got %v", o.Dungeon.TileSize, o.Player.CollisionSize)
	case o.Player.PickupReach < 0:
		return fmt.Errorf("player.pickupReach must not be negative, got %v", o.Player.PickupReach)
	}
	return nil
}
