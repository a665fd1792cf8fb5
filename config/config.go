package config

// DungeonConfig describes the tile grid and the geometry rules rooms must satisfy
type DungeonConfig struct {
	TileSize    int `yaml:"tileSize"`    // pixels per tile edge
	Width       int `yaml:"width"`       // grid width in tiles
	Height      int `yaml:"height"`      // grid height in tiles
	MinRoomSize int `yaml:"minRoomSize"` // smallest accepted room edge (odd)
	DoorPadding int `yaml:"doorPadding"` // minimum tiles between a door and a room corner
}

// DistributionConfig contains the item and decoration scattering policy
type DistributionConfig struct {
	ItemCount       int     `yaml:"itemCount"`       // unique collectibles per level
	DecorationShare float64 `yaml:"decorationShare"` // share of leftover rooms that get props
	ChestChance     float64 `yaml:"chestChance"`     // draw <= this places a chest
	SackChance      float64 `yaml:"sackChance"`      // draw <= this (and > chest) places a sack
	PowerUpChance   float64 `yaml:"powerUpChance"`   // same draw <= this also spawns a power-up
	TallRoomHeight  int     `yaml:"tallRoomHeight"`  // rooms at least this tall get 4 bookcases
	SackWallMargin  int     `yaml:"sackWallMargin"`  // sacks stay this many tiles off the walls
}

// LevelConfig contains progression and countdown tuning
type LevelConfig struct {
	FinalLevel        int `yaml:"finalLevel"`        // touching the exit on this level wins
	BaseCountdown     int `yaml:"baseCountdown"`     // seconds before the per-level reduction
	CountdownPerLevel int `yaml:"countdownPerLevel"` // seconds removed per level number
	ItemTimeBonus     int `yaml:"itemTimeBonus"`     // seconds granted per collected item
}

// PowerUpConfig contains power-up effect tuning
type PowerUpConfig struct {
	HintChance         float64 `yaml:"hintChance"`         // coin flip < this shows a direction hint
	HintDuration       float32 `yaml:"hintDuration"`       // seconds
	SpeedBoost         float64 `yaml:"speedBoost"`         // pixels per second added to the base speed
	SpeedBoostDuration float32 `yaml:"speedBoostDuration"` // seconds
}

// PlayerConfig contains player movement values
type PlayerConfig struct {
	Speed         float64 `yaml:"speed"`         // pixels per second
	CollisionSize float64 `yaml:"collisionSize"` // square hitbox edge in pixels
	PickupReach   float64 `yaml:"pickupReach"`   // pixels a pickup trigger extends past its tile
}

// FogConfig contains shadow layer alpha levels
type FogConfig struct {
	UnexploredAlpha float32 `yaml:"unexploredAlpha"`
	ExploredAlpha   float32 `yaml:"exploredAlpha"`
	ActiveAlpha     float32 `yaml:"activeAlpha"`
}

// TransitionConfig contains scene transition timings
type TransitionConfig struct {
	RestartFade float32 `yaml:"restartFade"` // seconds of fade before a level restart
}

// AutopilotConfig tunes the headless driver
type AutopilotConfig struct {
	Enabled        bool    `yaml:"enabled"`
	ArriveDistance float64 `yaml:"arriveDistance"` // pixels from a waypoint that count as reached
}

// Config holds general simulation configuration
type Config struct {
	TickRate int   `yaml:"tickRate"` // frame updates per second
	Seed     int64 `yaml:"seed"`     // 0 picks a time-based seed
}

// Global configuration instances
var C *Config
var Dungeon DungeonConfig
var Distribution DistributionConfig
var Level LevelConfig
var PowerUp PowerUpConfig
var Player PlayerConfig
var Fog FogConfig
var Transition TransitionConfig
var Autopilot AutopilotConfig

// Catalog is the universe of findable item names.
var Catalog []string

func init() {
	C = &Config{
		TickRate: 60,
	}

	Dungeon = DungeonConfig{
		TileSize:    32,
		Width:       50,
		Height:      50,
		MinRoomSize: 7,
		DoorPadding: 2,
	}

	Distribution = DistributionConfig{
		ItemCount:       5,
		DecorationShare: 0.9,
		ChestChance:     0.25,
		SackChance:      0.5,
		PowerUpChance:   0.2,
		TallRoomHeight:  9,
		SackWallMargin:  2,
	}

	Level = LevelConfig{
		FinalLevel:        6,
		BaseCountdown:     35,
		CountdownPerLevel: 5,
		ItemTimeBonus:     5,
	}

	PowerUp = PowerUpConfig{
		HintChance:         0.5,
		HintDuration:       4,
		SpeedBoost:         600,
		SpeedBoostDuration: 4,
	}

	Player = PlayerConfig{
		Speed:         300,
		CollisionSize: 20,
		PickupReach:   6,
	}

	Fog = FogConfig{
		UnexploredAlpha: 1,
		ExploredAlpha:   0.5,
		ActiveAlpha:     0,
	}

	Transition = TransitionConfig{
		RestartFade: 0.25,
	}

	Autopilot = AutopilotConfig{
		Enabled:        true,
		ArriveDistance: 4,
	}

	Catalog = []string{
		"bandage",
		"battery",
		"bible",
		"blood bag",
		"detonator",
		"dice",
		"dollar",
		"game",
		"hourglass",
		"magic 8 ball",
		"magnet",
		"medicine",
		"phd",
		"rainbow baby",
		"slot",
		"book",
		"tnt",
	}
}
