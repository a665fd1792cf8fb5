package scenes

import (
	"math/rand"
	"sync"

	"github.com/automoto/labhunt/components"
	cfg "github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/logger"
	"github.com/automoto/labhunt/nav"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/systems"
	"github.com/automoto/labhunt/systems/factory"
	"github.com/automoto/labhunt/tags"
	"github.com/automoto/labhunt/tilemap"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene runs one level at a time. Reaching the exit rebuilds the whole
// world for the next level; nothing carries over but the level number.
type LevelScene struct {
	ecs      *ecs.ECS
	provider roomgraph.Provider
	mapping  *tilemap.Mapping
	rng      *rand.Rand
	level    int

	// mu lets Snapshot and GameOver be read from outside the loop goroutine.
	mu sync.Mutex
}

func NewLevelScene(provider roomgraph.Provider, m *tilemap.Mapping, rng *rand.Rand) *LevelScene {
	return &LevelScene{provider: provider, mapping: m, rng: rng}
}

// Start builds level from scratch. On error the running level, if any, is
// kept.
func (ls *LevelScene) Start(level int) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.start(level)
}

func (ls *LevelScene) start(level int) error {
	world, err := ls.configure(level)
	if err != nil {
		return err
	}
	ls.ecs = world
	ls.level = level
	return nil
}

// Update runs one frame and performs the restart once the level fade ends.
func (ls *LevelScene) Update() error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.ecs == nil {
		return nil
	}

	ls.ecs.Update()

	if systems.RestartRequired(ls.ecs) {
		next := ls.level + 1
		logger.For("scene").WithField("levelNumber", next).Info("advancing")
		return ls.start(next)
	}
	return nil
}

// TickSecond advances the countdown by one second.
func (ls *LevelScene) TickSecond() {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.ecs != nil {
		systems.UpdateCountdown(ls.ecs)
	}
}

// GameOver reports a won or timed out game.
func (ls *LevelScene) GameOver() bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.ecs != nil && systems.IsGameOver(ls.ecs)
}

func (ls *LevelScene) Level() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.level
}

func (ls *LevelScene) configure(level int) (*ecs.ECS, error) {
	world := ecs.NewECS(donburi.NewWorld())

	world.AddSystem(systems.UpdateLevelClock)
	if cfg.Autopilot.Enabled {
		world.AddSystem(systems.WithGameplayChecks(systems.UpdateAutopilot))
	}
	world.AddSystem(systems.WithGameplayChecks(systems.UpdateMovement))
	world.AddSystem(systems.WithGameplayChecks(systems.UpdatePickups))
	world.AddSystem(systems.WithGameplayChecks(systems.UpdatePickupEvents))
	world.AddSystem(systems.WithGameplayChecks(systems.UpdateFog))

	// These run after the level stops so the fade and the banner finish.
	world.AddSystem(systems.UpdateProgression)
	world.AddSystem(systems.UpdateScheduler)
	world.AddSystem(systems.UpdateHUD)

	levelEntry, err := factory.CreateLevel(world, level, ls.provider, ls.mapping, ls.rng)
	if err != nil {
		return nil, err
	}
	levelData := components.Level.Get(levelEntry)
	placement := levelData.Placement

	factory.CreateSpace(world,
		levelData.World.PixelWidth(),
		levelData.World.PixelHeight(),
		levelData.World.TileSize/2, levelData.World.TileSize/2,
	)

	exit := [2]int{placement.Exit.CenterX(), placement.Exit.CenterY()}
	walls := factory.CreateWalls(world, levelData.World, exit)
	factory.CreateExit(world, exit[0], exit[1])

	for _, e := range placement.Entities() {
		factory.CreateFindable(world, e)
	}

	start := placement.Start
	player := factory.CreatePlayer(world, start.CenterX(), start.CenterY(), start)
	levelData.Fog.SetActiveRoom(start)

	if cfg.Autopilot.Enabled {
		factory.AttachAutopilot(player, nav.NewGrid(levelData.World, levelData.Graph, exit))
	}

	systems.UpdateFog(world)
	systems.UpdateHUD(world)

	logger.For("scene").WithFields(logrus.Fields{
		"levelNumber": level,
		"walls":       walls,
		"start":       start,
		"exit":        placement.Exit,
		"autopilot":   cfg.Autopilot.Enabled,
	}).Info("level started")

	return world, nil
}

// EntityView is the read-only state of one findable.
type EntityView struct {
	Kind    cfg.EntityKind
	Name    string
	TileX   int
	TileY   int
	Found   bool
	Visible bool
}

// Snapshot is what a renderer or test needs from one frame.
type Snapshot struct {
	Level     int
	Phase     cfg.ProgressionStateID
	Countdown int
	GameOver  bool
	Status    string
	Clock     string
	Banner    string
	PlayerX   float64
	PlayerY   float64
	TileX     int
	TileY     int
	Room      int // index into the level graph, -1 outside rooms
	Boosted   bool
	Hint      components.HintData
	Fade      float32
	Entities  []EntityView
}

func (ls *LevelScene) Snapshot() Snapshot {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	snap := Snapshot{Level: ls.level, Room: -1}
	if ls.ecs == nil {
		return snap
	}
	level := systems.GetLevel(ls.ecs)
	if level == nil {
		return snap
	}

	snap.Phase = level.State.Phase
	snap.Countdown = level.State.Countdown
	snap.GameOver = level.State.GameOver

	hud := systems.GetOrCreateHUD(ls.ecs)
	snap.Status, snap.Clock, snap.Banner = hud.Status, hud.Countdown, hud.Banner
	snap.Hint = *systems.GetOrCreateHint(ls.ecs)
	snap.Fade = systems.GetOrCreateTransition(ls.ecs).Fade

	if playerEntry, ok := tags.Player.First(ls.ecs.World); ok {
		obj := components.Object.Get(playerEntry).Object
		player := components.Player.Get(playerEntry)
		snap.PlayerX, snap.PlayerY = obj.X, obj.Y
		snap.TileX, snap.TileY = player.TileX, player.TileY
		snap.Boosted = player.Boosted
		snap.Room = level.Graph.IndexOf(level.Graph.RoomAt(player.TileX, player.TileY))
	}

	for _, e := range level.Placement.Entities() {
		snap.Entities = append(snap.Entities, EntityView{
			Kind:    e.Kind,
			Name:    e.Name,
			TileX:   e.TileX,
			TileY:   e.TileY,
			Found:   e.Found,
			Visible: e.Visible,
		})
	}
	return snap
}
