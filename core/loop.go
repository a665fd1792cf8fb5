package core

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/labhunt/logger"
	"github.com/sirupsen/logrus"
)

// Scene is what the loop drives.
type Scene interface {
	Update() error
	TickSecond()
	GameOver() bool
}

// GameLoop runs scene updates at a fixed rate and ticks the countdown once
// per second on a separate ticker.
type GameLoop struct {
	scene    Scene
	tickRate int
	second   time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	frames   int
}

func NewGameLoop(scene Scene, tickRate int) *GameLoop {
	return &GameLoop{
		scene:    scene,
		tickRate: tickRate,
		second:   time.Second,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the game is over, Stop is called, ctx is done or an
// update fails.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()
	clock := time.NewTicker(g.second)
	defer clock.Stop()

	log := logger.For("loop")
	log.WithField("tickRate", g.tickRate).Info("game loop started")

	for {
		select {
		case <-ctx.Done():
			log.WithField("frames", g.frames).Info("game loop cancelled")
			return nil
		case <-g.stopChan:
			log.WithField("frames", g.frames).Info("game loop stopped")
			return nil
		case <-clock.C:
			g.scene.TickSecond()
		case <-ticker.C:
			if err := g.scene.Update(); err != nil {
				return err
			}
			g.frames++
			if g.scene.GameOver() {
				log.WithFields(logrus.Fields{"frames": g.frames}).Info("game over")
				return nil
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) Frames() int {
	return g.frames
}
