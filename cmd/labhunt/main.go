package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/core"
	"github.com/automoto/labhunt/logger"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/scenes"
	"github.com/automoto/labhunt/tilemap"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	layouts := flag.String("layouts", "", "Directory of YAML room layouts, one per level in name order")
	tmx := flag.String("tmx", "", "Tiled map whose object layer describes the rooms")
	watch := flag.Bool("watch", false, "Reload -layouts between levels when files change")
	seed := flag.Int64("seed", 0, "Random seed (0 uses the config seed, then the clock)")
	tickRate := flag.Int("tickrate", 0, "Frame updates per second (0 keeps the config value)")
	level := flag.Int("level", 1, "Level to start on")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.WithError(err).Fatal("failed to load config")
		}
	}
	if *tickRate > 0 {
		config.C.TickRate = *tickRate
	}

	s := *seed
	if s == 0 {
		s = config.C.Seed
	}
	if s == 0 {
		s = time.Now().UnixNano()
	}

	provider, watcher, err := newProvider(*layouts, *tmx, *watch)
	if err != nil {
		log.WithError(err).Fatal("failed to load room layouts")
	}
	if watcher != nil {
		defer watcher.Close()
	}

	scene := scenes.NewLevelScene(provider, tilemap.DefaultMapping(), rand.New(rand.NewSource(s)))
	if err := scene.Start(*level); err != nil {
		log.WithError(err).Fatal("failed to start level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"seed":        s,
		"tickRate":    config.C.TickRate,
		"levelNumber": *level,
	}).Info("starting lab hunt")

	loop := core.NewGameLoop(scene, config.C.TickRate)
	if err := loop.Run(ctx); err != nil {
		log.WithError(err).Fatal("game loop failed")
	}

	snap := scene.Snapshot()
	log.WithFields(logrus.Fields{
		"levelNumber": snap.Level,
		"phase":       snap.Phase,
		"countdown":   snap.Countdown,
		"banner":      snap.Banner,
	}).Info("finished")
}

// newProvider picks the room source: a layout directory, a Tiled map, or
// the built-in 3x3 lattice.
func newProvider(layouts, tmx string, watch bool) (roomgraph.Provider, *roomgraph.Watcher, error) {
	switch {
	case layouts != "":
		p, err := roomgraph.NewLayoutProvider(layouts)
		if err != nil {
			return nil, nil, err
		}
		if !watch {
			return p, nil, nil
		}
		w, err := roomgraph.NewWatcher(layouts)
		if err != nil {
			return nil, nil, err
		}
		w.Follow(p)
		return p, w, nil
	case tmx != "":
		g, err := roomgraph.LoadTMX(os.DirFS(filepath.Dir(tmx)), filepath.Base(tmx))
		if err != nil {
			return nil, nil, err
		}
		return roomgraph.StaticProvider{G: g}, nil, nil
	}
	return roomgraph.StaticProvider{G: roomgraph.Lattice(3, 3, 9)}, nil, nil
}
