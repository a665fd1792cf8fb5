package systems

import (
	"github.com/automoto/labhunt/components"
	cfg "github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/logger"
	"github.com/automoto/labhunt/progression"
	"github.com/automoto/labhunt/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups queues a pickup event on every unfound item or power-up the
// player hitbox overlaps, unless the clock has already run out.
func UpdatePickups(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	playerEntry, ok := tags.Player.First(ecs.World)
	if level == nil || !ok || level.State.Expired() {
		return
	}
	obj := components.Object.Get(playerEntry).Object

	for _, tag := range []string{tags.ResolvItem, tags.ResolvPowerUp} {
		check := obj.Check(0, 0, tag)
		if check == nil {
			continue
		}
		for _, other := range check.ObjectsByTags(tag) {
			if !overlaps(obj.X, obj.Y, obj.W, obj.H, other) {
				continue
			}
			entry, ok := other.Data.(*donburi.Entry)
			if !ok || entry == nil || !entry.Valid() {
				continue
			}
			if components.Findable.Get(entry).Found || entry.HasComponent(components.PickupEvent) {
				continue
			}
			donburi.Add(entry, components.PickupEvent, &components.PickupEventData{Frame: level.Frame})
		}
	}
}

// UpdatePickupEvents applies and clears the queued pickup events.
func UpdatePickupEvents(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}

	// Collect first; removing a component while iterating moves entries.
	var pending []*donburi.Entry
	for e := range components.PickupEvent.Iter(ecs.World) {
		pending = append(pending, e)
	}

	for _, e := range pending {
		event := components.PickupEvent.Get(e)
		frame := event.Frame
		donburi.Remove[components.PickupEventData](e, components.PickupEvent)

		// A run-out clock ends the level this frame; the pickup does not count.
		findable := components.Findable.Get(e)
		if findable.Found || level.State.Expired() {
			continue
		}
		findable.Found = true
		findable.Visible = false

		obj := components.Object.Get(e).Object
		if obj.Space != nil {
			obj.Space.Remove(obj)
		}

		log := logger.For("pickup").WithFields(logrus.Fields{
			"levelNumber": level.State.Level,
			"frame":       frame,
			"tileX":       findable.TileX,
			"tileY":       findable.TileY,
		})

		switch findable.Kind {
		case cfg.KindItem:
			level.State = progression.CollectItem(level.State)
			log.WithFields(logrus.Fields{
				"item":      findable.Name,
				"countdown": level.State.Countdown,
			}).Info("item collected")
		case cfg.KindPowerUp:
			effect := progression.RollPowerUp(level.Rand)
			log.WithField("effect", effect).Info("power-up collected")
			applyPowerUp(ecs, level, effect)
		}
	}
}
