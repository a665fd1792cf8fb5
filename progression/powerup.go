package progression

import (
	"math"
	"math/rand"

	"github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/scatter"
)

// RollPowerUp flips the coin that decides what a power-up does.
func RollPowerUp(rng *rand.Rand) config.PowerUpEffectID {
	if rng.Float64() < config.PowerUp.HintChance {
		return config.EffectDirectionHint
	}
	return config.EffectSpeedBoost
}

// NearestItem returns the closest unfound item by straight-line distance, or
// nil when every item is found.
func NearestItem(x, y float64, items []*scatter.Entity) *scatter.Entity {
	var best *scatter.Entity
	bestDist := math.Inf(1)
	for _, it := range items {
		if it.Found || it.Kind != config.KindItem {
			continue
		}
		if d := math.Hypot(it.X-x, it.Y-y); d < bestDist {
			best, bestDist = it, d
		}
	}
	return best
}

// HintAngle is the heading in radians from (fromX, fromY) towards (toX, toY),
// with y growing downwards.
func HintAngle(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX)
}

// SpeedFor returns the player speed with or without the boost. Boosts do not
// stack.
func SpeedFor(boosted bool) float64 {
	if boosted {
		return config.Player.Speed + config.PowerUp.SpeedBoost
	}
	return config.Player.Speed
}
