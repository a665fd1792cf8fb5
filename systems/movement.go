package systems

import (
	"math"

	"github.com/automoto/labhunt/components"
	"github.com/automoto/labhunt/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement moves the player by its input at the current speed, one
// axis at a time so it slides along walls, then refreshes the player tile.
func UpdateMovement(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		input := components.Input.Get(e)
		obj := components.Object.Get(e).Object

		if !player.Frozen {
			dx, dy := stepFor(input, player.Speed*frameSeconds())
			obj.X += resolveAxis(obj, dx, 0)
			obj.Y += resolveAxis(obj, 0, dy)
			obj.Update()
		}

		tx, ty := level.World.WorldToTile(obj.X+obj.W/2, obj.Y+obj.H/2)
		player.TileX, player.TileY = tx, ty
		if room := level.Graph.RoomAt(tx, ty); room != nil {
			player.Room = room
		}
	})
}

// stepFor turns the input into this frame's displacement.
func stepFor(input *components.InputData, step float64) (float64, float64) {
	length := math.Hypot(input.Move.X, input.Move.Y)
	if length == 0 || step <= 0 {
		return 0, 0
	}
	if input.Limit > 0 && step > input.Limit {
		step = input.Limit
	}
	return input.Move.X / length * step, input.Move.Y / length * step
}

// resolveAxis returns how far obj may travel along one axis before it
// touches a solid.
func resolveAxis(obj *resolv.Object, dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return 0
	}
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return dx + dy
	}

	allowed := dx + dy
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlaps(obj.X+dx, obj.Y+dy, obj.W, obj.H, solid) {
			continue
		}
		switch {
		case dx > 0:
			allowed = math.Min(allowed, solid.X-(obj.X+obj.W))
		case dx < 0:
			allowed = math.Max(allowed, solid.X+solid.W-obj.X)
		case dy > 0:
			allowed = math.Min(allowed, solid.Y-(obj.Y+obj.H))
		default:
			allowed = math.Max(allowed, solid.Y+solid.H-obj.Y)
		}
	}

	// Never move backwards out of an overlap that was already there.
	if (dx+dy > 0 && allowed < 0) || (dx+dy < 0 && allowed > 0) {
		return 0
	}
	return allowed
}

// overlaps is a strict AABB test; touching edges do not count.
func overlaps(x, y, w, h float64, other *resolv.Object) bool {
	return x < other.X+other.W && x+w > other.X &&
		y < other.Y+other.H && y+h > other.Y
}
