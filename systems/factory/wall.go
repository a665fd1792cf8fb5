package factory

import (
	"github.com/automoto/labhunt/archetypes"
	"github.com/automoto/labhunt/components"
	"github.com/automoto/labhunt/tags"
	"github.com/automoto/labhunt/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}

// CreateWalls turns every solid tile into collision, one wall per horizontal
// run. Tiles in skip stay open; they are triggers, not walls.
func CreateWalls(ecs *ecs.ECS, world *tilemap.World, skip ...[2]int) int {
	open := make(map[[2]int]bool, len(skip))
	for _, t := range skip {
		open[t] = true
	}
	solid := func(x, y int) bool {
		return !open[[2]int{x, y}] && world.Solid(x, y)
	}

	size := float64(world.TileSize)
	count := 0
	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; {
			if !solid(x, y) {
				x++
				continue
			}
			start := x
			for x < world.Width && solid(x, y) {
				x++
			}
			CreateWall(ecs, float64(start)*size, float64(y)*size, float64(x-start)*size, size)
			count++
		}
	}
	return count
}
