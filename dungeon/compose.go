// Package dungeon paints a room graph into tile layers.
package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/tilemap"
)

// Compose returns the tile writes for the static geometry of g. The whole
// graph is validated before anything is emitted, so a malformed room yields
// no plan at all.
//
// Rooms are emitted in generation order: interior floor, corners and edges on
// Ground with floor mirrored beneath them. Door runs are emitted after every
// room so a neighbour sharing the wall cannot paint over an opening.
func Compose(g *roomgraph.Graph, m *tilemap.Mapping) (*tilemap.Plan, error) {
	if err := g.Validate(config.Dungeon.MinRoomSize, config.Dungeon.DoorPadding); err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	plan := &tilemap.Plan{}
	for _, r := range g.Rooms {
		composeRoom(plan, r, m)
	}
	for _, r := range g.Rooms {
		for _, d := range r.Doors {
			side, err := roomgraph.ClassifyDoor(r, d, config.Dungeon.DoorPadding)
			if err != nil {
				return nil, fmt.Errorf("compose: %w", err)
			}
			composeDoor(plan, r, d, side, m)
		}
	}
	return plan, nil
}

func composeRoom(plan *tilemap.Plan, r *roomgraph.Room, m *tilemap.Mapping) {
	floor := tilemap.Single(m.Floor)
	left, right, top, bottom := r.Left(), r.Right(), r.Top(), r.Bottom()
	innerW, innerH := r.Width-2, r.Height-2

	plan.Fill(tilemap.LayerFloor, m.FloorFill, left+1, top+1, innerW, innerH)

	corners := []struct {
		id   tilemap.TileID
		x, y int
	}{
		{m.Wall.TopLeft, left, top},
		{m.Wall.TopRight, right, top},
		{m.Wall.BottomRight, right, bottom},
		{m.Wall.BottomLeft, left, bottom},
	}
	for _, c := range corners {
		plan.Put(tilemap.LayerGround, tilemap.Single(c.id), c.x, c.y)
		plan.Put(tilemap.LayerFloor, floor, c.x, c.y)
	}

	edges := []struct {
		id         tilemap.TileID
		x, y, w, h int
	}{
		{m.Wall.Top, left + 1, top, innerW, 1},
		{m.Wall.Bottom, left + 1, bottom, innerW, 1},
		{m.Wall.Left, left, top + 1, 1, innerH},
		{m.Wall.Right, right, top + 1, 1, innerH},
	}
	for _, e := range edges {
		plan.Fill(tilemap.LayerGround, tilemap.Single(e.id), e.x, e.y, e.w, e.h)
		plan.Fill(tilemap.LayerFloor, floor, e.x, e.y, e.w, e.h)
	}
}

// composeDoor anchors the three-tile door run so its middle cell lands on the
// door tile.
func composeDoor(plan *tilemap.Plan, r *roomgraph.Room, d roomgraph.Door, side roomgraph.Side, m *tilemap.Mapping) {
	x, y := r.X+d.X, r.Y+d.Y
	switch side {
	case roomgraph.SideTop:
		plan.Put(tilemap.LayerGround, m.Door.Top, x-1, y)
	case roomgraph.SideBottom:
		plan.Put(tilemap.LayerGround, m.Door.Bottom, x-1, y)
	case roomgraph.SideLeft:
		plan.Put(tilemap.LayerGround, m.Door.Left, x, y-1)
	case roomgraph.SideRight:
		plan.Put(tilemap.LayerGround, m.Door.Right, x, y-1)
	}
}

// Build paints g into a fresh world. Floor and Shadow start blank.
func Build(g *roomgraph.Graph, m *tilemap.Mapping, rng *rand.Rand) (*tilemap.World, error) {
	plan, err := Compose(g, m)
	if err != nil {
		return nil, err
	}
	world := tilemap.NewWorld(g.Width, g.Height, config.Dungeon.TileSize, m)
	world.Apply(plan, rng)
	return world, nil
}
