package roomgraph

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Object group names read from a Tiled map.
const (
	TMXRoomsGroup = "Rooms"
	TMXDoorsGroup = "Doors"
)

// LoadTMX reads a room graph from a Tiled map. Rooms are rectangle objects in
// the "Rooms" object group, ordered by their "order" property and then by
// object id. Doors are objects in the "Doors" group placed on a wall tile; a
// door on a shared wall belongs to every room whose outline holds it.
func LoadTMX(fsys fs.FS, tmxPath string) (*Graph, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	g := &Graph{Width: levelMap.Width, Height: levelMap.Height}

	type ordered struct {
		order int
		id    uint32
		room  *Room
	}
	var rooms []ordered
	var doors [][2]int

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case TMXRoomsGroup:
			for _, o := range og.Objects {
				rooms = append(rooms, ordered{
					order: o.Properties.GetInt("order"),
					id:    o.ID,
					room: &Room{
						X:      int(o.X / tileW),
						Y:      int(o.Y / tileH),
						Width:  int(o.Width / tileW),
						Height: int(o.Height / tileH),
					},
				})
			}
		case TMXDoorsGroup:
			for _, o := range og.Objects {
				doors = append(doors, [2]int{int(o.X / tileW), int(o.Y / tileH)})
			}
		}
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("TMX %s: no objects in %q group", tmxPath, TMXRoomsGroup)
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		if rooms[i].order != rooms[j].order {
			return rooms[i].order < rooms[j].order
		}
		return rooms[i].id < rooms[j].id
	})
	for _, r := range rooms {
		g.Rooms = append(g.Rooms, r.room)
	}

	for _, d := range doors {
		owners := 0
		for _, r := range g.Rooms {
			if !onOutline(r, d[0], d[1]) {
				continue
			}
			r.Doors = append(r.Doors, Door{X: d[0] - r.X, Y: d[1] - r.Y})
			owners++
		}
		if owners == 0 {
			return nil, fmt.Errorf("TMX %s: door at tile (%d,%d): %w", tmxPath, d[0], d[1],
				&GeometryError{Door: &Door{X: d[0], Y: d[1]}, Reason: "door is not on any room outline"})
		}
	}

	return g, nil
}

func onOutline(r *Room, tx, ty int) bool {
	if !r.Contains(tx, ty) {
		return false
	}
	return tx == r.Left() || tx == r.Right() || ty == r.Top() || ty == r.Bottom()
}
