package roomgraph

import "fmt"

// Graph is the ordered room list of one level plus the grid it lives on.
// The first room is where the player starts.
type Graph struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Rooms  []*Room `yaml:"rooms"`
}

// Provider hands out the room graph for a level number.
type Provider interface {
	Graph(level int) (*Graph, error)
}

// RoomAt returns the first room containing the tile, or nil when the tile is
// outside every room. Shared walls resolve to the earlier room.
func (g *Graph) RoomAt(tx, ty int) *Room {
	for _, r := range g.Rooms {
		if r.Contains(tx, ty) {
			return r
		}
	}
	return nil
}

// IndexOf returns the generation index of a room, or -1.
func (g *Graph) IndexOf(room *Room) int {
	for i, r := range g.Rooms {
		if r == room {
			return i
		}
	}
	return -1
}

// Validate rejects malformed graphs before anything is painted.
func (g *Graph) Validate(minSize, padding int) error {
	if len(g.Rooms) == 0 {
		return &GeometryError{Reason: "graph has no rooms"}
	}
	for i, r := range g.Rooms {
		if err := r.validate(minSize, padding, g.Width, g.Height); err != nil {
			return fmt.Errorf("room %d: %w", i, err)
		}
	}
	return nil
}

// Lattice lays out cols×rows square rooms of the given odd size that share
// their walls, with a door in the middle of every shared wall. It is a fixed
// fixture, not a generator.
func Lattice(cols, rows, size int) *Graph {
	step := size - 1
	g := &Graph{
		Width:  cols*step + 1,
		Height: rows*step + 1,
	}

	mid := size / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := &Room{X: col * step, Y: row * step, Width: size, Height: size}
			if row > 0 {
				r.Doors = append(r.Doors, Door{X: mid, Y: 0})
			}
			if row < rows-1 {
				r.Doors = append(r.Doors, Door{X: mid, Y: size - 1})
			}
			if col > 0 {
				r.Doors = append(r.Doors, Door{X: 0, Y: mid})
			}
			if col < cols-1 {
				r.Doors = append(r.Doors, Door{X: size - 1, Y: mid})
			}
			g.Rooms = append(g.Rooms, r)
		}
	}
	return g
}

// StaticProvider serves the same graph for every level.
type StaticProvider struct {
	G *Graph
}

func (p StaticProvider) Graph(int) (*Graph, error) {
	if p.G == nil {
		return nil, fmt.Errorf("static provider has no graph")
	}
	return p.G, nil
}
