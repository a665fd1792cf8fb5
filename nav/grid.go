// Package nav finds tile paths through a painted level.
package nav

import (
	"math"

	astar "github.com/beefsack/go-astar"

	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/tilemap"
)

// Grid marks which tiles the player can stand on.
type Grid struct {
	Width, Height int
	TileSize      float64
	Nodes         [][]*Node
}

// Node is one tile. Implements astar.Pather.
type Node struct {
	X, Y     int
	Walkable bool
	Grid     *Grid
}

var dirs = []struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// PathNeighbors returns the walkable tiles sharing an edge with n. Diagonal
// steps would clip wall corners, so there are none.
func (n *Node) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range dirs {
		nx, ny := n.X+d.dx, n.Y+d.dy
		if nx < 0 || nx >= n.Grid.Width || ny < 0 || ny >= n.Grid.Height {
			continue
		}
		if neighbor := n.Grid.Nodes[ny][nx]; neighbor.Walkable {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	return 1
}

// PathEstimatedCost is the Manhattan distance, exact on an empty grid.
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*Node)
	return float64(absInt(t.X-n.X) + absInt(t.Y-n.Y))
}

// NewGrid builds the grid from the solid layers. Tiles outside every room are
// never walkable. Tiles in open are walkable even if a layer holds a solid
// tile there, which is how trigger tiles such as the exit marker are kept
// reachable.
func NewGrid(world *tilemap.World, g *roomgraph.Graph, open ...[2]int) *Grid {
	grid := &Grid{
		Width:    world.Width,
		Height:   world.Height,
		TileSize: float64(world.TileSize),
		Nodes:    make([][]*Node, world.Height),
	}
	for y := 0; y < world.Height; y++ {
		grid.Nodes[y] = make([]*Node, world.Width)
		for x := 0; x < world.Width; x++ {
			grid.Nodes[y][x] = &Node{
				X:        x,
				Y:        y,
				Walkable: !world.Solid(x, y) && g.RoomAt(x, y) != nil,
				Grid:     grid,
			}
		}
	}
	for _, t := range open {
		if grid.InBounds(t[0], t[1]) {
			grid.Nodes[t[1]][t[0]].Walkable = true
		}
	}
	return grid
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

func (g *Grid) Walkable(x, y int) bool {
	return g.InBounds(x, y) && g.Nodes[y][x].Walkable
}

// FindPath returns the tiles from start to goal, both included, or nil when
// the goal cannot be reached. A goal inside solid geometry is moved to the
// nearest walkable tile.
func (g *Grid) FindPath(sx, sy, gx, gy int) []*Node {
	sx, sy = clampInt(sx, 0, g.Width-1), clampInt(sy, 0, g.Height-1)
	gx, gy = clampInt(gx, 0, g.Width-1), clampInt(gy, 0, g.Height-1)

	start := g.Nodes[sy][sx]
	goal := g.Nodes[gy][gx]
	if !start.Walkable {
		start = g.NearestWalkable(sx, sy)
	}
	if !goal.Walkable {
		goal = g.NearestWalkable(gx, gy)
	}
	if start == nil || goal == nil {
		return nil
	}
	if start == goal {
		return []*Node{start}
	}

	path, _, found := astar.Path(start, goal)
	if !found {
		return nil
	}

	result := make([]*Node, len(path))
	for i, p := range path {
		result[i] = p.(*Node)
	}
	if result[0] != start {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}
	return result
}

// NearestWalkable searches growing squares around (x, y).
func (g *Grid) NearestWalkable(x, y int) *Node {
	var best *Node
	bestDist := math.MaxInt
	for radius := 1; radius < 10 && best == nil; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if !g.Walkable(x+dx, y+dy) {
					continue
				}
				if d := absInt(dx) + absInt(dy); d < bestDist {
					best, bestDist = g.Nodes[y+dy][x+dx], d
				}
			}
		}
	}
	return best
}

// TileCenter converts tile coordinates to the pixel center of the tile.
func (g *Grid) TileCenter(x, y int) (float64, float64) {
	return float64(x)*g.TileSize + g.TileSize/2,
		float64(y)*g.TileSize + g.TileSize/2
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
