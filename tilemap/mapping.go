// Package tilemap holds tile identifiers, tile groups and the four tile layers
// a level is painted into.
package tilemap

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// TileID is an index into the tileset.
type TileID int

// Empty marks a cell that was never written.
const Empty TileID = -1

// GroupKind tags the TileGroup variant.
type GroupKind int

const (
	GroupSingle   GroupKind = iota // one tile id
	GroupWeighted                  // one id per cell, picked by weight
	GroupGrid                      // fixed rows of ids anchored at the top-left
)

// WeightedTile is one choice of a weighted group.
type WeightedTile struct {
	ID     TileID
	Weight float64
}

// TileGroup is what a paint operation writes: a single tile, a weighted
// choice, or a multi-cell grid.
type TileGroup struct {
	Kind    GroupKind
	Tile    TileID
	Choices []WeightedTile
	Cells   [][]TileID
}

func Single(id TileID) TileGroup {
	return TileGroup{Kind: GroupSingle, Tile: id}
}

func Weighted(choices ...WeightedTile) TileGroup {
	return TileGroup{Kind: GroupWeighted, Choices: choices}
}

func Grid(rows ...[]TileID) TileGroup {
	return TileGroup{Kind: GroupGrid, Cells: rows}
}

// Row is a one-row grid laid out left to right.
func Row(ids ...TileID) TileGroup {
	return Grid(ids)
}

// Column is a one-column grid laid out top to bottom.
func Column(ids ...TileID) TileGroup {
	rows := make([][]TileID, len(ids))
	for i, id := range ids {
		rows[i] = []TileID{id}
	}
	return Grid(rows...)
}

// Size returns the footprint of the group in tiles.
func (g TileGroup) Size() (w, h int) {
	if g.Kind != GroupGrid {
		return 1, 1
	}
	for _, row := range g.Cells {
		w = max(w, len(row))
	}
	return w, len(g.Cells)
}

// Contains reports whether id can be produced by the group.
func (g TileGroup) Contains(id TileID) bool {
	switch g.Kind {
	case GroupSingle:
		return g.Tile == id
	case GroupWeighted:
		for _, c := range g.Choices {
			if c.ID == id {
				return true
			}
		}
	case GroupGrid:
		for _, row := range g.Cells {
			for _, cell := range row {
				if cell == id {
					return true
				}
			}
		}
	}
	return false
}

// pick resolves a single-cell group to one id. Without a random source a
// weighted group yields its heaviest choice.
func (g TileGroup) pick(rng *rand.Rand) TileID {
	if g.Kind == GroupSingle {
		return g.Tile
	}
	if len(g.Choices) == 0 {
		return Empty
	}

	if rng == nil {
		best := g.Choices[0]
		for _, c := range g.Choices[1:] {
			if c.Weight > best.Weight {
				best = c
			}
		}
		return best.ID
	}

	total := 0.0
	for _, c := range g.Choices {
		total += c.Weight
	}
	r := rng.Float64() * total
	for _, c := range g.Choices {
		if r < c.Weight {
			return c.ID
		}
		r -= c.Weight
	}
	return g.Choices[len(g.Choices)-1].ID
}

// WallTiles are the wall roles of a room outline.
type WallTiles struct {
	TopLeft, TopRight, BottomRight, BottomLeft TileID
	Top, Left, Right, Bottom                   TileID
}

// DoorTiles are the runs painted over a wall edge for each door side,
// oriented along the edge: a row for top and bottom, a column for left and right.
type DoorTiles struct {
	Top, Bottom, Left, Right TileGroup
}

// Mapping binds symbolic tile roles to tileset ids.
type Mapping struct {
	Blank     TileID
	Floor     TileID
	FloorFill TileGroup // what room interiors are filled with
	Wall      WallTiles
	Door      DoorTiles
	Chest     TileGroup
	Finish    TileID
	Bookcase  TileGroup
	Sacks     TileID

	exclusion mapset.Set[TileID]
}

// DefaultMapping returns the lab tileset mapping.
func DefaultMapping() *Mapping {
	m := &Mapping{
		Blank:     168,
		Floor:     70,
		FloorFill: Single(70),
		Wall: WallTiles{
			TopLeft:     115,
			TopRight:    117,
			BottomRight: 149,
			BottomLeft:  147,
			Top:         116,
			Left:        131,
			Right:       133,
			Bottom:      148,
		},
		Door: DoorTiles{
			Top:    Row(117, 70, 115),
			Bottom: Row(149, 70, 147),
			Left:   Column(147, 70, 115),
			Right:  Column(149, 70, 117),
		},
		Chest:    Column(179, 195),
		Finish:   138,
		Bookcase: Column(82, 98),
		Sacks:    83,
	}
	// Floor plus the corner variants that face the room interior stay walkable.
	m.SetCollisionExclusion(Empty, m.Floor, m.Wall.TopRight, m.Wall.TopLeft, m.Wall.BottomLeft, m.Wall.BottomRight)
	return m
}

// SetCollisionExclusion replaces the set of ids that never collide.
func (m *Mapping) SetCollisionExclusion(ids ...TileID) {
	m.exclusion = mapset.New[TileID]()
	for _, id := range ids {
		m.exclusion.Put(id)
	}
}

// Collides reports whether a tile id blocks movement.
func (m *Mapping) Collides(id TileID) bool {
	if m.exclusion.Size() == 0 {
		return id != Empty
	}
	return !m.exclusion.Has(id)
}
