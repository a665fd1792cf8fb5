package tilemap

import "math/rand"

// LayerName identifies one of the four level planes.
type LayerName string

const (
	LayerFloor  LayerName = "Floor"
	LayerGround LayerName = "Ground"
	LayerStuff  LayerName = "Stuff"
	LayerShadow LayerName = "Shadow"
)

// LayerNames lists the planes in paint order.
var LayerNames = []LayerName{LayerFloor, LayerGround, LayerStuff, LayerShadow}

// Layer is a named 2D grid of tile ids with a per-tile alpha.
type Layer struct {
	Name   LayerName
	Width  int
	Height int
	tiles  []TileID
	alpha  []float32
}

// NewLayer returns a layer with every cell Empty and fully opaque.
func NewLayer(name LayerName, width, height int) *Layer {
	l := &Layer{
		Name:   name,
		Width:  width,
		Height: height,
		tiles:  make([]TileID, width*height),
		alpha:  make([]float32, width*height),
	}
	for i := range l.tiles {
		l.tiles[i] = Empty
		l.alpha[i] = 1
	}
	return l
}

func (l *Layer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Width && y < l.Height
}

// Get returns Empty outside the layer.
func (l *Layer) Get(x, y int) TileID {
	if !l.InBounds(x, y) {
		return Empty
	}
	return l.tiles[y*l.Width+x]
}

// Put writes one tile; writes outside the layer are dropped.
func (l *Layer) Put(id TileID, x, y int) {
	if !l.InBounds(x, y) {
		return
	}
	l.tiles[y*l.Width+x] = id
}

// Fill writes group into every cell of the w×h rectangle at (x, y). Weighted
// groups pick per cell.
func (l *Layer) Fill(g TileGroup, x, y, w, h int, rng *rand.Rand) {
	for ty := y; ty < y+h; ty++ {
		for tx := x; tx < x+w; tx++ {
			if g.Kind == GroupGrid {
				l.PutGroup(g, tx, ty, rng)
				continue
			}
			l.Put(g.pick(rng), tx, ty)
		}
	}
}

// PutGroup writes a group anchored at its top-left cell.
func (l *Layer) PutGroup(g TileGroup, x, y int, rng *rand.Rand) {
	if g.Kind != GroupGrid {
		l.Put(g.pick(rng), x, y)
		return
	}
	for dy, row := range g.Cells {
		for dx, id := range row {
			l.Put(id, x+dx, y+dy)
		}
	}
}

// Alpha returns 1 outside the layer.
func (l *Layer) Alpha(x, y int) float32 {
	if !l.InBounds(x, y) {
		return 1
	}
	return l.alpha[y*l.Width+x]
}

// SetAlpha sets the alpha of every tile in the w×h rectangle at (x, y).
func (l *Layer) SetAlpha(a float32, x, y, w, h int) {
	for ty := y; ty < y+h; ty++ {
		for tx := x; tx < x+w; tx++ {
			if l.InBounds(tx, ty) {
				l.alpha[ty*l.Width+tx] = a
			}
		}
	}
}

// Count returns how many cells hold id.
func (l *Layer) Count(id TileID) int {
	n := 0
	for _, t := range l.tiles {
		if t == id {
			n++
		}
	}
	return n
}
