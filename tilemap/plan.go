package tilemap

import "math/rand"

// OpKind distinguishes anchored group writes from rectangle fills.
type OpKind int

const (
	OpPut OpKind = iota
	OpFill
)

// Op is one tile-write instruction against a named layer.
type Op struct {
	Layer LayerName
	Kind  OpKind
	X, Y  int
	W, H  int // only used by OpFill
	Group TileGroup
}

// Plan is an ordered list of tile writes. Later writes win.
type Plan struct {
	Ops []Op
}

func (p *Plan) Put(layer LayerName, g TileGroup, x, y int) {
	p.Ops = append(p.Ops, Op{Layer: layer, Kind: OpPut, X: x, Y: y, Group: g})
}

func (p *Plan) Fill(layer LayerName, g TileGroup, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	p.Ops = append(p.Ops, Op{Layer: layer, Kind: OpFill, X: x, Y: y, W: w, H: h, Group: g})
}

// Append adds the ops of other after the ops of p.
func (p *Plan) Append(other *Plan) {
	if other == nil {
		return
	}
	p.Ops = append(p.Ops, other.Ops...)
}

// OnLayer returns the ops that target layer, in order.
func (p *Plan) OnLayer(layer LayerName) []Op {
	var out []Op
	for _, op := range p.Ops {
		if op.Layer == layer {
			out = append(out, op)
		}
	}
	return out
}

// World owns the four layers of a level.
type World struct {
	Width    int
	Height   int
	TileSize int
	Mapping  *Mapping
	layers   map[LayerName]*Layer
}

// NewWorld creates the layers; Floor and Shadow start filled with the blank tile.
func NewWorld(width, height, tileSize int, m *Mapping) *World {
	w := &World{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Mapping:  m,
		layers:   make(map[LayerName]*Layer, len(LayerNames)),
	}
	for _, name := range LayerNames {
		w.layers[name] = NewLayer(name, width, height)
	}
	w.layers[LayerFloor].Fill(Single(m.Blank), 0, 0, width, height, nil)
	w.layers[LayerShadow].Fill(Single(m.Blank), 0, 0, width, height, nil)
	return w
}

func (w *World) Layer(name LayerName) *Layer {
	return w.layers[name]
}

// Apply executes a plan in order.
func (w *World) Apply(p *Plan, rng *rand.Rand) {
	for _, op := range p.Ops {
		layer, ok := w.layers[op.Layer]
		if !ok {
			continue
		}
		switch op.Kind {
		case OpFill:
			layer.Fill(op.Group, op.X, op.Y, op.W, op.H, rng)
		default:
			layer.PutGroup(op.Group, op.X, op.Y, rng)
		}
	}
}

// Solid reports whether the Ground or Stuff layer blocks the tile.
func (w *World) Solid(x, y int) bool {
	return w.Mapping.Collides(w.layers[LayerGround].Get(x, y)) ||
		w.Mapping.Collides(w.layers[LayerStuff].Get(x, y))
}

// TileToWorld returns the pixel position of the top-left corner of a tile.
func (w *World) TileToWorld(tx, ty int) (float64, float64) {
	return float64(tx * w.TileSize), float64(ty * w.TileSize)
}

// WorldToTile returns the tile containing a pixel position.
func (w *World) WorldToTile(x, y float64) (int, int) {
	size := float64(w.TileSize)
	return floorDiv(x, size), floorDiv(y, size)
}

func floorDiv(v, size float64) int {
	q := int(v / size)
	if v < 0 && float64(q)*size != v {
		q--
	}
	return q
}

// PixelWidth and PixelHeight are the world extents in pixels.
func (w *World) PixelWidth() int  { return w.Width * w.TileSize }
func (w *World) PixelHeight() int { return w.Height * w.TileSize }
