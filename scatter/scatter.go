// Package scatter assigns collectibles, power-ups and props to the rooms of a
// level.
package scatter

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/tilemap"
	"github.com/zyedidia/generic/mapset"
)

// ErrConfiguration is matched by every ConfigError.
var ErrConfiguration = errors.New("configuration error")

// ConfigError reports distribution settings that can never be satisfied.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// Entity is one placed collectible or power-up. It is never removed during a
// level; collecting it only sets Found.
type Entity struct {
	Kind    config.EntityKind
	Name    string
	Room    *roomgraph.Room
	TileX   int
	TileY   int
	X, Y    float64 // top-left of the tile in pixels
	Found   bool
	Visible bool
}

func newEntity(kind config.EntityKind, name string, room *roomgraph.Room) *Entity {
	tx, ty := room.CenterX(), room.CenterY()
	return &Entity{
		Kind:  kind,
		Name:  name,
		Room:  room,
		TileX: tx,
		TileY: ty,
		X:     float64(tx * config.Dungeon.TileSize),
		Y:     float64(ty * config.Dungeon.TileSize),
	}
}

// Prop is a decoration written to the Stuff layer, anchored at its top-left.
type Prop struct {
	Kind  config.PropKind
	Room  *roomgraph.Room
	TileX int
	TileY int
}

// Placement is the result of one distribution.
type Placement struct {
	Start      *roomgraph.Room
	Exit       *roomgraph.Room
	ItemRooms  []*roomgraph.Room
	DecorRooms []*roomgraph.Room
	Items      []*Entity
	PowerUps   []*Entity
	Props      []Prop
	Plan       *tilemap.Plan // Stuff layer writes only
}

// Entities returns items followed by power-ups.
func (p *Placement) Entities() []*Entity {
	out := make([]*Entity, 0, len(p.Items)+len(p.PowerUps))
	out = append(out, p.Items...)
	return append(out, p.PowerUps...)
}

// Distribute reserves the first room as the start and a random room as the
// exit, puts one unique catalog item in each of config.Distribution.ItemCount
// further rooms and decorates a share of what is left. Impossible settings
// are reported before any random draw.
func Distribute(g *roomgraph.Graph, m *tilemap.Mapping, catalog []string, rng *rand.Rand) (*Placement, error) {
	cfg := config.Distribution
	if err := check(g, catalog, cfg.ItemCount); err != nil {
		return nil, err
	}

	rooms := append([]*roomgraph.Room(nil), g.Rooms...)
	p := &Placement{Plan: &tilemap.Plan{}}

	p.Start, rooms = rooms[0], rooms[1:]
	p.Exit = removeRandom(&rooms, rng)
	for i := 0; i < cfg.ItemCount; i++ {
		p.ItemRooms = append(p.ItemRooms, removeRandom(&rooms, rng))
	}

	for i, name := range drawNames(catalog, cfg.ItemCount, rng) {
		p.Items = append(p.Items, newEntity(config.KindItem, name, p.ItemRooms[i]))
	}

	rng.Shuffle(len(rooms), func(i, j int) { rooms[i], rooms[j] = rooms[j], rooms[i] })
	p.DecorRooms = rooms[:int(float64(len(rooms))*cfg.DecorationShare)]
	for _, r := range p.DecorRooms {
		p.decorate(r, m, rng)
	}

	p.place(config.PropFinish, p.Exit, tilemap.Single(m.Finish), p.Exit.CenterX(), p.Exit.CenterY())
	return p, nil
}

func check(g *roomgraph.Graph, catalog []string, itemCount int) error {
	if itemCount <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("item count must be positive, got %d", itemCount)}
	}

	unique := mapset.New[string]()
	for _, name := range catalog {
		unique.Put(name)
	}
	if unique.Size() < itemCount {
		return &ConfigError{Reason: fmt.Sprintf("catalog has %d unique items, %d requested", unique.Size(), itemCount)}
	}

	if need := 2 + itemCount; len(g.Rooms) < need {
		return &ConfigError{Reason: fmt.Sprintf("%d rooms cannot hold a start, an exit and %d item rooms", len(g.Rooms), itemCount)}
	}
	return nil
}

// drawNames picks n distinct names by drawing catalog indices until n
// different names have been seen. check guarantees the catalog can satisfy n.
func drawNames(catalog []string, n int, rng *rand.Rand) []string {
	seen := mapset.New[string]()
	names := make([]string, 0, n)
	for len(names) < n {
		name := catalog[rng.Intn(len(catalog))]
		if seen.Has(name) {
			continue
		}
		seen.Put(name)
		names = append(names, name)
	}
	return names
}

func removeRandom(rooms *[]*roomgraph.Room, rng *rand.Rand) *roomgraph.Room {
	s := *rooms
	i := rng.Intn(len(s))
	r := s[i]
	*rooms = append(s[:i:i], s[i+1:]...)
	return r
}

// decorate uses a single draw both to pick the prop and to gate the power-up.
func (p *Placement) decorate(r *roomgraph.Room, m *tilemap.Mapping, rng *rand.Rand) {
	cfg := config.Distribution
	cx, cy := r.CenterX(), r.CenterY()
	roll := rng.Float64()

	switch {
	case roll <= cfg.ChestChance:
		p.place(config.PropChest, r, m.Chest, cx, cy)
	case roll <= cfg.SackChance:
		margin := cfg.SackWallMargin
		x := between(rng, r.Left()+margin, r.Right()-margin)
		y := between(rng, r.Top()+margin, r.Bottom()-margin)
		p.place(config.PropSack, r, tilemap.Single(m.Sacks), x, y)
	default:
		if r.Height >= cfg.TallRoomHeight {
			p.place(config.PropBookcase, r, m.Bookcase, cx-1, cy+1)
			p.place(config.PropBookcase, r, m.Bookcase, cx+1, cy+1)
			p.place(config.PropBookcase, r, m.Bookcase, cx-1, cy-2)
			p.place(config.PropBookcase, r, m.Bookcase, cx+1, cy-2)
		} else {
			p.place(config.PropBookcase, r, m.Bookcase, cx-1, cy-1)
			p.place(config.PropBookcase, r, m.Bookcase, cx+1, cy-1)
		}
	}

	if roll <= cfg.PowerUpChance {
		p.PowerUps = append(p.PowerUps, newEntity(config.KindPowerUp, "powerup", r))
	}
}

func (p *Placement) place(kind config.PropKind, r *roomgraph.Room, g tilemap.TileGroup, x, y int) {
	p.Plan.Put(tilemap.LayerStuff, g, x, y)
	p.Props = append(p.Props, Prop{Kind: kind, Room: r, TileX: x, TileY: y})
}

// between returns an integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
