// Package fog keeps the shadow layer and entity visibility in step with the
// room the player occupies.
package fog

import (
	"github.com/automoto/labhunt/config"
	"github.com/automoto/labhunt/roomgraph"
	"github.com/automoto/labhunt/scatter"
	"github.com/automoto/labhunt/tilemap"
	"github.com/zyedidia/generic/mapset"
)

// Tracker owns the active room and the set of rooms already explored.
type Tracker struct {
	graph    *roomgraph.Graph
	shadow   *tilemap.Layer
	active   *roomgraph.Room
	explored mapset.Set[*roomgraph.Room]
}

// NewTracker obscures every room footprint on the shadow layer.
func NewTracker(g *roomgraph.Graph, shadow *tilemap.Layer) *Tracker {
	t := &Tracker{
		graph:    g,
		shadow:   shadow,
		explored: mapset.New[*roomgraph.Room](),
	}
	for _, r := range g.Rooms {
		t.paint(r, config.Fog.UnexploredAlpha)
	}
	return t
}

func (t *Tracker) Active() *roomgraph.Room {
	return t.active
}

// Explored reports whether the player has left the room at least once.
func (t *Tracker) Explored(r *roomgraph.Room) bool {
	return t.explored.Has(r)
}

// SetActiveRoom reveals room and dims the room being left. A nil room keeps
// the previous active room. It reports whether the active room changed.
func (t *Tracker) SetActiveRoom(room *roomgraph.Room) bool {
	if room == nil || room == t.active {
		return false
	}
	if t.active != nil {
		t.explored.Put(t.active)
	}
	t.active = room

	for _, r := range t.graph.Rooms {
		if r == room {
			continue
		}
		if t.explored.Has(r) {
			t.paint(r, config.Fog.ExploredAlpha)
		} else {
			t.paint(r, config.Fog.UnexploredAlpha)
		}
	}
	// Last, so walls shared with a neighbour stay clear.
	t.paint(room, config.Fog.ActiveAlpha)
	return true
}

// Follow looks up the room holding the tile and makes it active.
func (t *Tracker) Follow(tx, ty int) *roomgraph.Room {
	t.SetActiveRoom(t.graph.RoomAt(tx, ty))
	return t.active
}

func (t *Tracker) paint(r *roomgraph.Room, alpha float32) {
	t.shadow.SetAlpha(alpha, r.X, r.Y, r.Width, r.Height)
}

// Visible is the whole visibility rule: an entity shows only while unfound
// and inside the active room.
func Visible(found bool, entityRoom, active *roomgraph.Room) bool {
	return !found && entityRoom != nil && entityRoom == active
}

// RefreshEntityVisibility recomputes every entity from its stored position.
func RefreshEntityVisibility(g *roomgraph.Graph, world *tilemap.World, entities []*scatter.Entity, active *roomgraph.Room) {
	for _, e := range entities {
		if e.Found {
			e.Visible = false
			continue
		}
		tx, ty := world.WorldToTile(e.X, e.Y)
		e.Visible = Visible(false, g.RoomAt(tx, ty), active)
	}
}
