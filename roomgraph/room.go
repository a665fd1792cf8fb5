// Package roomgraph is the read-only view of the rooms and doors produced by
// an external dungeon layout generator.
package roomgraph

import (
	"errors"
	"fmt"
)

// Door is a door location relative to its room's top-left corner.
type Door struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Room is a rectangle of tiles whose outline is wall. X and Y are the
// top-left tile.
type Room struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Doors  []Door `yaml:"doors"`
}

func (r *Room) Left() int    { return r.X }
func (r *Room) Right() int   { return r.X + r.Width - 1 }
func (r *Room) Top() int     { return r.Y }
func (r *Room) Bottom() int  { return r.Y + r.Height - 1 }
func (r *Room) CenterX() int { return r.X + r.Width/2 }
func (r *Room) CenterY() int { return r.Y + r.Height/2 }

// Contains reports whether the tile lies within the room's inclusive bounds.
func (r *Room) Contains(tx, ty int) bool {
	return tx >= r.Left() && tx <= r.Right() && ty >= r.Top() && ty <= r.Bottom()
}

func (r *Room) String() string {
	return fmt.Sprintf("room(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Side is the wall a door sits on.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// ErrGeometry is matched by every GeometryError.
var ErrGeometry = errors.New("geometry violation")

// GeometryError reports a room or door the generator should never produce.
type GeometryError struct {
	Room   Room
	Door   *Door
	Reason string
}

func (e *GeometryError) Error() string {
	if e.Door != nil {
		return fmt.Sprintf("geometry violation: %s door (%d,%d): %s", e.Room.String(), e.Door.X, e.Door.Y, e.Reason)
	}
	return fmt.Sprintf("geometry violation: %s: %s", e.Room.String(), e.Reason)
}

func (e *GeometryError) Is(target error) bool {
	return target == ErrGeometry
}

// ClassifyDoor infers the wall a door sits on. Doors off the perimeter, or
// closer than padding tiles to a corner, cannot be painted and are rejected.
func ClassifyDoor(r *Room, d Door, padding int) (Side, error) {
	var side Side
	var along, length int
	switch {
	case d.Y == 0:
		side, along, length = SideTop, d.X, r.Width
	case d.Y == r.Height-1:
		side, along, length = SideBottom, d.X, r.Width
	case d.X == 0:
		side, along, length = SideLeft, d.Y, r.Height
	case d.X == r.Width-1:
		side, along, length = SideRight, d.Y, r.Height
	default:
		return 0, &GeometryError{Room: *r, Door: &d, Reason: "door is not on the room perimeter"}
	}

	if along < padding || along > length-1-padding {
		return 0, &GeometryError{Room: *r, Door: &d, Reason: fmt.Sprintf("door is within %d tiles of a %s corner", padding, side)}
	}
	return side, nil
}

// validate checks the room shape and every door.
func (r *Room) validate(minSize, padding, gridW, gridH int) error {
	switch {
	case r.Width < minSize || r.Height < minSize:
		return &GeometryError{Room: *r, Reason: fmt.Sprintf("room is smaller than %dx%d", minSize, minSize)}
	case r.Width%2 == 0 || r.Height%2 == 0:
		return &GeometryError{Room: *r, Reason: "room dimensions must be odd so a center tile exists"}
	case r.Left() < 0 || r.Top() < 0 || r.Right() >= gridW || r.Bottom() >= gridH:
		return &GeometryError{Room: *r, Reason: fmt.Sprintf("room lies outside the %dx%d grid", gridW, gridH)}
	}

	for _, d := range r.Doors {
		if _, err := ClassifyDoor(r, d, padding); err != nil {
			return err
		}
	}
	return nil
}
