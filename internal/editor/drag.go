package editor

import "github.com/Notifuse/emailbuilder/internal/domain"

// DragState is the transient state of a drag gesture
type DragState struct {
	DraggedID string
	OverID    string
	Position  domain.DropPosition
}

// Active reports whether a drag is in progress
func (s DragState) Active() bool {
	return s.DraggedID != ""
}

// DropIntent is the move requested by a completed drag
type DropIntent struct {
	DraggedID string
	TargetID  string
	Position  domain.DropPosition
}

// DragController turns pointer events into a drop position.
// The zero value is ready to use.
type DragController struct {
	state DragState
}

// Start begins dragging the node with the given id, discarding any previous gesture
func (c *DragController) Start(id string) {
	c.state = DragState{DraggedID: id}
}

// Over records the pointer hovering node id. offsetY is the pointer position from the
// top of the node and height the node's rendered height. Grids always take the node
// inside; other nodes split into thirds: top is before, bottom is after, the middle
// third drops nothing.
func (c *DragController) Over(id string, isGrid bool, offsetY, height float64) {
	if !c.state.Active() || id == c.state.DraggedID {
		return
	}
	c.state.OverID = id
	c.state.Position = positionFor(isGrid, offsetY, height)
}

func positionFor(isGrid bool, offsetY, height float64) domain.DropPosition {
	if isGrid {
		return domain.DropInside
	}
	if height <= 0 {
		return domain.DropNone
	}
	switch fraction := offsetY / height; {
	case fraction < 1.0/3.0:
		return domain.DropBefore
	case fraction > 2.0/3.0:
		return domain.DropAfter
	default:
		return domain.DropNone
	}
}

// Drop ends the gesture. ok is false when nothing was dragged, nothing was hovered or
// the pointer sat in a dead zone. The state is reset in every case.
func (c *DragController) Drop() (DropIntent, bool) {
	s := c.state
	c.state = DragState{}
	if !s.Active() || s.OverID == "" || s.Position == domain.DropNone {
		return DropIntent{}, false
	}
	return DropIntent{DraggedID: s.DraggedID, TargetID: s.OverID, Position: s.Position}, true
}

// Cancel abandons the gesture
func (c *DragController) Cancel() {
	c.state = DragState{}
}

// State returns the current gesture state
func (c *DragController) State() DragState {
	return c.state
}

// Indicator tells a renderer what to draw on node id: a top border for before, a bottom
// border for after, a ring for inside, nothing otherwise
func (c *DragController) Indicator(id string) domain.DropPosition {
	if !c.state.Active() || c.state.OverID != id {
		return domain.DropNone
	}
	return c.state.Position
}
