package drag

import (
	"math"

	"fyne.io/fyne/v2"
)

// State represents the drag state of one element
type State int

const (
	// StateIdle means no drag is in progress
	StateIdle State = iota

	// StateDragging means the pointer is down on the element and moves reposition it
	StateDragging
)

// String returns the state name for logs
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Controller tracks repositioning of a single element
type Controller struct {
	state    State
	offset   fyne.Position // pointer offset inside the element at pointer-down
	position fyne.Position // current visual position relative to the parent

	onMove   func(fyne.Position) // visual update while dragging
	onCommit func(x, y float64)  // persist the final position
}

// NewController creates a controller for an element currently at start.
// onMove may be nil; onCommit is invoked once per completed drag.
func NewController(start fyne.Position, onMove func(fyne.Position), onCommit func(x, y float64)) *Controller {
	return &Controller{
		state:    StateIdle,
		position: start,
		onMove:   onMove,
		onCommit: onCommit,
	}
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// IsDragging reports whether a drag is in progress
func (c *Controller) IsDragging() bool {
	return c.state == StateDragging
}

// Position returns the element's current visual position
func (c *Controller) Position() fyne.Position {
	return c.position
}

// PointerDown starts a drag, recording where inside the element it began
func (c *Controller) PointerDown(offset fyne.Position) {
	c.state = StateDragging
	c.offset = offset
}

// PointerMove repositions the element while dragging.
// pointer and parentOrigin are absolute coordinates; the result is not bounded.
func (c *Controller) PointerMove(pointer, parentOrigin fyne.Position) {
	if c.state != StateDragging {
		return
	}
	c.position = fyne.NewPos(
		pointer.X-parentOrigin.X-c.offset.X,
		pointer.Y-parentOrigin.Y-c.offset.Y,
	)
	if c.onMove != nil {
		c.onMove(c.position)
	}
}

// PointerUp ends the drag and commits the final position.
// It returns false when no drag was in progress.
func (c *Controller) PointerUp() bool {
	if c.state != StateDragging {
		return false
	}
	c.state = StateIdle
	if c.onCommit != nil {
		c.onCommit(math.Round(float64(c.position.X)), math.Round(float64(c.position.Y)))
	}
	return true
}

// Cancel abandons a drag without committing
func (c *Controller) Cancel() {
	c.state = StateIdle
}
