package board

import "github.com/ytget/retro-board/internal/model"

// Frame is everything a view needs to draw one snapshot
type Frame struct {
	Identity         model.Identity
	Phase            model.Phase
	Remaining        int
	AddNoteVisible   bool
	OrganizerVisible bool
	Own              map[string]int
	Snapshot         *model.Snapshot
}

// IsVoting reports whether vote inputs should be shown
func (f Frame) IsVoting() bool {
	return f.Phase.AllowsVoting()
}

// IsFinished reports whether the board is read-only
func (f Frame) IsFinished() bool {
	return !f.Phase.AllowsMove()
}

// View is the surface a Session draws on. Implementations must be safe to
// call from any goroutine.
type View interface {
	// Render fully replaces the visible board with the frame
	Render(frame Frame)

	// ShowError sets and reveals the single error slot
	ShowError(message string)

	// ClearError empties and hides the error slot
	ClearError()

	// RedirectHome tears the board down and returns to the entry view
	RedirectHome()
}
