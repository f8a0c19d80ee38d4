package ui

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/retro-board/internal/board"
	"github.com/ytget/retro-board/internal/logging"
	"github.com/ytget/retro-board/internal/model"
)

// BoardActions are the user actions a board view can trigger. They block on
// the network and report failures to the view themselves.
type BoardActions interface {
	Context() context.Context
	AddNote(ctx context.Context, text string) error
	MoveSticky(ctx context.Context, stickyID string, x, y float64) error
	SetVote(ctx context.Context, stickyID string, points int) error
	DeleteSticky(ctx context.Context, stickyID string) error
	StartVoting(ctx context.Context) error
	Finish(ctx context.Context) error
	Reset(ctx context.Context) error
}

var _ BoardActions = (*board.Session)(nil)

// BoardView shows one board and implements board.View
type BoardView struct {
	window       fyne.Window
	localization *Localization
	identity     model.Identity
	actions      BoardActions
	onHome       func()

	// UI components
	userLabel      *widget.Label
	phaseLabel     *widget.Label
	remainingLabel *widget.Label
	statusLabel    *widget.Label
	banner         *ErrorBanner

	noteEntry  *widget.Entry
	addBtn     *widget.Button
	addSection *fyne.Container

	startVotingBtn    *widget.Button
	finishBtn         *widget.Button
	resetBtn          *widget.Button
	organizerControls *fyne.Container
	leaveBtn          *widget.Button

	canvas  *fyne.Container
	notes   []*StickyNote
	results *ResultsPanel
	content fyne.CanvasObject

	// run executes an action off the UI goroutine and ui applies changes
	// on it; both are replaced in tests
	run func(func())
	ui  func(func())
}

var _ board.View = (*BoardView)(nil)

// NewBoardView creates the board view for identity. onHome is called on the
// UI goroutine when the board must be left.
func NewBoardView(window fyne.Window, localization *Localization, identity model.Identity, onHome func()) *BoardView {
	v := &BoardView{
		window:       window,
		localization: localization,
		identity:     identity,
		onHome:       onHome,
		run:          func(fn func()) { go fn() },
		ui:           fyne.Do,
	}
	v.createUI()
	return v
}

// Bind connects the view to the actions it triggers
func (v *BoardView) Bind(actions BoardActions) {
	v.actions = actions
}

// Content returns the root canvas object of the view
func (v *BoardView) Content() fyne.CanvasObject {
	return v.content
}

// createUI creates and arranges all UI components
func (v *BoardView) createUI() {
	v.userLabel = widget.NewLabel(v.identity.DisplayName())
	v.userLabel.TextStyle = fyne.TextStyle{Bold: true}
	v.phaseLabel = widget.NewLabel(model.PhaseGenerating.String())
	v.remainingLabel = widget.NewLabel("")
	v.statusLabel = widget.NewLabel("")
	v.banner = NewErrorBanner()

	v.noteEntry = widget.NewMultiLineEntry()
	v.noteEntry.SetMinRowsVisible(2)
	v.noteEntry.Wrapping = fyne.TextWrapWord
	v.addBtn = widget.NewButton("", v.onAddNote)
	v.addBtn.Importance = widget.HighImportance
	v.addSection = container.NewBorder(nil, nil, nil, v.addBtn, v.noteEntry)

	v.startVotingBtn = widget.NewButton("", func() {
		v.perform(func(ctx context.Context) error { return v.actions.StartVoting(ctx) })
	})
	v.finishBtn = widget.NewButton("", func() {
		v.perform(func(ctx context.Context) error { return v.actions.Finish(ctx) })
	})
	v.resetBtn = widget.NewButton("", v.onReset)
	v.resetBtn.Importance = widget.DangerImportance
	v.organizerControls = container.NewHBox(v.startVotingBtn, v.finishBtn, v.resetBtn)
	v.organizerControls.Hide()

	v.leaveBtn = widget.NewButton("", func() {
		if v.onHome != nil {
			v.onHome()
		}
	})
	v.leaveBtn.Importance = widget.LowImportance

	header := container.NewVBox(
		container.NewHBox(
			v.userLabel,
			widget.NewSeparator(),
			v.phaseLabel,
			widget.NewSeparator(),
			v.remainingLabel,
			layout.NewSpacer(),
			v.leaveBtn,
		),
		v.banner.Container(),
		v.organizerControls,
		v.addSection,
	)

	// The canvas positions notes absolutely; the sizer gives it room to scroll
	v.canvas = container.NewWithoutLayout()
	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSize(CanvasMinWidth, CanvasMinHeight))
	scroll := container.NewScroll(container.NewStack(sizer, v.canvas))

	v.results = NewResultsPanel(v.localization)
	footer := container.NewVBox(v.results.Container(), v.statusLabel)

	v.content = container.NewBorder(header, footer, nil, nil, scroll)
	v.refreshTexts()
}

// SetLocalization switches the view's language
func (v *BoardView) SetLocalization(l *Localization) {
	v.localization = l
	v.results.SetLocalization(l)
	v.refreshTexts()
	for _, note := range v.notes {
		note.SetLocalization(l)
	}
}

func (v *BoardView) refreshTexts() {
	v.noteEntry.SetPlaceHolder(v.localization.GetText(KeyNotePlaceholder))
	v.addBtn.SetText(v.localization.GetText(KeyAddNote))
	v.startVotingBtn.SetText(v.localization.GetText(KeyStartVoting))
	v.finishBtn.SetText(v.localization.GetText(KeyFinishBoard))
	v.resetBtn.SetText(v.localization.GetText(KeyResetBoard))
	v.leaveBtn.SetText(IconLeave + " " + v.localization.GetText(KeyLeave))
}

// Render implements board.View
func (v *BoardView) Render(frame board.Frame) {
	v.ui(func() { v.apply(frame) })
}

// ShowError implements board.View
func (v *BoardView) ShowError(message string) {
	v.ui(func() { v.banner.Show(message) })
}

// ClearError implements board.View
func (v *BoardView) ClearError() {
	v.ui(v.banner.Clear)
}

// RedirectHome implements board.View
func (v *BoardView) RedirectHome() {
	v.ui(func() {
		if v.onHome != nil {
			v.onHome()
		}
	})
}

// apply draws one frame. Every call fully replaces the canvas children.
func (v *BoardView) apply(frame board.Frame) {
	snap := frame.Snapshot
	if snap == nil {
		snap = &model.Snapshot{}
	}

	v.phaseLabel.SetText(frame.Phase.String())
	v.remainingLabel.SetText(v.localization.Format(KeyRemainingPoints, frame.Remaining))
	setVisible(v.addSection, frame.AddNoteVisible)
	setVisible(v.organizerControls, frame.OrganizerVisible)

	notes := make([]*StickyNote, 0, len(snap.Stickies))
	objects := make([]fyne.CanvasObject, 0, len(snap.Stickies))
	for _, sticky := range snap.Stickies {
		note := v.newNote(sticky, snap.Scores, frame)
		notes = append(notes, note)
		objects = append(objects, note)
	}
	v.notes = notes
	v.canvas.Objects = objects
	v.canvas.Refresh()

	v.results.Update(snap)
	setVisible(v.results.Container(), frame.IsFinished())

	participants := len(snap.Participants)
	v.statusLabel.SetText(v.localization.Format(KeyBoardStatus, participants, len(snap.Stickies)))
}

func (v *BoardView) newNote(sticky model.Sticky, scores map[string]int, frame board.Frame) *StickyNote {
	id := sticky.ID
	note := NewStickyNote(sticky, scores, frame.Own, frame.IsVoting(), frame.IsFinished(),
		func(x, y float64) {
			v.perform(func(ctx context.Context) error {
				return v.actions.MoveSticky(ctx, id, x, y)
			})
		},
		func(stickyID string, points int) {
			v.perform(func(ctx context.Context) error {
				return v.actions.SetVote(ctx, stickyID, points)
			})
		},
	)
	note.SetLocalization(v.localization)
	if sticky.IsAuthoredBy(v.identity.Name) {
		note.EnableDelete(func(stickyID string) {
			v.perform(func(ctx context.Context) error {
				return v.actions.DeleteSticky(ctx, stickyID)
			})
		})
	}
	note.Resize(note.MinSize())
	return note
}

func (v *BoardView) onAddNote() {
	text := v.noteEntry.Text
	v.perform(func(ctx context.Context) error {
		err := v.actions.AddNote(ctx, text)
		if err == nil {
			v.ui(func() {
				// Keep anything typed while the request was in flight
				if v.noteEntry.Text == text {
					v.noteEntry.SetText("")
				}
			})
		}
		return err
	})
}

func (v *BoardView) onReset() {
	confirm := dialog.NewConfirm(
		v.localization.GetText(KeyResetBoard),
		v.localization.GetText(KeyResetConfirm),
		func(ok bool) {
			if ok {
				v.perform(func(ctx context.Context) error { return v.actions.Reset(ctx) })
			}
		},
		v.window,
	)
	confirm.Show()
}

// perform runs an action off the UI goroutine with the session's lifetime
func (v *BoardView) perform(action func(ctx context.Context) error) {
	if v.actions == nil {
		logging.Log.Warn("board action ignored, view is not bound")
		return
	}
	ctx := v.actions.Context()
	v.run(func() {
		// Failures are already on the banner
		_ = action(ctx)
	})
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}
