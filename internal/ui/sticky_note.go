package ui

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/retro-board/internal/drag"
	"github.com/ytget/retro-board/internal/logging"
	"github.com/ytget/retro-board/internal/model"
	"github.com/ytget/retro-board/internal/vote"
)

// fallbackLocalization labels notes built without an explicit Localization
var fallbackLocalization = NewLocalization()

// StickyNote is one note on the board canvas. It is built from a single
// snapshot and discarded on the next render.
type StickyNote struct {
	widget.BaseWidget

	note     model.Sticky
	score    int
	voting   bool
	finished bool

	localization *Localization

	// UI components
	background  *canvas.Rectangle
	textLabel   *widget.Label
	authorLabel *widget.Label
	scoreLabel  *widget.Label
	voteEntry   *voteEntry
	deleteBtn   *widget.Button
	footer      *fyne.Container

	drag *drag.Controller

	// absPos reports the note's absolute position; replaced in tests
	absPos func() fyne.Position

	// Callbacks
	onVoteChange func(stickyID string, points int)
	onDelete     func(stickyID string)
}

var (
	_ fyne.Draggable    = (*StickyNote)(nil)
	_ desktop.Mouseable = (*StickyNote)(nil)
)

// NewStickyNote builds a note widget from one snapshot. The score is shown
// while voting or finished, the vote entry only while voting, and dragging
// is wired unless the board is finished. onMove receives the committed
// position of a drag; onVoteChange receives the clamped allocation.
func NewStickyNote(
	note model.Sticky,
	scores map[string]int,
	own map[string]int,
	isVoting, isFinished bool,
	onMove func(x, y float64),
	onVoteChange func(stickyID string, points int),
) *StickyNote {
	s := &StickyNote{
		note:         note,
		score:        scores[note.ID],
		voting:       isVoting,
		finished:     isFinished,
		localization: fallbackLocalization,
		onVoteChange: onVoteChange,
	}
	s.ExtendBaseWidget(s)
	s.absPos = s.driverPosition

	s.createUI(own[note.ID])

	if !isFinished {
		start := fyne.NewPos(float32(note.X), float32(note.Y))
		s.drag = drag.NewController(start, s.Move, func(x, y float64) {
			if onMove != nil {
				onMove(x, y)
			}
		})
	}

	s.Move(fyne.NewPos(float32(note.X), float32(note.Y)))
	return s
}

// createUI creates the UI components
func (s *StickyNote) createUI(ownPoints int) {
	s.background = canvas.NewRectangle(stickyColor(s.note.DisplayColor()))
	s.background.CornerRadius = 4
	s.background.StrokeColor = color.NRGBA{A: 40}
	s.background.StrokeWidth = 1

	s.textLabel = widget.NewLabel(s.note.Text)
	s.textLabel.Wrapping = fyne.TextWrapWord

	s.authorLabel = widget.NewLabel(s.note.DisplayAuthor())
	s.authorLabel.TextStyle = fyne.TextStyle{Italic: true}
	s.authorLabel.Truncation = fyne.TextTruncateEllipsis

	s.scoreLabel = widget.NewLabel("")
	s.scoreLabel.TextStyle = fyne.TextStyle{Bold: true}
	s.updateScoreLabel()
	if !s.voting && !s.finished {
		s.scoreLabel.Hide()
	}

	s.voteEntry = newVoteEntry(strconv.Itoa(vote.Clamp(ownPoints)), s.SubmitVote)
	if !s.voting {
		s.voteEntry.Hide()
	}

	s.deleteBtn = widget.NewButton(IconDelete, func() {
		if s.onDelete != nil {
			s.onDelete(s.note.ID)
		}
	})
	s.deleteBtn.Importance = widget.LowImportance
	s.deleteBtn.Hide()

	voteBox := container.NewGridWrap(fyne.NewSize(VoteEntryWidth, s.voteEntry.MinSize().Height), s.voteEntry)
	if !s.voting {
		voteBox.Hide()
	}
	s.footer = container.NewHBox(s.scoreLabel, voteBox)
}

// SetLocalization changes the language of the note's labels
func (s *StickyNote) SetLocalization(l *Localization) {
	if l == nil {
		return
	}
	s.localization = l
	s.updateScoreLabel()
}

// EnableDelete shows a delete button calling onDelete. Finished boards are
// read-only, so the button stays hidden there.
func (s *StickyNote) EnableDelete(onDelete func(stickyID string)) {
	if s.finished || onDelete == nil {
		return
	}
	s.onDelete = onDelete
	s.deleteBtn.Show()
}

func (s *StickyNote) updateScoreLabel() {
	s.scoreLabel.SetText(s.localization.Format(KeyPoints, s.score))
}

// SubmitVote parses raw input as an allocation, corrects the entry to the
// clamped value and reports it
func (s *StickyNote) SubmitVote(raw string) {
	if !s.voting {
		return
	}
	points := vote.Parse(raw)
	corrected := strconv.Itoa(points)
	s.voteEntry.markCommitted(corrected)
	if s.voteEntry.Text != corrected {
		s.voteEntry.SetText(corrected)
	}
	if s.onVoteChange != nil {
		s.onVoteChange(s.note.ID, points)
	}
}

// StickyID returns the id of the rendered note
func (s *StickyNote) StickyID() string {
	return s.note.ID
}

// Draggable reports whether the note can be repositioned
func (s *StickyNote) Draggable() bool {
	return s.drag != nil
}

// MouseDown starts tracking a press on the note
func (s *StickyNote) MouseDown(e *desktop.MouseEvent) {
	if s.drag == nil || e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.drag.PointerDown(e.Position)
}

// MouseUp ends a press that never turned into a drag
func (s *StickyNote) MouseUp(_ *desktop.MouseEvent) {
	if s.drag == nil {
		return
	}
	s.drag.PointerUp()
}

// Dragged moves the note with the pointer
func (s *StickyNote) Dragged(e *fyne.DragEvent) {
	if s.drag == nil {
		return
	}
	if !s.drag.IsDragging() {
		// Touch and some drivers skip MouseDown; recover the press point
		s.drag.PointerDown(e.Position.Subtract(e.Dragged))
	}
	parentOrigin := s.absPos().Subtract(s.Position())
	s.drag.PointerMove(e.AbsolutePosition, parentOrigin)
}

// DragEnd commits the final position
func (s *StickyNote) DragEnd() {
	if s.drag == nil {
		return
	}
	if s.drag.PointerUp() {
		logging.Log.WithField("sticky_id", s.note.ID).Debug("sticky drag committed")
	}
}

func (s *StickyNote) driverPosition() fyne.Position {
	app := fyne.CurrentApp()
	if app == nil {
		return s.Position()
	}
	return app.Driver().AbsolutePositionForObject(s)
}

// MinSize keeps notes at a fixed width
func (s *StickyNote) MinSize() fyne.Size {
	size := s.BaseWidget.MinSize()
	return fyne.NewSize(StickyWidth, fyne.Max(size.Height, StickyMinHeight))
}

// CreateRenderer creates the widget renderer
func (s *StickyNote) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, s.deleteBtn, s.authorLabel)
	body := container.NewBorder(header, s.footer, nil, nil, s.textLabel)
	content := container.NewThemeOverride(
		container.NewStack(s.background, container.NewPadded(body)),
		lightOnly{Theme: NewBoardTheme()},
	)
	return widget.NewSimpleRenderer(content)
}

// stickyColor parses a #rgb or #rrggbb note color, falling back to the
// default note color
func stickyColor(hex string) color.Color {
	if c, ok := parseHexColor(hex); ok {
		return c
	}
	c, _ := parseHexColor(model.DefaultStickyColor)
	return c
}

func parseHexColor(hex string) (color.NRGBA, bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}
