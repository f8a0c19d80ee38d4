package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/retro-board/internal/model"
)

type voteCall struct {
	id     string
	points int
}

type moveCall struct {
	x, y float64
}

func newTestNote(t *testing.T, voting, finished bool, own map[string]int) (*StickyNote, *[]moveCall, *[]voteCall) {
	t.Helper()
	test.NewApp()

	var moves []moveCall
	var votes []voteCall
	note := NewStickyNote(
		model.Sticky{ID: "n1", AuthorName: "Al", Text: "pair more", X: 10, Y: 20, Color: "#ffe082"},
		map[string]int{"n1": 4},
		own,
		voting, finished,
		func(x, y float64) { moves = append(moves, moveCall{x, y}) },
		func(id string, points int) { votes = append(votes, voteCall{id, points}) },
	)
	return note, &moves, &votes
}

func TestStickyNote_PhaseGating(t *testing.T) {
	tests := []struct {
		name      string
		voting    bool
		finished  bool
		score     bool
		voteInput bool
		draggable bool
	}{
		{"generating", false, false, false, false, true},
		{"voting", true, false, true, true, true},
		{"finished", false, true, true, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			note, _, _ := newTestNote(t, tc.voting, tc.finished, nil)

			assert.Equal(t, tc.score, note.scoreLabel.Visible(), "score label")
			assert.Equal(t, tc.voteInput, note.voteEntry.Visible(), "vote input")
			assert.Equal(t, tc.draggable, note.Draggable(), "drag")
			assert.Equal(t, "pair more", note.textLabel.Text)
			assert.Equal(t, "Al", note.authorLabel.Text)
			assert.Equal(t, fyne.NewPos(10, 20), note.Position())
		})
	}
}

func TestStickyNote_ScoreLabel(t *testing.T) {
	note, _, _ := newTestNote(t, true, false, nil)
	assert.Equal(t, "Points: 4", note.scoreLabel.Text)
}

func TestStickyNote_VotePrefilledWithOwnAllocation(t *testing.T) {
	note, _, _ := newTestNote(t, true, false, map[string]int{"n1": 2, "other": 3})
	assert.Equal(t, "2", note.voteEntry.Text)

	empty, _, _ := newTestNote(t, true, false, nil)
	assert.Equal(t, "0", empty.voteEntry.Text)
}

func TestStickyNote_SubmitVote(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
		text     string
	}{
		{"7", 5, "5"},
		{"3", 3, "3"},
		{"-2", 0, "0"},
		{"abc", 0, "0"},
		{"", 0, "0"},
	}

	for _, tc := range tests {
		note, _, votes := newTestNote(t, true, false, nil)

		note.voteEntry.SetText(tc.raw)
		note.SubmitVote(note.voteEntry.Text)

		require.Len(t, *votes, 1, "input %q", tc.raw)
		assert.Equal(t, voteCall{"n1", tc.expected}, (*votes)[0], "input %q", tc.raw)
		assert.Equal(t, tc.text, note.voteEntry.Text, "input %q", tc.raw)
	}
}

func TestStickyNote_SubmitThroughEntry(t *testing.T) {
	note, _, votes := newTestNote(t, true, false, nil)

	note.voteEntry.SetText("7")
	note.voteEntry.OnSubmitted(note.voteEntry.Text)

	assert.Equal(t, []voteCall{{"n1", 5}}, *votes)
	assert.Equal(t, "5", note.voteEntry.Text)
}

func TestStickyNote_VoteCommitsOnFocusLoss(t *testing.T) {
	note, _, votes := newTestNote(t, true, false, map[string]int{"n1": 1})
	w := test.NewWindow(note)
	defer w.Close()

	w.Canvas().Focus(note.voteEntry)
	note.voteEntry.SetText("")
	test.Type(note.voteEntry, "3")
	w.Canvas().Unfocus()

	assert.Equal(t, []voteCall{{"n1", 3}}, *votes)
	assert.Equal(t, "3", note.voteEntry.Text)

	// Leaving again without an edit sends nothing
	w.Canvas().Focus(note.voteEntry)
	w.Canvas().Unfocus()
	assert.Len(t, *votes, 1)
}

func TestStickyNote_UneditedFocusLossSendsNothing(t *testing.T) {
	note, _, votes := newTestNote(t, true, false, map[string]int{"n1": 2})

	note.voteEntry.FocusLost()

	assert.Empty(t, *votes)
	assert.Equal(t, "2", note.voteEntry.Text)
}

func TestStickyNote_EnterThenFocusLossSendsOnce(t *testing.T) {
	note, _, votes := newTestNote(t, true, false, nil)

	note.voteEntry.SetText("9")
	note.voteEntry.OnSubmitted(note.voteEntry.Text)
	note.voteEntry.FocusLost()

	assert.Equal(t, []voteCall{{"n1", 5}}, *votes)
}

func TestStickyNote_VoteEntryValidation(t *testing.T) {
	note, _, _ := newTestNote(t, true, false, nil)

	for _, text := range []string{"0", "3", "5"} {
		note.voteEntry.SetText(text)
		assert.NoError(t, note.voteEntry.Validate(), "input %q", text)
	}
	for _, text := range []string{"6", "-1", "12", "x", ""} {
		note.voteEntry.SetText(text)
		assert.Error(t, note.voteEntry.Validate(), "input %q", text)
	}
}

func TestStickyNote_SubmitIgnoredOutsideVoting(t *testing.T) {
	note, _, votes := newTestNote(t, false, false, nil)
	note.SubmitVote("3")
	assert.Empty(t, *votes)
}

func TestStickyNote_DragCommitsPosition(t *testing.T) {
	note, moves, _ := newTestNote(t, false, false, nil)
	parent := fyne.NewPos(100, 50)
	note.absPos = func() fyne.Position { return parent.Add(note.Position()) }

	note.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(5, 5)},
		Button:     desktop.MouseButtonPrimary,
	})
	note.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(160, 110), Position: fyne.NewPos(55, 45)},
		Dragged:    fyne.NewDelta(50, 40),
	})
	assert.Equal(t, fyne.NewPos(55, 55), note.Position())

	note.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(200.4, 150.6)},
		Dragged:    fyne.NewDelta(40, 40),
	})
	note.DragEnd()
	// Fyne may also deliver MouseUp after the drag; it must not commit twice
	note.MouseUp(&desktop.MouseEvent{})

	assert.Equal(t, []moveCall{{95, 96}}, *moves)
}

func TestStickyNote_DragWithoutMouseDown(t *testing.T) {
	note, moves, _ := newTestNote(t, false, false, nil)
	note.absPos = func() fyne.Position { return note.Position() }

	// Pressed at (8, 6) inside the note, then moved by (2, 4)
	note.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(40, 40), Position: fyne.NewPos(10, 10)},
		Dragged:    fyne.NewDelta(2, 4),
	})
	note.DragEnd()

	assert.Equal(t, []moveCall{{32, 34}}, *moves)
}

func TestStickyNote_FinishedIgnoresPointer(t *testing.T) {
	note, moves, _ := newTestNote(t, false, true, nil)

	note.MouseDown(&desktop.MouseEvent{Button: desktop.MouseButtonPrimary})
	note.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(300, 300)}})
	note.DragEnd()

	assert.Empty(t, *moves)
	assert.Equal(t, fyne.NewPos(10, 20), note.Position())
}

func TestStickyNote_EnableDelete(t *testing.T) {
	note, _, _ := newTestNote(t, false, false, nil)
	var deleted []string
	note.EnableDelete(func(id string) { deleted = append(deleted, id) })

	require.True(t, note.deleteBtn.Visible())
	test.Tap(note.deleteBtn)
	assert.Equal(t, []string{"n1"}, deleted)

	finished, _, _ := newTestNote(t, false, true, nil)
	finished.EnableDelete(func(string) {})
	assert.False(t, finished.deleteBtn.Visible())
}

func TestStickyNote_Renders(t *testing.T) {
	note, _, _ := newTestNote(t, true, false, nil)
	w := test.NewWindow(note)
	defer w.Close()

	size := note.MinSize()
	assert.Equal(t, StickyWidth, size.Width)
	assert.GreaterOrEqual(t, size.Height, StickyMinHeight)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.NRGBA
		ok       bool
	}{
		{"#fff8b3", color.NRGBA{R: 0xff, G: 0xf8, B: 0xb3, A: 0xff}, true},
		{"FFE082", color.NRGBA{R: 0xff, G: 0xe0, B: 0x82, A: 0xff}, true},
		{"#abc", color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}, true},
		{"#12345", color.NRGBA{}, false},
		{"#gggggg", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}

	for _, tc := range tests {
		got, ok := parseHexColor(tc.in)
		if ok != tc.ok || got != tc.expected {
			t.Errorf("parseHexColor(%q) = %v, %v; expected %v, %v", tc.in, got, ok, tc.expected, tc.ok)
		}
	}

	if stickyColor("nope") != stickyColor(model.DefaultStickyColor) {
		t.Error("Invalid colors should fall back to the default note color")
	}
}

func TestStickyNote_AnonymousAuthor(t *testing.T) {
	test.NewApp()
	note := NewStickyNote(model.Sticky{ID: "n2", Text: "no name"}, nil, nil, false, false, nil, nil)
	assert.Empty(t, note.authorLabel.Text)
}
