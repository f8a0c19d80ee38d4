package ui

import (
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/widget"
)

// voteEntryPattern accepts a single allocation from 0 to 5
const voteEntryPattern = `^[0-5]$`

// voteEntry is the allocation input of a note. It commits when Enter is
// pressed and when focus leaves with an edited value.
type voteEntry struct {
	widget.Entry

	committed string
	onCommit  func(text string)
}

func newVoteEntry(initial string, onCommit func(text string)) *voteEntry {
	e := &voteEntry{committed: initial, onCommit: onCommit}
	e.ExtendBaseWidget(e)
	e.Validator = validation.NewRegexp(voteEntryPattern, "0-5")
	e.SetText(initial)
	e.OnSubmitted = e.commit
	return e
}

// FocusLost commits an edited value
func (e *voteEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.Text != e.committed {
		e.commit(e.Text)
	}
}

// markCommitted records text as the value the server was last sent
func (e *voteEntry) markCommitted(text string) {
	e.committed = text
}

func (e *voteEntry) commit(text string) {
	if e.onCommit != nil {
		e.onCommit(text)
	}
}
