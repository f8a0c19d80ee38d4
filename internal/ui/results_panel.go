package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/retro-board/internal/model"
)

// ResultsPanel lists notes by score once the board is finished
type ResultsPanel struct {
	localization *Localization

	ranked []model.RankedSticky

	// UI components
	title     *widget.Label
	list      *widget.List
	container *fyne.Container
}

// NewResultsPanel creates an empty, hidden results panel
func NewResultsPanel(localization *Localization) *ResultsPanel {
	rp := &ResultsPanel{localization: localization}
	rp.createUI()
	return rp
}

// createUI creates the user interface for the results panel
func (rp *ResultsPanel) createUI() {
	rp.list = widget.NewList(
		func() int {
			return len(rp.ranked)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(rp.ranked) {
				return
			}
			obj.(*widget.Label).SetText(rp.RowText(id))
		},
	)

	rp.title = widget.NewLabel(rp.localization.GetText(KeyResults))
	rp.title.TextStyle = fyne.TextStyle{Bold: true}

	// Keep the list visible inside the bottom border slot
	sizer := container.NewGridWrap(fyne.NewSize(CanvasMinWidth, ResultsMinHeight), rp.list)

	rp.container = container.NewBorder(rp.title, nil, nil, nil, sizer)
	rp.container.Hide()
}

// Update replaces the rows. Call from the UI goroutine.
func (rp *ResultsPanel) Update(snap *model.Snapshot) {
	if snap == nil {
		rp.ranked = nil
	} else {
		rp.ranked = snap.Ranked()
	}
	rp.list.Refresh()
}

// Len returns the number of rows
func (rp *ResultsPanel) Len() int {
	return len(rp.ranked)
}

// RowText formats one row, e.g. "1st · More pairing · Al · ★ 4". The
// author part is left out for notes without one.
func (rp *ResultsPanel) RowText(i int) string {
	r := rp.ranked[i]
	parts := []string{humanize.Ordinal(r.Place), r.Sticky.Text}
	if author := r.Sticky.DisplayAuthor(); author != "" {
		parts = append(parts, author)
	}
	parts = append(parts, fmt.Sprintf("%s %d", IconPoints, r.Score))
	return strings.Join(parts, MiddleDotSeparator)
}

// SetLocalization updates the panel title
func (rp *ResultsPanel) SetLocalization(l *Localization) {
	rp.localization = l
	rp.title.SetText(l.GetText(KeyResults))
}

// Container returns the panel's canvas object
func (rp *ResultsPanel) Container() fyne.CanvasObject {
	return rp.container
}
