package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ErrorBanner is the single error slot of a view. The latest message
// replaces any previous one; there is no history.
type ErrorBanner struct {
	label     *widget.Label
	container *fyne.Container
}

// NewErrorBanner creates a hidden banner
func NewErrorBanner() *ErrorBanner {
	b := &ErrorBanner{
		label: widget.NewLabel(""),
	}
	b.label.Importance = widget.DangerImportance
	b.label.Wrapping = fyne.TextWrapWord
	b.container = container.NewPadded(b.label)
	b.container.Hide()
	return b
}

// Show sets and reveals the message. Call from the UI goroutine.
func (b *ErrorBanner) Show(message string) {
	b.label.SetText(message)
	b.container.Show()
}

// Clear empties and hides the banner. Call from the UI goroutine.
func (b *ErrorBanner) Clear() {
	b.label.SetText("")
	b.container.Hide()
}

// Text returns the current message
func (b *ErrorBanner) Text() string {
	return b.label.Text
}

// Visible reports whether the banner is shown
func (b *ErrorBanner) Visible() bool {
	return b.container.Visible()
}

// Container returns the banner's canvas object
func (b *ErrorBanner) Container() fyne.CanvasObject {
	return b.container
}
