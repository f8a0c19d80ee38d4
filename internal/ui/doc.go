package ui

// Package ui contains the Fyne-based desktop user interface for the board.
// It switches between the join form and the board view, renders sticky notes
// from session frames and forwards user actions to the board session.
// All UI labels are localized via Localization.
