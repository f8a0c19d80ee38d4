package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconDelete = "×"
	IconLeave  = "⎋"
	IconPoints = "★"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Window sizing
const (
	WindowWidth  float32 = 1000
	WindowHeight float32 = 720
)

// Board canvas sizing. New notes land in the first 400x300 region, the
// extra room keeps dragged notes reachable.
const (
	CanvasMinWidth  float32 = 900
	CanvasMinHeight float32 = 600
)

// Sticky note sizing
const (
	StickyWidth     float32 = 170
	StickyMinHeight float32 = 110
	VoteEntryWidth  float32 = 56
)

// Results list sizing
const (
	ResultsMinHeight float32 = 160
)

// Join form sizing
const (
	JoinFormWidth float32 = 360
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 260
)
