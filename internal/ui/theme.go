package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Board palette
var (
	corkLight   = color.NRGBA{R: 236, G: 229, B: 214, A: 255}
	corkDark    = color.NRGBA{R: 46, G: 42, B: 37, A: 255}
	pinTeal     = color.NRGBA{R: 0, G: 121, B: 107, A: 255}
	noteInputBg = color.NRGBA{R: 255, G: 255, B: 255, A: 150}
)

// BoardTheme is the default Fyne theme on a cork-coloured board. Only the
// values the board needs are overridden.
type BoardTheme struct {
	fyne.Theme
}

// NewBoardTheme creates the application theme
func NewBoardTheme() fyne.Theme {
	return &BoardTheme{Theme: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *BoardTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return corkDark
		}
		return corkLight
	case theme.ColorNamePrimary:
		return pinTeal
	}
	return t.Theme.Color(name, variant)
}

// Size narrows entry padding so the vote input fits on a note
func (t *BoardTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameInnerPadding {
		return 6
	}
	return t.Theme.Size(name)
}

// lightOnly pins a theme to its light variant. Note backgrounds are
// always light, so their content must not follow a dark system theme.
type lightOnly struct {
	fyne.Theme
}

func (t lightOnly) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameInputBackground {
		return noteInputBg
	}
	return t.Theme.Color(name, theme.VariantLight)
}
