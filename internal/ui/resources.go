package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "retro-board.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// LogoOrDefault returns the logo, falling back to a theme icon when the
// file is not shipped next to the binary
func LogoOrDefault() fyne.Resource {
	if res, err := LoadLogoResource(); err == nil {
		return res
	}
	return theme.GridIcon()
}
