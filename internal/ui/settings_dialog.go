package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/retro-board/internal/config"
)

// SettingsDialog edits the server override and the UI language
type SettingsDialog struct {
	settings      *config.Settings
	localization  *Localization
	window        fyne.Window
	defaultServer string
	onSaved       func()
	dialog        *dialog.ConfirmDialog

	// UI components
	serverEntry    *widget.Entry
	languageSelect *widget.Select
	languageCodes  map[string]string // display name -> code
}

// NewSettingsDialog creates a new settings dialog. defaultServer is shown
// as the placeholder; onSaved runs after values are stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, defaultServer string, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		defaultServer: defaultServer,
		onSaved:       onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.serverEntry = widget.NewEntry()
	sd.serverEntry.SetPlaceHolder(sd.defaultServer)

	options := sd.settings.GetLanguageOptions()
	sd.languageCodes = make(map[string]string, len(options))
	names := make([]string, 0, len(options))
	for code, name := range options {
		sd.languageCodes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyServerURL)+":"),
		sd.serverEntry,
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetServerURL("")
	sd.serverEntry.SetText(current)

	lang := sd.settings.GetLanguage()
	if name, ok := sd.settings.GetLanguageOptions()[lang]; ok {
		sd.languageSelect.SetSelected(name)
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetServerURL(sd.serverEntry.Text)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
