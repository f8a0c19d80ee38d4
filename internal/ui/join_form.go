package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/retro-board/internal/config"
	"github.com/ytget/retro-board/internal/model"
)

// JoinForm is the entry view: access code, name and organizer flag
type JoinForm struct {
	settings     *config.Settings
	localization *Localization
	onJoin       func(model.Identity)

	// UI components
	codeEntry      *widget.Entry
	nameEntry      *widget.Entry
	organizerCheck *widget.Check
	joinBtn        *widget.Button
	banner         *ErrorBanner
	content        fyne.CanvasObject
}

// NewJoinForm creates the entry view prefilled from the last join
func NewJoinForm(settings *config.Settings, localization *Localization, onJoin func(model.Identity)) *JoinForm {
	f := &JoinForm{
		settings:     settings,
		localization: localization,
		onJoin:       onJoin,
	}
	f.createUI()
	return f
}

// createUI creates and arranges all UI components
func (f *JoinForm) createUI() {
	f.codeEntry = widget.NewEntry()
	f.codeEntry.SetText(f.settings.GetLastAccessCode())
	f.nameEntry = widget.NewEntry()
	f.nameEntry.SetText(f.settings.GetLastName())
	f.nameEntry.OnSubmitted = func(string) { f.Submit() }

	f.organizerCheck = widget.NewCheck("", nil)
	f.organizerCheck.SetChecked(f.settings.GetLastOrganizer())

	f.joinBtn = widget.NewButton("", f.Submit)
	f.joinBtn.Importance = widget.HighImportance

	f.banner = NewErrorBanner()

	logo := canvas.NewImageFromResource(LogoOrDefault())
	logo.SetMinSize(fyne.NewSize(48, 48))
	logo.FillMode = canvas.ImageFillContain

	form := container.NewVBox(
		logo,
		f.codeEntry,
		f.nameEntry,
		f.organizerCheck,
		f.banner.Container(),
		f.joinBtn,
	)
	sized := container.NewGridWrap(fyne.NewSize(JoinFormWidth, form.MinSize().Height), form)
	f.content = container.NewCenter(sized)
	f.refreshTexts()
}

// SetLocalization switches the form's language
func (f *JoinForm) SetLocalization(l *Localization) {
	f.localization = l
	f.refreshTexts()
}

func (f *JoinForm) refreshTexts() {
	f.codeEntry.SetPlaceHolder(f.localization.GetText(KeyAccessCode))
	f.nameEntry.SetPlaceHolder(f.localization.GetText(KeyDisplayName))
	f.organizerCheck.SetText(f.localization.GetText(KeyJoinAsOrganizer))
	f.joinBtn.SetText(f.localization.GetText(KeyJoin))
}

// Submit validates the form and opens the board. Blank fields only show
// the banner; nothing is sent.
func (f *JoinForm) Submit() {
	identity := model.NewIdentity(
		f.codeEntry.Text,
		f.nameEntry.Text,
		strconv.FormatBool(f.organizerCheck.Checked),
	)
	if err := identity.Validate(); err != nil {
		f.banner.Show(f.localization.GetText(KeyMissingIdentity))
		return
	}
	f.banner.Clear()
	f.settings.RememberJoin(identity.AccessCode, identity.Name, identity.IsOrganizer)
	if f.onJoin != nil {
		f.onJoin(identity)
	}
}

// ShowError puts a message on the form's banner, e.g. after a failed join
func (f *JoinForm) ShowError(message string) {
	f.banner.Show(message)
}

// Content returns the root canvas object of the form
func (f *JoinForm) Content() fyne.CanvasObject {
	return f.content
}
