package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/sirupsen/logrus"

	"github.com/ytget/retro-board/internal/api"
	"github.com/ytget/retro-board/internal/board"
	"github.com/ytget/retro-board/internal/config"
	"github.com/ytget/retro-board/internal/logging"
	"github.com/ytget/retro-board/internal/model"
)

// App is the window shell. It shows either the join form or one board view
// and owns the board session of the latter.
type App struct {
	fyneApp      fyne.App
	window       fyne.Window
	conf         *config.Config
	settings     *config.Settings
	localization *Localization

	// newClient builds the transport for a session; replaced in tests
	newClient func(serverURL, accessCode string) api.BoardAPI

	mu        sync.Mutex
	session   *board.Session
	boardView *BoardView
	joinForm  *JoinForm
}

// NewApp creates the shell for window
func NewApp(fyneApp fyne.App, window fyne.Window, conf *config.Config) *App {
	settings := config.NewSettings(fyneApp)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	a := &App{
		fyneApp:      fyneApp,
		window:       window,
		conf:         conf,
		settings:     settings,
		localization: localization,
	}
	a.newClient = func(serverURL, accessCode string) api.BoardAPI {
		return api.NewClient(serverURL, accessCode, api.WithTimeout(a.conf.RequestTimeout))
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(a.Shutdown)
	a.createMenu()
	return a
}

// Start opens the board when identity is complete, the join form otherwise
func (a *App) Start(identity model.Identity) {
	if identity.Validate() != nil {
		a.ShowJoin("")
		return
	}
	a.OpenBoard(identity)
}

// ShowJoin replaces the window content with the join form. A non-empty
// message is shown on the form's banner.
func (a *App) ShowJoin(message string) {
	a.stopSession()

	form := NewJoinForm(a.settings, a.localization, a.OpenBoard)
	if message != "" {
		form.ShowError(message)
	}

	a.mu.Lock()
	a.joinForm = form
	a.boardView = nil
	a.mu.Unlock()

	a.window.SetContent(form.Content())
}

// OpenBoard replaces the window content with a board view and starts its
// session in the background
func (a *App) OpenBoard(identity model.Identity) {
	a.stopSession()

	serverURL := a.serverURL()
	var view *BoardView
	view = NewBoardView(a.window, a.localization, identity, func() {
		a.leaveBoard(view)
	})
	session := board.NewSession(identity, a.newClient(serverURL, identity.AccessCode), view,
		board.WithPollInterval(a.conf.PollInterval))
	view.Bind(session)

	a.mu.Lock()
	a.session = session
	a.boardView = view
	a.joinForm = nil
	a.mu.Unlock()

	a.window.SetContent(view.Content())
	logging.Log.WithFields(logrus.Fields{
		"server": serverURL,
		"user":   identity.Name,
	}).Info("opening board")

	go func() {
		// Failures are reported through the view
		_ = session.Start(session.Context())
	}()
}

// leaveBoard returns to the join form if view is still the current board,
// carrying over the last error it showed
func (a *App) leaveBoard(view *BoardView) {
	a.mu.Lock()
	current := a.boardView == view
	a.mu.Unlock()
	if !current {
		return
	}
	message := ""
	if view.banner.Visible() {
		message = view.banner.Text()
	}
	a.ShowJoin(message)
}

// Session returns the active board session, if any
func (a *App) Session() *board.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// Shutdown stops the active session. It runs when the window closes.
func (a *App) Shutdown() {
	a.stopSession()
}

func (a *App) stopSession() {
	a.mu.Lock()
	session := a.session
	a.session = nil
	a.mu.Unlock()

	if session != nil {
		// Stop waits for the poller; keep the UI goroutine free
		go session.Stop()
	}
}

func (a *App) serverURL() string {
	return a.settings.GetServerURL(a.conf.ServerURL)
}

// createMenu creates the application menu
func (a *App) createMenu() {
	settingsItem := fyne.NewMenuItem(a.localization.GetText(KeySettings), a.onShowSettings)
	leaveItem := fyne.NewMenuItem(a.localization.GetText(KeyLeave), func() { a.ShowJoin("") })

	languageMenu := fyne.NewMenu(a.localization.GetText(KeyLanguage))
	for code, name := range a.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			a.onLanguageChange(langCode)
		})
		if a.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	a.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(a.localization.GetText(KeyAppTitle), settingsItem, leaveItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (a *App) onLanguageChange(langCode string) {
	a.localization.SetLanguage(langCode)
	a.settings.SetLanguage(langCode)
	a.refreshUITexts()
	a.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (a *App) refreshUITexts() {
	a.window.SetTitle(a.localization.GetText(KeyAppTitle))

	a.mu.Lock()
	view, form := a.boardView, a.joinForm
	a.mu.Unlock()

	if view != nil {
		view.SetLocalization(a.localization)
	}
	if form != nil {
		form.SetLocalization(a.localization)
	}
}

// onShowSettings shows the settings dialog
func (a *App) onShowSettings() {
	NewSettingsDialog(a.settings, a.localization, a.window, a.conf.ServerURL, func() {
		a.localization.SetLanguage(a.settings.GetLanguage())
		a.refreshUITexts()
		a.createMenu()
		dialog.ShowInformation(
			a.localization.GetText(KeySettings),
			a.localization.GetText(KeySettingsSaved)+"\n"+a.localization.GetText(KeyRestartForServer),
			a.window,
		)
	}).Show()
}
