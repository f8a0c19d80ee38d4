package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLastAccessCode = "last_access_code"
	KeyLastName       = "last_display_name"
	KeyLastOrganizer  = "last_is_organizer"
	KeyLanguage       = "app_language"
	KeyServerOverride = "server_url_override"
)

// DefaultLanguage follows the operating system
const DefaultLanguage = "system"

// Settings keeps per-user choices between runs
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastAccessCode returns the access code used for the last join
func (s *Settings) GetLastAccessCode() string {
	return s.app.Preferences().String(KeyLastAccessCode)
}

// GetLastName returns the display name used for the last join
func (s *Settings) GetLastName() string {
	return s.app.Preferences().String(KeyLastName)
}

// GetLastOrganizer returns whether the last join was as organizer
func (s *Settings) GetLastOrganizer() bool {
	return s.app.Preferences().BoolWithFallback(KeyLastOrganizer, false)
}

// RememberJoin stores the entry form values for the next run
func (s *Settings) RememberJoin(accessCode, name string, isOrganizer bool) {
	prefs := s.app.Preferences()
	prefs.SetString(KeyLastAccessCode, strings.TrimSpace(accessCode))
	prefs.SetString(KeyLastName, strings.TrimSpace(name))
	prefs.SetBool(KeyLastOrganizer, isOrganizer)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetServerURL returns the user's server override, or fallback when unset
func (s *Settings) GetServerURL(fallback string) string {
	url := strings.TrimSpace(s.app.Preferences().String(KeyServerOverride))
	if url == "" {
		return fallback
	}
	return url
}

// SetServerURL stores a server override. An empty value removes it.
func (s *Settings) SetServerURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		s.app.Preferences().RemoveValue(KeyServerOverride)
		return
	}
	s.app.Preferences().SetString(KeyServerOverride, url)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
