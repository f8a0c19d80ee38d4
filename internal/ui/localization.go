package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyJoin             = "join"
	KeyAccessCode       = "access_code"
	KeyDisplayName      = "display_name"
	KeyJoinAsOrganizer  = "join_as_organizer"
	KeyMissingIdentity  = "missing_identity"
	KeyAddNote          = "add_note"
	KeyNotePlaceholder  = "note_placeholder"
	KeyStartVoting      = "start_voting"
	KeyFinishBoard      = "finish_board"
	KeyResetBoard       = "reset_board"
	KeyResetConfirm     = "reset_confirm"
	KeyLeave            = "leave"
	KeyRemainingPoints  = "remaining_points"
	KeyPoints           = "points"
	KeyResults          = "results"
	KeyBoardStatus      = "board_status"
	KeyDeleteNote       = "delete_note"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyServerURL        = "server_url"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyRestartForServer = "restart_for_server"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized format string for key applied to args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Retro Board",
		KeyJoin:             "Join board",
		KeyAccessCode:       "Access code",
		KeyDisplayName:      "Your name",
		KeyJoinAsOrganizer:  "I am the organizer",
		KeyMissingIdentity:  "Please provide access code and name.",
		KeyAddNote:          "Add",
		KeyNotePlaceholder:  "What went well? What could be better?",
		KeyStartVoting:      "Start voting",
		KeyFinishBoard:      "Finish",
		KeyResetBoard:       "Reset",
		KeyResetConfirm:     "Reset board?",
		KeyLeave:            "Leave",
		KeyRemainingPoints:  "Remaining points: %d",
		KeyPoints:           "Points: %d",
		KeyResults:          "Results",
		KeyBoardStatus:      "%d participants · %d notes",
		KeyDeleteNote:       "Delete note",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyServerURL:        "Server URL",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartForServer: "The new server is used from the next join.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Ретро-доска",
		KeyJoin:             "Войти на доску",
		KeyAccessCode:       "Код доступа",
		KeyDisplayName:      "Ваше имя",
		KeyJoinAsOrganizer:  "Я организатор",
		KeyMissingIdentity:  "Укажите код доступа и имя.",
		KeyAddNote:          "Добавить",
		KeyNotePlaceholder:  "Что было хорошо? Что улучшить?",
		KeyStartVoting:      "Начать голосование",
		KeyFinishBoard:      "Завершить",
		KeyResetBoard:       "Сбросить",
		KeyResetConfirm:     "Сбросить доску?",
		KeyLeave:            "Выйти",
		KeyRemainingPoints:  "Осталось баллов: %d",
		KeyPoints:           "Баллы: %d",
		KeyResults:          "Итоги",
		KeyBoardStatus:      "участников: %d · заметок: %d",
		KeyDeleteNote:       "Удалить заметку",
		KeySettings:         "Настройки",
		KeyLanguage:         "Язык",
		KeyServerURL:        "Адрес сервера",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyRestartForServer: "Новый сервер будет использован при следующем входе.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Retro Board",
		KeyJoin:             "Entrar no quadro",
		KeyAccessCode:       "Código de acesso",
		KeyDisplayName:      "Seu nome",
		KeyJoinAsOrganizer:  "Sou o organizador",
		KeyMissingIdentity:  "Informe o código de acesso e o nome.",
		KeyAddNote:          "Adicionar",
		KeyNotePlaceholder:  "O que foi bem? O que pode melhorar?",
		KeyStartVoting:      "Iniciar votação",
		KeyFinishBoard:      "Encerrar",
		KeyResetBoard:       "Reiniciar",
		KeyResetConfirm:     "Reiniciar o quadro?",
		KeyLeave:            "Sair",
		KeyRemainingPoints:  "Pontos restantes: %d",
		KeyPoints:           "Pontos: %d",
		KeyResults:          "Resultados",
		KeyBoardStatus:      "%d participantes · %d notas",
		KeyDeleteNote:       "Excluir nota",
		KeySettings:         "Configurações",
		KeyLanguage:         "Idioma",
		KeyServerURL:        "URL do servidor",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyRestartForServer: "O novo servidor será usado na próxima entrada.",
	}
}
