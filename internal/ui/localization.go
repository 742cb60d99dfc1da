package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyVideoURL           = "video_url"
	KeyEnterURL           = "enter_url"
	KeyLoad               = "load"
	KeyBrowse             = "browse"
	KeyAddCaptions        = "add_captions"
	KeyCaptionText        = "caption_text"
	KeyEnterCaptionText   = "enter_caption_text"
	KeyStartTime          = "start_time"
	KeyEndTime            = "end_time"
	KeyCurrent            = "current"
	KeyAddCaption         = "add_caption"
	KeyCaptionList        = "caption_list"
	KeyNoCaptions         = "no_captions"
	KeyPleaseAddCaption   = "please_add_caption"
	KeyInvalidInterval    = "invalid_interval"
	KeyTimeUpdateInterval = "time_update_interval"
	KeyUnifiedFeedback    = "unified_feedback"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
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

	return key
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
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Video Caption Player",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyVideoURL:           "Video URL",
		KeyEnterURL:           "Enter video URL",
		KeyLoad:               "Load",
		KeyBrowse:             "Browse",
		KeyAddCaptions:        "Add Captions",
		KeyCaptionText:        "Caption Text",
		KeyEnterCaptionText:   "Enter caption text",
		KeyStartTime:          "Start Time",
		KeyEndTime:            "End Time",
		KeyCurrent:            "Current",
		KeyAddCaption:         "Add Caption",
		KeyCaptionList:        "Caption List",
		KeyNoCaptions:         "No captions added yet",
		KeyPleaseAddCaption:   "Please add caption",
		KeyInvalidInterval:    "End time must be greater than start time",
		KeyTimeUpdateInterval: "Position Update Interval (ms)",
		KeyUnifiedFeedback:    "Warn about invalid caption times",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Видеоплеер с субтитрами",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyVideoURL:           "URL видео",
		KeyEnterURL:           "Введите URL видео",
		KeyLoad:               "Загрузить",
		KeyBrowse:             "Обзор",
		KeyAddCaptions:        "Добавить субтитры",
		KeyCaptionText:        "Текст субтитра",
		KeyEnterCaptionText:   "Введите текст субтитра",
		KeyStartTime:          "Начало",
		KeyEndTime:            "Конец",
		KeyCurrent:            "Текущее",
		KeyAddCaption:         "Добавить субтитр",
		KeyCaptionList:        "Список субтитров",
		KeyNoCaptions:         "Субтитры ещё не добавлены",
		KeyPleaseAddCaption:   "Пожалуйста, добавьте текст субтитра",
		KeyInvalidInterval:    "Время окончания должно быть больше времени начала",
		KeyTimeUpdateInterval: "Интервал обновления позиции (мс)",
		KeyUnifiedFeedback:    "Предупреждать о неверном времени субтитра",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Player de Vídeo com Legendas",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyVideoURL:           "URL do Vídeo",
		KeyEnterURL:           "Digite a URL do vídeo",
		KeyLoad:               "Carregar",
		KeyBrowse:             "Navegar",
		KeyAddCaptions:        "Adicionar Legendas",
		KeyCaptionText:        "Texto da Legenda",
		KeyEnterCaptionText:   "Digite o texto da legenda",
		KeyStartTime:          "Início",
		KeyEndTime:            "Fim",
		KeyCurrent:            "Atual",
		KeyAddCaption:         "Adicionar Legenda",
		KeyCaptionList:        "Lista de Legendas",
		KeyNoCaptions:         "Nenhuma legenda adicionada ainda",
		KeyPleaseAddCaption:   "Por favor, adicione a legenda",
		KeyInvalidInterval:    "O tempo final deve ser maior que o inicial",
		KeyTimeUpdateInterval: "Intervalo de Atualização da Posição (ms)",
		KeyUnifiedFeedback:    "Avisar sobre tempos de legenda inválidos",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
	}
}
