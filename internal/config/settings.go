package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage                  = "app_language"
	KeyTimeUpdateIntervalMs      = "time_update_interval_ms"
	KeyUnifiedValidationFeedback = "unified_validation_feedback"
)

// Default values
const (
	DefaultLanguage                  = "system"
	DefaultTimeUpdateIntervalMs      = 250
	DefaultUnifiedValidationFeedback = false
)

// Bounds for the timeupdate interval
const (
	MinTimeUpdateIntervalMs = 10
	MaxTimeUpdateIntervalMs = 2000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
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

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetTimeUpdateIntervalMs returns how often, in milliseconds, the player
// reports its position during playback
func (s *Settings) GetTimeUpdateIntervalMs() int {
	value := s.app.Preferences().Int(KeyTimeUpdateIntervalMs)
	if value <= 0 {
		s.SetTimeUpdateIntervalMs(DefaultTimeUpdateIntervalMs)
		return DefaultTimeUpdateIntervalMs
	}
	return value
}

// SetTimeUpdateIntervalMs sets the position report interval
func (s *Settings) SetTimeUpdateIntervalMs(ms int) {
	if ms < MinTimeUpdateIntervalMs {
		ms = MinTimeUpdateIntervalMs
	}
	if ms > MaxTimeUpdateIntervalMs {
		ms = MaxTimeUpdateIntervalMs
	}
	s.app.Preferences().SetInt(KeyTimeUpdateIntervalMs, ms)
}

// GetTimeUpdateInterval returns the position report interval as a duration
func (s *Settings) GetTimeUpdateInterval() time.Duration {
	return time.Duration(s.GetTimeUpdateIntervalMs()) * time.Millisecond
}

// GetUnifiedValidationFeedback returns whether an invalid caption interval is
// reported to the user like empty caption text is. When false, invalid
// intervals are rejected silently.
func (s *Settings) GetUnifiedValidationFeedback() bool {
	return s.app.Preferences().BoolWithFallback(KeyUnifiedValidationFeedback, DefaultUnifiedValidationFeedback)
}

// SetUnifiedValidationFeedback sets the invalid interval feedback mode
func (s *Settings) SetUnifiedValidationFeedback(unified bool) {
	s.app.Preferences().SetBool(KeyUnifiedValidationFeedback, unified)
}
