package ui

import "testing"

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("default language = %q", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyAppTitle); got != "Video Caption Player" {
		t.Errorf("title = %q", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{name: "russian", lang: "ru", want: "ru"},
		{name: "portuguese", lang: "pt", want: "pt"},
		{name: "system maps to english", lang: "system", want: "en"},
		{name: "unknown keeps current", lang: "xx", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			if got := l.GetCurrentLanguage(); got != tt.want {
				t.Errorf("SetLanguage(%q) -> %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestLocalization_UnknownKey(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("GetText(missing) = %q", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("no texts for %q", lang)
			continue
		}
		for key := range l.texts["en"] {
			if texts[key] == "" {
				t.Errorf("%s: missing translation for %q", lang, key)
			}
		}
	}
}
