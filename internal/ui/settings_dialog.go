package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/caption-player/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 460
	SettingsDialogHeight = 320
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	intervalEntry  *widget.Entry
	unifiedCheck   *widget.Check

	// display name -> language code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings have been written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection, sorted by display name
	labels := sd.settings.GetLanguageOptions()
	options := make([]string, 0, len(labels))
	for code, label := range labels {
		sd.languageCodes[label] = code
		options = append(options, label)
	}
	sort.Strings(options)
	sd.languageSelect = widget.NewSelect(options, nil)

	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder(strconv.Itoa(config.MinTimeUpdateIntervalMs) + "-" + strconv.Itoa(config.MaxTimeUpdateIntervalMs))

	sd.unifiedCheck = widget.NewCheck(sd.localization.GetText(KeyUnifiedFeedback), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyTimeUpdateInterval)+":"),
		sd.intervalEntry,

		widget.NewSeparator(),
		sd.unifiedCheck,
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
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.intervalEntry.SetText(strconv.Itoa(sd.settings.GetTimeUpdateIntervalMs()))
	sd.unifiedCheck.SetChecked(sd.settings.GetUnifiedValidationFeedback())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	// Unparsable intervals keep the stored value
	if ms, err := strconv.Atoi(strings.TrimSpace(sd.intervalEntry.Text)); err == nil {
		sd.settings.SetTimeUpdateIntervalMs(ms)
	}

	sd.settings.SetUnifiedValidationFeedback(sd.unifiedCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
