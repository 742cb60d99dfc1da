package ui

import (
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/caption-player/internal/config"
	"github.com/ytget/caption-player/internal/logging"
	"github.com/ytget/caption-player/internal/media"
	"github.com/ytget/caption-player/internal/platform"
	"github.com/ytget/caption-player/internal/session"
)

// Video file extensions offered by the file picker
var videoExtensions = []string{".mp4", ".m4v", ".mkv", ".webm", ".mov", ".avi", ".mpg", ".mpeg"}

// intervalSetter is implemented by elements with a configurable position
// report interval
type intervalSetter interface {
	SetTimeUpdateInterval(interval time.Duration)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	element      media.Element
	session      *session.Session
	settings     *config.Settings
	localization *Localization
	log          *zap.Logger

	urlCard   *widget.Card
	urlEntry  *widget.Entry
	loadBtn   *widget.Button
	browseBtn *widget.Button

	surface       *PlayerSurface
	form          *CaptionForm
	captionList   *CaptionListView
	playerSection *fyne.Container
}

// NewRootUI creates and initializes the main UI around element
func NewRootUI(window fyne.Window, app fyne.App, element media.Element, logger *zap.Logger) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		element:      element,
		settings:     settings,
		localization: localization,
		log:          logging.OrNop(logger),
	}

	ui.session = session.New(element, ui, ui.log)
	ui.session.SetDispatcher(fyne.Do)
	ui.session.SetUnifiedValidationFeedback(settings.GetUnifiedValidationFeedback())
	ui.applyTimeUpdateInterval()

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.session.SetUpdateCallback(ui.render)
	ui.render(ui.session.Snapshot())

	ui.log.Debug("RootUI initialized")
	return ui
}

// Session returns the session driven by the UI
func (ui *RootUI) Session() *session.Session {
	return ui.session
}

// SetURL pre-fills the URL field without loading it
func (ui *RootUI) SetURL(url string) {
	ui.urlEntry.SetText(url)
}

// Notify shows a blocking message for a rejected user action
func (ui *RootUI) Notify(err error) {
	message := err.Error()
	switch {
	case errors.Is(err, session.ErrEmptyCaption):
		message = ui.localization.GetText(KeyPleaseAddCaption)
	case errors.Is(err, session.ErrInvalidInterval):
		message = ui.localization.GetText(KeyInvalidInterval)
	}
	dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), message, ui.window)
}

// Close releases the media element
func (ui *RootUI) Close() error {
	return ui.session.Close()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// URL row
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.OnChanged = ui.session.SetURL
	// Load when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onLoadClick()
	}

	ui.loadBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), ui.onLoadClick)
	ui.loadBtn.Importance = widget.HighImportance
	ui.browseBtn = widget.NewButtonWithIcon("", theme.FolderOpenIcon(), ui.onBrowseClick)

	ui.urlCard = widget.NewCard("", "", container.NewBorder(
		nil, nil, nil,
		container.NewHBox(ui.browseBtn, ui.loadBtn),
		ui.urlEntry,
	))

	// Player and caption editor, shown after the first load
	ui.surface = NewPlayerSurface(ui.onTogglePlayPause)
	ui.element.SetFrameHandler(ui.surface.OnFrame)
	ui.form = NewCaptionForm(ui.session, ui.localization)
	ui.captionList = NewCaptionListView(ui.localization, ui.onRemoveCaption)

	ui.playerSection = container.NewVBox(
		ui.surface.Container(),
		newEditorGrid(
			widget.NewCard("", "", ui.form.Container()),
			widget.NewCard("", "", ui.captionList.Container()),
		),
	)
	ui.playerSection.Hide()

	ui.refreshUITexts()

	content := container.NewVScroll(container.NewVBox(ui.urlCard, ui.playerSection))
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlCard.SetTitle(ui.localization.GetText(KeyVideoURL))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.loadBtn.SetText(ui.localization.GetText(KeyLoad))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))

	ui.form.refreshTexts()
	ui.captionList.refreshTexts()
}

// render brings every widget in line with the session state
func (ui *RootUI) render(state session.State) {
	if ui.urlEntry.Text != state.PendingURL {
		ui.urlEntry.SetText(state.PendingURL)
	}

	if state.PlayerVisible && !ui.playerSection.Visible() {
		ui.playerSection.Show()
	}

	ui.surface.Update(state)
	ui.form.Update(state)
	ui.captionList.Update(state.Captions)
}

// onLoadClick commits the URL field as the media source
func (ui *RootUI) onLoadClick() {
	ui.session.Load()
}

// onTogglePlayPause handles the play/pause button
func (ui *RootUI) onTogglePlayPause() {
	if err := ui.session.TogglePlayPause(); err != nil {
		ui.log.Debug("Play/pause ignored", zap.Error(err))
	}
}

// onRemoveCaption handles a caption row's delete button
func (ui *RootUI) onRemoveCaption(id string) {
	ui.session.RemoveCaption(id)
}

// onBrowseClick lets the user pick a local video file for the URL field
func (ui *RootUI) onBrowseClick() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.log.Warn("File selection failed", zap.Error(err))
			return
		}
		if reader == nil {
			return
		}
		defer func() { _ = reader.Close() }()

		ui.urlEntry.SetText(reader.URI().String())
	}, ui.window)

	picker.SetFilter(storage.NewExtensionFileFilter(videoExtensions))
	if dir, err := platform.GetHomeVideosDir(); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			picker.SetLocation(lister)
		}
	}
	picker.Show()
}

// onShowSettings opens the settings dialog and applies saved values
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies stored settings to the running session
func (ui *RootUI) onSettingsSaved() {
	ui.session.SetUnifiedValidationFeedback(ui.settings.GetUnifiedValidationFeedback())
	ui.applyTimeUpdateInterval()

	lang := ui.settings.GetLanguage()
	ui.localization.SetLanguage(lang)
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) applyTimeUpdateInterval() {
	if setter, ok := ui.element.(intervalSetter); ok {
		setter.SetTimeUpdateInterval(ui.settings.GetTimeUpdateInterval())
	}
}
