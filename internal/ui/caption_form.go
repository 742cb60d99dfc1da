package ui

import (
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/caption-player/internal/session"
)

// CaptionForm collects the caption drafts: text, start and end time
type CaptionForm struct {
	sess         *session.Session
	localization *Localization

	title      *widget.Label
	textLabel  *widget.Label
	startLabel *widget.Label
	endLabel   *widget.Label
	textEntry  *widget.Entry
	startEntry *widget.Entry
	endEntry   *widget.Entry
	startBtn   *widget.Button
	endBtn     *widget.Button
	addBtn     *widget.Button
	content    *fyne.Container
}

// NewCaptionForm creates the caption form bound to sess
func NewCaptionForm(sess *session.Session, localization *Localization) *CaptionForm {
	cf := &CaptionForm{
		sess:         sess,
		localization: localization,
	}
	cf.createUI()
	cf.refreshTexts()
	return cf
}

func (cf *CaptionForm) createUI() {
	cf.title = widget.NewLabel("")
	cf.title.TextStyle = fyne.TextStyle{Bold: true}
	cf.textLabel = widget.NewLabel("")
	cf.startLabel = widget.NewLabel("")
	cf.endLabel = widget.NewLabel("")

	cf.textEntry = widget.NewMultiLineEntry()
	cf.textEntry.Wrapping = fyne.TextWrapWord
	cf.textEntry.SetMinRowsVisible(3)
	cf.textEntry.OnChanged = cf.sess.SetDraftText

	cf.startEntry = newTimeEntry(cf.sess.SetDraftStart)
	cf.endEntry = newTimeEntry(cf.sess.SetDraftEnd)

	cf.startBtn = widget.NewButtonWithIcon("", theme.MediaRecordIcon(), cf.sess.UseCurrentAsStart)
	cf.endBtn = widget.NewButtonWithIcon("", theme.MediaRecordIcon(), cf.sess.UseCurrentAsEnd)

	cf.addBtn = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		// Rejections are reported through the session notifier
		_, _ = cf.sess.AddCaption()
	})
	cf.addBtn.Importance = widget.HighImportance

	times := container.NewGridWithColumns(2,
		container.NewVBox(cf.startLabel, container.NewBorder(nil, nil, nil, cf.startBtn, cf.startEntry)),
		container.NewVBox(cf.endLabel, container.NewBorder(nil, nil, nil, cf.endBtn, cf.endEntry)),
	)

	cf.content = container.NewVBox(
		cf.title,
		cf.textLabel,
		cf.textEntry,
		times,
		cf.addBtn,
	)
}

// Container returns the form's root object
func (cf *CaptionForm) Container() fyne.CanvasObject {
	return cf.content
}

// Update brings the entries in line with the session drafts. Entries whose
// text already parses to the draft value are left alone so typing is not
// disturbed.
func (cf *CaptionForm) Update(state session.State) {
	if cf.textEntry.Text != state.DraftText {
		cf.textEntry.SetText(state.DraftText)
	}
	syncTimeEntry(cf.startEntry, state.DraftStart)
	syncTimeEntry(cf.endEntry, state.DraftEnd)
}

func (cf *CaptionForm) refreshTexts() {
	cf.title.SetText(cf.localization.GetText(KeyAddCaptions))
	cf.textLabel.SetText(cf.localization.GetText(KeyCaptionText))
	cf.textEntry.SetPlaceHolder(cf.localization.GetText(KeyEnterCaptionText))
	cf.startLabel.SetText(cf.localization.GetText(KeyStartTime))
	cf.endLabel.SetText(cf.localization.GetText(KeyEndTime))
	cf.startBtn.SetText(cf.localization.GetText(KeyCurrent))
	cf.endBtn.SetText(cf.localization.GetText(KeyCurrent))
	cf.addBtn.SetText(cf.localization.GetText(KeyAddCaption))
}

func newTimeEntry(onValue func(float64)) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(TimeFieldStep)
	entry.SetText(formatSeconds(0))
	entry.OnChanged = func(text string) {
		onValue(parseSeconds(text))
	}
	return entry
}

func syncTimeEntry(entry *widget.Entry, value float64) {
	current := parseSeconds(entry.Text)
	if current == value || (math.IsNaN(current) && math.IsNaN(value)) {
		return
	}
	entry.SetText(formatSeconds(value))
}

// parseSeconds reads a numeric field; anything unparsable becomes NaN
func parseSeconds(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatSeconds(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
