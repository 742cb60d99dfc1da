package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/caption-player/internal/model"
)

// CaptionRow renders one caption: its interval, its text and a delete button
type CaptionRow struct {
	widget.BaseWidget

	caption model.Caption

	intervalLabel *widget.Label
	textLabel     *widget.Label
	deleteBtn     *widget.Button

	onRemove func(id string)
}

// NewCaptionRow creates a new caption row widget
func NewCaptionRow() *CaptionRow {
	cr := &CaptionRow{}
	cr.ExtendBaseWidget(cr)

	cr.intervalLabel = widget.NewLabel("")
	cr.intervalLabel.TextStyle = fyne.TextStyle{Monospace: true}

	cr.textLabel = widget.NewLabel("")
	cr.textLabel.Wrapping = fyne.TextWrapWord
	cr.textLabel.Truncation = fyne.TextTruncateEllipsis

	cr.deleteBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if cr.onRemove != nil && cr.caption.ID != "" {
			cr.onRemove(cr.caption.ID)
		}
	})
	cr.deleteBtn.Importance = widget.DangerImportance
	return cr
}

// SetOnRemove sets the delete callback
func (cr *CaptionRow) SetOnRemove(onRemove func(id string)) {
	cr.onRemove = onRemove
}

// SetCaption shows caption in the row
func (cr *CaptionRow) SetCaption(caption model.Caption) {
	cr.caption = caption
	cr.intervalLabel.SetText(caption.Interval())
	cr.textLabel.SetText(strings.TrimSpace(caption.Text))
}

// Caption returns the caption shown in the row
func (cr *CaptionRow) Caption() model.Caption {
	return cr.caption
}

// CreateRenderer creates the widget renderer
func (cr *CaptionRow) CreateRenderer() fyne.WidgetRenderer {
	info := container.NewVBox(cr.intervalLabel, cr.textLabel)
	minHeight := canvas.NewRectangle(color.Transparent)
	minHeight.SetMinSize(fyne.NewSize(0, CaptionRowMinHeight))
	content := container.NewVBox(
		container.NewStack(minHeight,
			container.NewBorder(nil, nil, nil, container.NewCenter(cr.deleteBtn), info)),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}
