package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/caption-player/internal/model"
)

// CaptionListView shows the captions in insertion order with a delete
// button per entry, or a placeholder when there are none
type CaptionListView struct {
	localization *Localization
	onRemove     func(id string)

	captions    []model.Caption
	title       *widget.Label
	placeholder *widget.Label
	list        *widget.List
	content     *fyne.Container
}

// NewCaptionListView creates the caption list; onRemove receives the id of
// the caption whose delete button was tapped
func NewCaptionListView(localization *Localization, onRemove func(id string)) *CaptionListView {
	lv := &CaptionListView{
		localization: localization,
		onRemove:     onRemove,
	}

	lv.title = widget.NewLabel("")
	lv.title.TextStyle = fyne.TextStyle{Bold: true}

	lv.placeholder = widget.NewLabel("")
	lv.placeholder.Alignment = fyne.TextAlignCenter
	lv.placeholder.Importance = widget.LowImportance

	lv.list = widget.NewList(
		func() int {
			return len(lv.captions)
		},
		func() fyne.CanvasObject {
			row := NewCaptionRow()
			row.SetOnRemove(lv.remove)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			row, ok := obj.(*CaptionRow)
			if !ok || id < 0 || id >= len(lv.captions) {
				return
			}
			row.SetCaption(lv.captions[id])
		},
	)
	lv.list.HideSeparators = true

	minHeight := canvas.NewRectangle(color.Transparent)
	minHeight.SetMinSize(fyne.NewSize(0, CaptionListMinHeight))

	lv.content = container.NewBorder(
		lv.title,
		nil,
		nil,
		nil,
		container.NewStack(minHeight, lv.list, container.NewCenter(lv.placeholder)),
	)
	lv.refreshTexts()
	lv.updatePlaceholder()
	return lv
}

// Container returns the list's root object
func (lv *CaptionListView) Container() fyne.CanvasObject {
	return lv.content
}

// Update replaces the displayed captions
func (lv *CaptionListView) Update(captions []model.Caption) {
	if sameCaptions(lv.captions, captions) {
		return
	}
	lv.captions = captions
	lv.updatePlaceholder()
	lv.list.Refresh()
}

// Captions returns the displayed captions
func (lv *CaptionListView) Captions() []model.Caption {
	return lv.captions
}

// PlaceholderVisible reports whether the empty-list message is shown
func (lv *CaptionListView) PlaceholderVisible() bool {
	return lv.placeholder.Visible()
}

func (lv *CaptionListView) refreshTexts() {
	lv.title.SetText(lv.localization.GetText(KeyCaptionList))
	lv.placeholder.SetText(lv.localization.GetText(KeyNoCaptions))
}

func (lv *CaptionListView) updatePlaceholder() {
	if len(lv.captions) == 0 {
		lv.placeholder.Show()
	} else {
		lv.placeholder.Hide()
	}
}

func (lv *CaptionListView) remove(id string) {
	if lv.onRemove != nil {
		lv.onRemove(id)
	}
}

func sameCaptions(a, b []model.Caption) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
