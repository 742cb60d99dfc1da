package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/caption-player/internal/model"
)

func TestCaptionRow_ShowsCaption(t *testing.T) {
	test.NewApp()

	row := NewCaptionRow()
	row.SetCaption(model.Caption{ID: "c1", StartTime: 65, EndTime: 70.9, Text: "Hello"})

	if row.intervalLabel.Text != "01:05 - 01:10" {
		t.Errorf("interval = %q", row.intervalLabel.Text)
	}
	if row.textLabel.Text != "Hello" {
		t.Errorf("text = %q", row.textLabel.Text)
	}
}

func TestCaptionRow_RendersInWindow(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	row := NewCaptionRow()
	row.SetCaption(model.Caption{ID: "c3", StartTime: 1, EndTime: 2, Text: "drawn"})

	w := test.NewWindow(row)
	defer w.Close()
	w.Resize(fyne.NewSize(400, 100))

	if row.MinSize().Height < CaptionRowMinHeight {
		t.Errorf("row height = %v, want at least %v", row.MinSize().Height, CaptionRowMinHeight)
	}
	if style := row.intervalLabel.TextStyle; style.Bold && style.Monospace {
		t.Error("bold monospace has no font in the default theme")
	}
}

func TestCaptionRow_DeleteReportsID(t *testing.T) {
	test.NewApp()

	var removed []string
	row := NewCaptionRow()
	row.SetOnRemove(func(id string) { removed = append(removed, id) })
	row.SetCaption(model.Caption{ID: "c2", StartTime: 0, EndTime: 1, Text: "x"})

	test.Tap(row.deleteBtn)

	if len(removed) != 1 || removed[0] != "c2" {
		t.Errorf("removed = %v, want [c2]", removed)
	}
}

func TestCaptionListView_Update(t *testing.T) {
	test.NewApp()

	lv := NewCaptionListView(NewLocalization(), nil)
	if !lv.PlaceholderVisible() {
		t.Error("placeholder should be visible for an empty list")
	}
	if lv.placeholder.Text != "No captions added yet" {
		t.Errorf("placeholder = %q", lv.placeholder.Text)
	}

	lv.Update([]model.Caption{{ID: "a", StartTime: 0, EndTime: 1, Text: "one"}})
	if lv.PlaceholderVisible() {
		t.Error("placeholder should be hidden")
	}
	if lv.list.Length() != 1 {
		t.Errorf("list length = %d", lv.list.Length())
	}

	lv.Update(nil)
	if !lv.PlaceholderVisible() {
		t.Error("placeholder should be visible again")
	}
}
