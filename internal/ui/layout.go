package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// editorColumns returns the number of columns for the caption editor area.
// Mobile devices get a single column.
func editorColumns() int {
	if fyne.CurrentDevice().IsMobile() {
		return 1
	}
	return EditorColumns
}

// newEditorGrid places the caption form and the caption list side by side on
// wide windows and stacks them on narrow ones
func newEditorGrid(objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewAdaptiveGrid(editorColumns(), objects...)
}
