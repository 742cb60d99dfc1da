package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/caption-player/internal/model"
	"github.com/ytget/caption-player/internal/session"
)

// PlayerSurface shows decoded video frames with the active caption on top,
// a play/pause button and the playback position
type PlayerSurface struct {
	background  *canvas.Rectangle
	image       *canvas.Image
	overlayText *canvas.Text
	overlay     *fyne.Container
	playBtn     *widget.Button
	timeLabel   *widget.Label
	content     *fyne.Container

	frames chan *image.RGBA
}

// NewPlayerSurface creates the surface; onToggle is called by the play/pause button
func NewPlayerSurface(onToggle func()) *PlayerSurface {
	ps := &PlayerSurface{
		frames: make(chan *image.RGBA, FramePoolSize),
	}

	ps.background = canvas.NewRectangle(playerColor(ColorNameVideoSurface))
	ps.background.SetMinSize(fyne.NewSize(SurfaceMinWidth, SurfaceMinHeight))

	ps.image = canvas.NewImageFromImage(nil)
	ps.image.FillMode = canvas.ImageFillContain
	ps.image.ScaleMode = canvas.ImageScaleFastest

	ps.overlayText = canvas.NewText("", playerColor(ColorNameCaptionText))
	ps.overlayText.Alignment = fyne.TextAlignCenter
	ps.overlayText.TextSize = theme.TextHeadingSize()
	ps.overlayText.TextStyle = fyne.TextStyle{Bold: true}

	backdrop := canvas.NewRectangle(playerColor(ColorNameCaptionOverlay))
	backdrop.CornerRadius = theme.InputRadiusSize()
	ps.overlay = container.NewStack(backdrop, container.NewPadded(ps.overlayText))
	ps.overlay.Hide()

	bottomSpace := canvas.NewRectangle(color.Transparent)
	bottomSpace.SetMinSize(fyne.NewSize(0, OverlayBottomSpace))
	overlayLayer := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(ps.overlay),
		bottomSpace,
	)

	ps.playBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), onToggle)
	ps.playBtn.Importance = widget.HighImportance
	ps.timeLabel = widget.NewLabel(model.FormatTime(0))
	ps.timeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	controls := container.NewHBox(ps.playBtn, ps.timeLabel)

	ps.content = container.NewBorder(
		nil,
		controls,
		nil,
		nil,
		container.NewStack(ps.background, ps.image, overlayLayer),
	)
	return ps
}

// Container returns the surface's root object
func (ps *PlayerSurface) Container() fyne.CanvasObject {
	return ps.content
}

// Update renders playback state
func (ps *PlayerSurface) Update(state session.State) {
	switch {
	case state.Playing:
		ps.playBtn.SetIcon(theme.MediaPauseIcon())
	case state.PlayPending:
		// Tapping again cancels the queued play
		ps.playBtn.SetIcon(theme.ViewRefreshIcon())
	default:
		ps.playBtn.SetIcon(theme.MediaPlayIcon())
	}

	ps.timeLabel.SetText(model.FormatTime(state.CurrentTime))

	if state.ActiveCaption == "" {
		ps.overlay.Hide()
	} else {
		if ps.overlayText.Text != state.ActiveCaption {
			ps.overlayText.Text = state.ActiveCaption
			ps.overlayText.Refresh()
		}
		ps.overlay.Show()
	}

	if state.Status == model.MediaStatusEmpty && ps.image.Image != nil {
		ps.recycle(ps.image.Image)
		ps.image.Image = nil
		ps.image.Refresh()
	}
}

// OnFrame copies a decoded frame and shows it on the UI goroutine. It is
// safe to call from the decoder goroutine; the frame is not retained.
func (ps *PlayerSurface) OnFrame(frame *image.RGBA) {
	var buf *image.RGBA
	select {
	case buf = <-ps.frames:
	default:
	}
	if buf == nil || buf.Rect != frame.Rect {
		buf = image.NewRGBA(frame.Rect)
	}
	copy(buf.Pix, frame.Pix)

	fyne.Do(func() {
		previous := ps.image.Image
		ps.image.Image = buf
		ps.image.Refresh()
		ps.recycle(previous)
	})
}

// OverlayText returns the caption currently drawn over the video, or an
// empty string when the overlay is hidden
func (ps *PlayerSurface) OverlayText() string {
	if !ps.overlay.Visible() {
		return ""
	}
	return ps.overlayText.Text
}

// TimeText returns the displayed playback position
func (ps *PlayerSurface) TimeText() string {
	return ps.timeLabel.Text
}

func (ps *PlayerSurface) recycle(img image.Image) {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba == nil {
		return
	}
	select {
	case ps.frames <- rgba:
	default:
	}
}
