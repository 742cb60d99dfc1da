package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Player colors that widgets look up by name
const (
	ColorNameVideoSurface   fyne.ThemeColorName = "videoSurface"
	ColorNameCaptionOverlay fyne.ThemeColorName = "captionOverlay"
	ColorNameCaptionText    fyne.ThemeColorName = "captionText"
)

// playerPalette holds the player colors. The video area stays dark in both
// variants so frames and captions look the same in light mode.
var playerPalette = map[fyne.ThemeColorName]color.Color{
	ColorNameVideoSurface:   color.NRGBA{R: 8, G: 8, B: 10, A: 255},
	ColorNameCaptionOverlay: color.NRGBA{A: OverlayAlpha},
	ColorNameCaptionText:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	theme.ColorNamePrimary:  color.NRGBA{R: 30, G: 58, B: 138, A: 255}, // deep blue titles and actions
	theme.ColorNameError:    color.NRGBA{R: 220, G: 38, B: 38, A: 255},
}

// playerColor returns a palette color without going through the app theme,
// for canvas objects that must keep the video look under any theme
func playerColor(name fyne.ThemeColorName) color.Color {
	if c, ok := playerPalette[name]; ok {
		return c
	}
	return color.Transparent
}

// PlayerTheme is a compact theme with a dark video surface and a
// translucent caption backdrop
type PlayerTheme struct{}

// NewPlayerTheme creates a new player theme
func NewPlayerTheme() fyne.Theme {
	return &PlayerTheme{}
}

// Color returns theme colors
func (t *PlayerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary && variant == theme.VariantDark {
		return color.NRGBA{R: 96, G: 165, B: 250, A: 255}
	}
	if c, ok := playerPalette[name]; ok {
		return c
	}
	if name == theme.ColorNameBackground && variant == theme.VariantDark {
		return color.NRGBA{R: 17, G: 19, B: 24, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *PlayerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PlayerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; text stays compact so the editor fits under a
// 16:9 surface, captions use the heading size
func (t *PlayerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
