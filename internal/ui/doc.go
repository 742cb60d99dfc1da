package ui

// Package ui contains the Fyne-based user interface for the caption player.
// It renders session state (URL row, playback surface with caption overlay,
// caption form and caption list) and forwards user input to the session. All
// UI strings are localized via Localization.
