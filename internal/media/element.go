package media

import (
	"errors"
	"image"
)

// Errors reported by the element
var (
	ErrNoSource        = errors.New("media: no playable source")
	ErrClosed          = errors.New("media: element closed")
	ErrNoVideoStream   = errors.New("media: source has no video stream")
	ErrInvalidGeometry = errors.New("media: invalid frame geometry")
)

// EventType names a media notification. Values mirror the HTML media events.
type EventType string

const (
	EventLoadStart      EventType = "loadstart"
	EventLoadedMetadata EventType = "loadedmetadata"
	EventPlay           EventType = "play"
	EventPause          EventType = "pause"
	EventTimeUpdate     EventType = "timeupdate"
	EventEnded          EventType = "ended"
	EventEmptied        EventType = "emptied"
	EventError          EventType = "error"
)

// Event is a notification emitted by an Element
type Event struct {
	Type   EventType
	Source string
	Time   float64 // playback position when the event was emitted
	Err    error   // set for EventError
}

// Element is a media playback primitive. Notifications are delivered in
// emission order to the handler set with SetEventHandler, from a goroutine
// owned by the element.
type Element interface {
	// Load discards the current source and starts loading src from scratch.
	Load(src string)
	// Play requests playback. It returns an error when there is nothing to
	// play; otherwise EventPlay follows once playback actually starts.
	Play() error
	// Pause requests a pause. EventPause follows if playback was running.
	Pause() error
	CurrentTime() float64
	Duration() float64
	Paused() bool
	SetEventHandler(handler func(Event))
	// SetFrameHandler registers a callback for decoded frames. A frame buffer
	// is reused after two more frames have been delivered. No frame of a
	// source is delivered once Load has replaced it.
	SetFrameHandler(handler func(*image.RGBA))
	Close() error
}
