package session

import (
	"errors"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/caption-player/internal/logging"
	"github.com/ytget/caption-player/internal/media"
	"github.com/ytget/caption-player/internal/model"
)

// Caption validation errors
var (
	ErrEmptyCaption    = errors.New("please add caption")
	ErrInvalidInterval = errors.New("caption must start at or after 0 and end after it starts")
)

// Notifier shows a blocking message to the user
type Notifier interface {
	Notify(err error)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(err error)

// Notify calls f(err)
func (f NotifierFunc) Notify(err error) {
	f(err)
}

// State is a snapshot of the session for rendering
type State struct {
	PendingURL    string
	Source        string
	PlayerVisible bool
	Playing       bool
	PlayPending   bool
	Status        model.MediaStatus
	CurrentTime   float64
	Duration      float64
	DraftText     string
	DraftStart    float64
	DraftEnd      float64
	Captions      []model.Caption
	ActiveCaption string
}

// Session is the caption player component state
type Session struct {
	element         media.Element
	notifier        Notifier
	log             *zap.Logger
	newID           func() string
	unifiedFeedback bool
	onUpdate        func(State)

	dispatchMu sync.Mutex
	dispatch   func(func())

	pendingURL    string
	source        string
	playerVisible bool
	playing       bool
	playPending   bool
	status        model.MediaStatus
	currentTime   float64
	duration      float64
	draftText     string
	draftStart    float64
	draftEnd      float64
	captions      model.CaptionList
}

// New creates a session driving element. Media notifications are handled
// synchronously until SetDispatcher installs another dispatcher.
func New(element media.Element, notifier Notifier, logger *zap.Logger) *Session {
	s := &Session{
		element:  element,
		notifier: notifier,
		log:      logging.OrNop(logger),
		newID:    model.NewCaptionID,
		dispatch: func(fn func()) { fn() },
		status:   model.MediaStatusEmpty,
	}
	element.SetEventHandler(s.onMediaEvent)
	return s
}

// SetDispatcher sets the function used to run media notifications on the
// session's goroutine, e.g. fyne.Do
func (s *Session) SetDispatcher(dispatch func(func())) {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	s.dispatchMu.Lock()
	s.dispatch = dispatch
	s.dispatchMu.Unlock()
}

// SetUpdateCallback sets the callback invoked after every state change
func (s *Session) SetUpdateCallback(callback func(State)) {
	s.onUpdate = callback
}

// SetUnifiedValidationFeedback makes AddCaption notify the user about an
// invalid interval the same way it does for empty text
func (s *Session) SetUnifiedValidationFeedback(unified bool) {
	s.unifiedFeedback = unified
}

// SetURL holds the URL typed into the URL field
func (s *Session) SetURL(url string) {
	if s.pendingURL == url {
		return
	}
	s.pendingURL = url
	s.notifyUpdate()
}

// Load commits the pending URL as the media source, reveals the player and
// reloads the element so nothing of the previous source survives
func (s *Session) Load() {
	s.source = s.pendingURL
	s.playerVisible = true
	s.log.Info("Loading video", zap.String("source", s.source))
	s.element.Load(s.source)
	s.notifyUpdate()
}

// TogglePlayPause asks the element to pause when playing and to play
// otherwise. An accepted play request stays pending until the element
// reports play; toggling again while pending cancels it. The playing flag
// only changes when the element reports it.
func (s *Session) TogglePlayPause() error {
	if !s.playerVisible {
		return nil
	}

	var err error
	switch {
	case s.playing:
		err = s.element.Pause()
	case s.playPending:
		if err = s.element.Pause(); err == nil {
			s.playPending = false
			s.notifyUpdate()
		}
	default:
		if err = s.element.Play(); err == nil {
			s.playPending = true
			s.notifyUpdate()
		}
	}
	if err != nil {
		s.log.Warn("Playback request rejected", zap.Bool("playing", s.playing), zap.Error(err))
	}
	return err
}

// HandleMediaEvent applies a media notification to the session
func (s *Session) HandleMediaEvent(ev media.Event) {
	switch ev.Type {
	case media.EventLoadStart:
		s.status = model.MediaStatusLoading
	case media.EventLoadedMetadata:
		s.duration = s.element.Duration()
		s.status = model.MediaStatusReady
	case media.EventPlay:
		s.playing = true
		s.playPending = false
		s.status = model.MediaStatusPlaying
	case media.EventPause:
		s.playing = false
		s.playPending = false
		if s.status == model.MediaStatusPlaying {
			s.status = model.MediaStatusPaused
		}
	case media.EventTimeUpdate:
		s.currentTime = s.element.CurrentTime()
	case media.EventEnded:
		s.playing = false
		s.playPending = false
		s.status = model.MediaStatusEnded
	case media.EventEmptied:
		s.playing = false
		s.playPending = false
		s.duration = 0
		s.status = model.MediaStatusEmpty
	case media.EventError:
		s.playing = false
		s.playPending = false
		s.status = model.MediaStatusError
		s.log.Warn("Video failed to load", zap.String("source", ev.Source), zap.Error(ev.Err))
	default:
		return
	}
	s.notifyUpdate()
}

// SetDraftText sets the caption text draft
func (s *Session) SetDraftText(text string) {
	if s.draftText == text {
		return
	}
	s.draftText = text
	s.notifyUpdate()
}

// SetDraftStart sets the start time draft in seconds
func (s *Session) SetDraftStart(seconds float64) {
	if sameFloat(s.draftStart, seconds) {
		return
	}
	s.draftStart = seconds
	s.notifyUpdate()
}

// SetDraftEnd sets the end time draft in seconds
func (s *Session) SetDraftEnd(seconds float64) {
	if sameFloat(s.draftEnd, seconds) {
		return
	}
	s.draftEnd = seconds
	s.notifyUpdate()
}

// UseCurrentAsStart copies the playback position into the start draft
func (s *Session) UseCurrentAsStart() {
	s.SetDraftStart(s.currentTime)
}

// UseCurrentAsEnd copies the playback position into the end draft
func (s *Session) UseCurrentAsEnd() {
	s.SetDraftEnd(s.currentTime)
}

// AddCaption validates the drafts and appends a caption built from them.
// Empty text is reported through the notifier. An invalid interval is only
// reported when unified feedback is enabled; otherwise it is dropped silently.
func (s *Session) AddCaption() (model.Caption, error) {
	if s.draftText == "" {
		s.reject(ErrEmptyCaption)
		return model.Caption{}, ErrEmptyCaption
	}

	if !(s.draftStart >= 0 && s.draftEnd > s.draftStart) {
		if s.unifiedFeedback {
			s.reject(ErrInvalidInterval)
		}
		s.log.Debug("Caption interval rejected",
			zap.Float64("start", s.draftStart), zap.Float64("end", s.draftEnd))
		return model.Caption{}, ErrInvalidInterval
	}

	caption := model.Caption{
		ID:        s.newID(),
		StartTime: s.draftStart,
		EndTime:   s.draftEnd,
		Text:      s.draftText,
	}
	s.captions = s.captions.Append(caption)

	s.draftText = ""
	s.draftStart = 0
	s.draftEnd = 0

	s.log.Debug("Caption added", zap.String("id", caption.ID),
		zap.Float64("start", caption.StartTime), zap.Float64("end", caption.EndTime))
	s.notifyUpdate()
	return caption, nil
}

// RemoveCaption drops the caption with the given id. Unknown ids are ignored.
func (s *Session) RemoveCaption(id string) bool {
	next, removed := s.captions.Remove(id)
	if !removed {
		return false
	}
	s.captions = next
	s.notifyUpdate()
	return true
}

// Captions returns the captions in insertion order
func (s *Session) Captions() []model.Caption {
	return s.captions.Items()
}

// ActiveCaption returns the text to overlay at the current position
func (s *Session) ActiveCaption() string {
	return s.captions.ActiveText(s.currentTime)
}

// Playing reports whether the element last reported playback as running
func (s *Session) Playing() bool {
	return s.playing
}

// PlayPending reports whether a play request awaits the element's play event
func (s *Session) PlayPending() bool {
	return s.playPending
}

// CurrentTime returns the last reported playback position
func (s *Session) CurrentTime() float64 {
	return s.currentTime
}

// Snapshot returns the current state
func (s *Session) Snapshot() State {
	return State{
		PendingURL:    s.pendingURL,
		Source:        s.source,
		PlayerVisible: s.playerVisible,
		Playing:       s.playing,
		PlayPending:   s.playPending,
		Status:        s.status,
		CurrentTime:   s.currentTime,
		Duration:      s.duration,
		DraftText:     s.draftText,
		DraftStart:    s.draftStart,
		DraftEnd:      s.draftEnd,
		Captions:      s.captions.Items(),
		ActiveCaption: s.ActiveCaption(),
	}
}

// Close releases the media element
func (s *Session) Close() error {
	return s.element.Close()
}

func (s *Session) onMediaEvent(ev media.Event) {
	s.dispatchMu.Lock()
	dispatch := s.dispatch
	s.dispatchMu.Unlock()

	dispatch(func() { s.HandleMediaEvent(ev) })
}

func (s *Session) reject(err error) {
	if s.notifier != nil {
		s.notifier.Notify(err)
	}
}

func (s *Session) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate(s.Snapshot())
	}
}

// sameFloat treats two NaNs as equal so an unparsable field does not
// trigger endless updates
func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
