package media

import (
	"context"
	"errors"
	"image"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/caption-player/internal/logging"
	"github.com/ytget/caption-player/internal/model"
)

// Timeupdate pacing
const (
	DefaultTimeUpdateInterval = 250 * time.Millisecond
	MinTimeUpdateInterval     = 10 * time.Millisecond
	MaxTimeUpdateInterval     = 2 * time.Second
)

// frameBuffers is the number of frame images rotated by the decode loop
const frameBuffers = 3

// Player is the Element implementation used by the app. Each Load starts a
// track goroutine that owns the decoder; Play and Pause only record the
// wanted state and wake the track, which emits play/pause once it acts.
type Player struct {
	mu             sync.Mutex
	open           Opener
	log            *zap.Logger
	updateInterval time.Duration
	frameHandler   func(*image.RGBA)
	events         *eventQueue

	track    *track
	status   model.MediaStatus
	position float64
	duration float64
	closed   bool
}

// track is one loaded source. wantPlay is guarded by Player.mu.
type track struct {
	src      string
	ctx      context.Context
	cancel   context.CancelFunc
	wake     chan struct{}
	wantPlay bool
}

func (t *track) signal() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

var _ Element = (*Player)(nil)

// NewPlayer creates an empty player using OpenDecoder for sources
func NewPlayer(logger *zap.Logger) *Player {
	return &Player{
		open:           OpenDecoder,
		log:            logging.OrNop(logger),
		updateInterval: DefaultTimeUpdateInterval,
		events:         newEventQueue(),
		status:         model.MediaStatusEmpty,
	}
}

// SetOpener replaces the decoder factory used by subsequent loads
func (p *Player) SetOpener(open Opener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if open == nil {
		open = OpenDecoder
	}
	p.open = open
}

// SetTimeUpdateInterval sets how often timeupdate fires during playback
func (p *Player) SetTimeUpdateInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTimeUpdateInterval
	}
	if interval < MinTimeUpdateInterval {
		interval = MinTimeUpdateInterval
	}
	if interval > MaxTimeUpdateInterval {
		interval = MaxTimeUpdateInterval
	}

	p.mu.Lock()
	p.updateInterval = interval
	p.mu.Unlock()
}

// SetEventHandler sets the callback receiving media notifications
func (p *Player) SetEventHandler(handler func(Event)) {
	p.events.setHandler(handler)
}

// SetFrameHandler sets the callback receiving decoded frames. The handler
// runs while the player is locked and must not call back into the player.
func (p *Player) SetFrameHandler(handler func(*image.RGBA)) {
	p.mu.Lock()
	p.frameHandler = handler
	p.mu.Unlock()
}

// Status returns the current media status
func (p *Player) Status() model.MediaStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Source returns the source of the current track
func (p *Player) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.track == nil {
		return ""
	}
	return p.track.src
}

// CurrentTime returns the playback position in seconds
func (p *Player) CurrentTime() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

// Duration returns the stream duration in seconds, 0 when unknown
func (p *Player) Duration() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration
}

// Paused reports whether frames are not currently being presented
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status != model.MediaStatusPlaying
}

// Load abandons the current track and starts loading src
func (p *Player) Load(src string) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}

	old := p.track
	if old != nil {
		old.cancel()
		if p.status == model.MediaStatusPlaying {
			p.emitLocked(EventPause, old.src, nil)
		}
		p.emitLocked(EventEmptied, old.src, nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &track{
		src:    src,
		ctx:    ctx,
		cancel: cancel,
		wake:   make(chan struct{}, 1),
	}
	p.track = t
	p.duration = 0
	if p.position != 0 {
		p.position = 0
		p.emitLocked(EventTimeUpdate, src, nil)
	}
	p.status = model.MediaStatusLoading
	p.mu.Unlock()

	p.log.Debug("Loading media source", zap.String("source", src))
	go p.run(t)
}

// Play requests playback of the current track
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.track == nil || p.status == model.MediaStatusEmpty || p.status == model.MediaStatusError {
		return ErrNoSource
	}
	if !p.track.wantPlay {
		p.track.wantPlay = true
		p.track.signal()
	}
	return nil
}

// Pause requests a pause of the current track
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.track != nil && p.track.wantPlay {
		p.track.wantPlay = false
		p.track.signal()
	}
	return nil
}

// Close stops playback and releases the current track
func (p *Player) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	if p.track != nil {
		p.track.cancel()
	}
	p.status = model.MediaStatusEmpty
	p.mu.Unlock()

	p.events.close()
	return nil
}

func (p *Player) emitLocked(typ EventType, src string, err error) {
	p.events.push(Event{Type: typ, Source: src, Time: p.position, Err: err})
}

// withTrack runs fn under the lock if t is still the current track
func (p *Player) withTrack(t *track, fn func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.track != t {
		return false
	}
	fn()
	return true
}

// fail moves the track to the error state
func (p *Player) fail(t *track, err error, wasPlaying bool) {
	p.log.Warn("Media source failed", zap.String("source", t.src), zap.Error(err))
	p.withTrack(t, func() {
		t.wantPlay = false
		p.status = model.MediaStatusError
		if wasPlaying {
			p.emitLocked(EventPause, t.src, nil)
		}
		p.emitLocked(EventError, t.src, err)
	})
}

// run owns the decoder of track t until t is replaced or closed
func (p *Player) run(t *track) {
	var open Opener
	if !p.withTrack(t, func() {
		open = p.open
		p.emitLocked(EventLoadStart, t.src, nil)
	}) {
		return
	}

	if t.src == "" {
		p.fail(t, ErrNoSource, false)
		return
	}

	dec, err := open(t.ctx, t.src)
	if err != nil {
		if t.ctx.Err() == nil {
			p.fail(t, err, false)
		}
		return
	}
	defer func() {
		if dec != nil {
			dec.Close()
		}
	}()

	info := dec.Info()
	if info.FPS <= 0 {
		info.FPS = DefaultFPS
	}
	if !p.withTrack(t, func() {
		p.duration = info.Duration
		p.status = model.MediaStatusReady
		p.emitLocked(EventLoadedMetadata, t.src, nil)
	}) {
		return
	}

	frames := make([]*image.RGBA, frameBuffers)
	for i := range frames {
		frames[i] = image.NewRGBA(image.Rect(0, 0, info.Width, info.Height))
	}
	frameInterval := time.Duration(float64(time.Second) / info.FPS)

	var ticker *time.Ticker
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
		}
	}
	defer stopTicker()

	playing := false
	ended := false
	decoded := 0
	lastUpdate := 0.0

	for {
		var want bool
		if !p.withTrack(t, func() { want = t.wantPlay }) {
			return
		}

		switch {
		case want && !playing:
			if ended {
				// Playing after the end restarts from the beginning
				dec.Close()
				dec = nil
				next, err := open(t.ctx, t.src)
				if err != nil {
					if t.ctx.Err() == nil {
						p.fail(t, err, false)
					}
					return
				}
				dec = next
				ended = false
				decoded = 0
				lastUpdate = 0
				p.withTrack(t, func() {
					p.position = 0
					p.emitLocked(EventTimeUpdate, t.src, nil)
				})
			}
			playing = true
			ticker = time.NewTicker(frameInterval)
			p.withTrack(t, func() {
				p.status = model.MediaStatusPlaying
				p.emitLocked(EventPlay, t.src, nil)
			})
		case !want && playing:
			playing = false
			stopTicker()
			p.withTrack(t, func() {
				p.status = model.MediaStatusPaused
				p.emitLocked(EventTimeUpdate, t.src, nil)
				p.emitLocked(EventPause, t.src, nil)
			})
		}

		var tick <-chan time.Time
		if playing {
			tick = ticker.C
		}

		select {
		case <-t.ctx.Done():
			return
		case <-t.wake:
			continue
		case <-tick:
		}

		frame := frames[decoded%frameBuffers]
		err := dec.Next(frame)
		if errors.Is(err, io.EOF) {
			playing = false
			ended = true
			stopTicker()
			p.withTrack(t, func() {
				t.wantPlay = false
				p.status = model.MediaStatusEnded
				if p.duration > p.position {
					p.position = p.duration
				}
				p.emitLocked(EventTimeUpdate, t.src, nil)
				p.emitLocked(EventPause, t.src, nil)
				p.emitLocked(EventEnded, t.src, nil)
			})
			continue
		}
		if err != nil {
			if t.ctx.Err() == nil {
				p.fail(t, err, true)
			}
			return
		}

		decoded++
		position := float64(decoded-1) / info.FPS

		// The frame is handed over under the lock so a Load cannot slip in
		// between the track check and delivery.
		if !p.withTrack(t, func() {
			p.position = position
			if decoded == 1 || position-lastUpdate >= p.updateInterval.Seconds() {
				lastUpdate = position
				p.emitLocked(EventTimeUpdate, t.src, nil)
			}
			if p.frameHandler != nil {
				p.frameHandler(frame)
			}
		}) {
			return
		}
	}
}
