package media

import (
	"context"
	"image"

	"github.com/ytget/caption-player/internal/platform"
)

// DefaultFPS is assumed when a stream does not report a usable frame rate
const DefaultFPS = 25.0

// StreamInfo describes the decoded video stream
type StreamInfo struct {
	Width    int
	Height   int
	FPS      float64
	Duration float64 // seconds, 0 when unknown
}

// Decoder produces RGBA frames in presentation order
type Decoder interface {
	Info() StreamInfo
	// Next decodes the next frame into dst, which must be Width x Height.
	// It returns io.EOF after the last frame.
	Next(dst *image.RGBA) error
	Close() error
}

// Opener opens a decoder for a source. The context is cancelled when the
// source is replaced or the element is closed.
type Opener func(ctx context.Context, src string) (Decoder, error)

// OpenDecoder picks a decoder for src: Vidio for existing local files, an
// ffmpeg pipe for everything else.
func OpenDecoder(ctx context.Context, src string) (Decoder, error) {
	if src == "" {
		return nil, ErrNoSource
	}

	path := platform.NormalizeSource(src)
	if platform.IsLocalFile(path) {
		return openVidio(path)
	}
	return openFFmpeg(ctx, path)
}

// sanitize fills defaults and rejects geometry a frame cannot be built from
func (si StreamInfo) sanitize() (StreamInfo, error) {
	if si.Width <= 0 || si.Height <= 0 {
		return si, ErrInvalidGeometry
	}
	if si.FPS <= 0 {
		si.FPS = DefaultFPS
	}
	if si.Duration < 0 {
		si.Duration = 0
	}
	return si, nil
}
