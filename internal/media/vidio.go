package media

import (
	"fmt"
	"image"
	"io"

	vidio "github.com/AlexEidt/Vidio"
)

// vidioDecoder reads local files frame by frame through Vidio
type vidioDecoder struct {
	video *vidio.Video
	info  StreamInfo
}

func openVidio(path string) (Decoder, error) {
	video, err := vidio.NewVideo(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video %s: %w", path, err)
	}

	info, err := StreamInfo{
		Width:    video.Width(),
		Height:   video.Height(),
		FPS:      video.FPS(),
		Duration: video.Duration(),
	}.sanitize()
	if err != nil {
		video.Close()
		return nil, fmt.Errorf("video %s: %w", path, err)
	}

	return &vidioDecoder{video: video, info: info}, nil
}

func (d *vidioDecoder) Info() StreamInfo {
	return d.info
}

func (d *vidioDecoder) Next(dst *image.RGBA) error {
	if !d.video.Read() {
		return io.EOF
	}
	copy(dst.Pix, d.video.FrameBuffer())
	return nil
}

func (d *vidioDecoder) Close() error {
	d.video.Close()
	return nil
}
