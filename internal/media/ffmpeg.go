package media

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os/exec"
	"sync"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// rawvideo output settings
const (
	PipeOutput     = "pipe:"
	RawVideoFormat = "rawvideo"
	RGBAPixFormat  = "rgba"
)

// ffmpegDecoder streams rawvideo RGBA frames from an ffmpeg process. It handles
// any source ffmpeg can read, including http(s) URLs.
type ffmpegDecoder struct {
	cmd  *exec.Cmd
	out  *io.PipeReader
	info StreamInfo

	done      chan struct{}
	closeOnce sync.Once
}

func openFFmpeg(ctx context.Context, src string) (Decoder, error) {
	info, err := probeStream(src)
	if err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	cmd := ffmpeg.Input(src).
		Output(PipeOutput, buildOutputArgs()).
		WithOutput(pw).
		Compile()

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	d := &ffmpegDecoder{
		cmd:  cmd,
		out:  pr,
		info: info,
		done: make(chan struct{}),
	}

	// Wait for process exit and propagate it to the reader
	go func() {
		pw.CloseWithError(cmd.Wait())
	}()

	// Kill ffmpeg when the source is replaced mid-read
	go func() {
		select {
		case <-ctx.Done():
			d.kill()
		case <-d.done:
		}
	}()

	return d, nil
}

// buildOutputArgs builds the ffmpeg output arguments for rawvideo RGBA frames
func buildOutputArgs() ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"format":   RawVideoFormat,
		"pix_fmt":  RGBAPixFormat,
		"loglevel": "error",
	}
}

func (d *ffmpegDecoder) Info() StreamInfo {
	return d.info
}

func (d *ffmpegDecoder) Next(dst *image.RGBA) error {
	size := d.info.Width * d.info.Height * 4
	if len(dst.Pix) < size {
		return ErrInvalidGeometry
	}

	_, err := io.ReadFull(d.out, dst.Pix[:size])
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return io.EOF
	}
	return err
}

func (d *ffmpegDecoder) Close() error {
	d.closeOnce.Do(func() {
		close(d.done)
		d.kill()
		d.out.Close()
	})
	return nil
}

func (d *ffmpegDecoder) kill() {
	if d.cmd.Process != nil {
		// Error ignored: the process may already have exited
		_ = d.cmd.Process.Kill()
	}
}
