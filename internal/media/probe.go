package media

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ffprobe JSON paths
const (
	probeVideoStream = `streams.#(codec_type=="video")`
	probeDuration    = "format.duration"
)

// probeStream asks ffprobe for the geometry, frame rate and duration of src
func probeStream(src string) (StreamInfo, error) {
	out, err := ffmpeg.Probe(src)
	if err != nil {
		return StreamInfo{}, fmt.Errorf("failed to probe %s: %w", src, err)
	}
	return parseProbe(out)
}

// parseProbe extracts StreamInfo from ffprobe's -show_format -show_streams
// JSON output
func parseProbe(out string) (StreamInfo, error) {
	if !gjson.Valid(out) {
		return StreamInfo{}, fmt.Errorf("failed to parse probe output")
	}

	stream := gjson.Get(out, probeVideoStream)
	if !stream.Exists() {
		return StreamInfo{}, ErrNoVideoStream
	}

	info := StreamInfo{
		Width:  int(stream.Get("width").Int()),
		Height: int(stream.Get("height").Int()),
		FPS:    parseFrameRate(stream.Get("avg_frame_rate").String()),
	}
	if info.FPS <= 0 {
		info.FPS = parseFrameRate(stream.Get("r_frame_rate").String())
	}

	if d := gjson.Get(out, probeDuration); d.Exists() {
		info.Duration = d.Float()
	} else {
		info.Duration = stream.Get("duration").Float()
	}

	return info.sanitize()
}

// parseFrameRate parses ffprobe rates such as "30000/1001" or "25". Unknown
// rates ("0/0", "") yield 0.
func parseFrameRate(rate string) float64 {
	rate = strings.TrimSpace(rate)
	if rate == "" {
		return 0
	}

	num, den, found := strings.Cut(rate, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if !found {
		return n
	}

	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}
