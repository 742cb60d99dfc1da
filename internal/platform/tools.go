package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

// External tools used by the media decoders
const (
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
)

// Tools holds resolved paths of the external media tools
type Tools struct {
	FFmpeg  string
	FFprobe string
}

// lookPath is swapped in tests
var lookPath = exec.LookPath

// FindTools resolves ffmpeg and ffprobe on PATH. The returned Tools holds
// whatever was found even when an error is reported for the rest.
func FindTools() (Tools, error) {
	var tools Tools
	var missing []string

	if path, err := lookPath(FFmpegCommand); err == nil {
		tools.FFmpeg = path
	} else {
		missing = append(missing, FFmpegCommand)
	}

	if path, err := lookPath(FFprobeCommand); err == nil {
		tools.FFprobe = path
	} else {
		missing = append(missing, FFprobeCommand)
	}

	if len(missing) > 0 {
		return tools, fmt.Errorf("media tools not found on PATH: %s", strings.Join(missing, ", "))
	}
	return tools, nil
}
