package platform

import (
	"errors"
	"strings"
	"testing"
)

func TestFindTools(t *testing.T) {
	original := lookPath
	defer func() { lookPath = original }()

	tests := []struct {
		name      string
		available map[string]string
		wantErr   string
	}{
		{
			name:      "both present",
			available: map[string]string{FFmpegCommand: "/usr/bin/ffmpeg", FFprobeCommand: "/usr/bin/ffprobe"},
		},
		{
			name:      "ffprobe missing",
			available: map[string]string{FFmpegCommand: "/usr/bin/ffmpeg"},
			wantErr:   FFprobeCommand,
		},
		{
			name:      "nothing installed",
			available: map[string]string{},
			wantErr:   FFmpegCommand + ", " + FFprobeCommand,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lookPath = func(file string) (string, error) {
				if path, ok := test.available[file]; ok {
					return path, nil
				}
				return "", errors.New("not found")
			}

			tools, err := FindTools()
			if test.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", test.wantErr, err)
			}

			if tools.FFmpeg != test.available[FFmpegCommand] {
				t.Errorf("FFmpeg = %q, expected %q", tools.FFmpeg, test.available[FFmpegCommand])
			}
			if tools.FFprobe != test.available[FFprobeCommand] {
				t.Errorf("FFprobe = %q, expected %q", tools.FFprobe, test.available[FFprobeCommand])
			}
		})
	}
}
