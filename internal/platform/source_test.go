package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestNormalizeSource_PassThrough(t *testing.T) {
	tests := []string{
		"",
		"https://example.com/video.mp4",
		"http://example.com/a b.mp4",
		"rtsp://camera.local/stream",
		"not a url at all",
		"/var/media/clip.mp4",
		"relative/clip.mp4",
	}

	for _, src := range tests {
		if got := NormalizeSource(src); got != src {
			t.Errorf("NormalizeSource(%q) = %q, expected unchanged", src, got)
		}
	}
}

func TestNormalizeSource_FileURI(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("unix path layout")
	}

	got := NormalizeSource("file:///var/media/clip.mp4")
	if got != "/var/media/clip.mp4" {
		t.Errorf("expected /var/media/clip.mp4, got %s", got)
	}

	got = NormalizeSource("file:///var/media/with%20space.mp4")
	if got != "/var/media/with space.mp4" {
		t.Errorf("expected decoded space, got %s", got)
	}
}

func TestNormalizeSource_HomePrefix(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got := NormalizeSource("~/Videos/clip.mp4")
	expected := filepath.Join(home, "Videos", "clip.mp4")
	if got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestIsLocalFile(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "clip.mp4")
	if err := os.WriteFile(file, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tests := []struct {
		src      string
		expected bool
	}{
		{file, true},
		{tempDir, false},
		{filepath.Join(tempDir, "missing.mp4"), false},
		{"", false},
		{"https://example.com/video.mp4", false},
	}

	for _, test := range tests {
		if got := IsLocalFile(test.src); got != test.expected {
			t.Errorf("IsLocalFile(%q) = %v, expected %v", test.src, got, test.expected)
		}
	}
}

func TestGetHomeVideosDir(t *testing.T) {
	dir, err := GetHomeVideosDir()
	if err != nil {
		t.Fatalf("Failed to get videos directory: %v", err)
	}
	if dir == "" {
		t.Fatal("Videos directory is empty")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("returned directory should exist: %v", err)
	}
}
