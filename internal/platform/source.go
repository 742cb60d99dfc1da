package platform

import (
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
)

// Source prefixes
const (
	FileScheme = "file"
	HomePrefix = "~/"
)

// NormalizeSource maps a user supplied media source to something the decoders
// can open: file:// URIs and ~/ paths become local paths, everything else is
// returned untouched. No validation is performed.
func NormalizeSource(raw string) string {
	if strings.HasPrefix(raw, HomePrefix) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, raw[len(HomePrefix):])
		}
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme != FileScheme {
		return raw
	}

	path := u.Path
	if runtime.GOOS == OSWindows {
		// file:///C:/videos/a.mp4 parses to /C:/videos/a.mp4
		path = strings.TrimPrefix(path, "/")
	}
	if path == "" {
		return raw
	}
	return filepath.FromSlash(path)
}

// IsLocalFile reports whether src names an existing regular file
func IsLocalFile(src string) bool {
	if src == "" {
		return false
	}
	info, err := os.Stat(src)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// GetHomeVideosDir returns the standard videos directory for the user
func GetHomeVideosDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	name := "Videos"
	if runtime.GOOS == OSDarwin {
		name = "Movies"
	}

	dir := filepath.Join(homeDir, name)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir, nil
	}
	return homeDir, nil
}
