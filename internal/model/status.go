package model

// MediaStatus represents the state of the media element
type MediaStatus string

const (
	// MediaStatusEmpty means no source has been loaded
	MediaStatusEmpty MediaStatus = "Empty"

	// MediaStatusLoading means the source is being opened and probed
	MediaStatusLoading MediaStatus = "Loading"

	// MediaStatusReady means metadata is known and playback is paused
	MediaStatusReady MediaStatus = "Ready"

	// MediaStatusPlaying means frames are being decoded and presented
	MediaStatusPlaying MediaStatus = "Playing"

	// MediaStatusPaused means playback was paused by request
	MediaStatusPaused MediaStatus = "Paused"

	// MediaStatusEnded means playback reached the end of the stream
	MediaStatusEnded MediaStatus = "Ended"

	// MediaStatusError means the source could not be opened or decoded
	MediaStatusError MediaStatus = "Error"
)

// String returns the string representation of MediaStatus
func (ms MediaStatus) String() string {
	return string(ms)
}

// IsPlayable returns true if the element has a decodable source
func (ms MediaStatus) IsPlayable() bool {
	return ms == MediaStatusReady || ms == MediaStatusPlaying || ms == MediaStatusPaused || ms == MediaStatusEnded
}

// IsFinished returns true if no further frames will be produced without a
// new load or play request
func (ms MediaStatus) IsFinished() bool {
	return ms == MediaStatusEnded || ms == MediaStatusError
}
