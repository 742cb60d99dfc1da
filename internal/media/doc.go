package media

// Package media implements the media element the player surface wraps: it
// loads a source, decodes frames at the stream's pace on its own goroutine and
// reports play, pause, timeupdate and related notifications to a single event
// handler. Local files decode through Vidio, everything else through an
// ffmpeg rawvideo pipe built with ffmpeg-go.
