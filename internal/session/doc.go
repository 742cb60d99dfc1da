package session

// Package session holds the state of one caption-authoring session: the load
// control, the playback flags mirrored from the media element, the caption
// drafts and the caption list. The visible caption is never stored; it is
// selected from the list and the current position whenever it is asked for.
//
// A Session is not safe for concurrent use. Media notifications are routed
// through the dispatcher so that every transition runs on one goroutine.
