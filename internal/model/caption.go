package model

import (
	"fmt"
	"math"
	"strings"
)

// Time formatting constants
const (
	SecondsPerMinute = 60
	TimeFormat       = "%02d:%02d"
)

// Caption is a piece of text shown over the video while playback position is
// within [StartTime, EndTime].
type Caption struct {
	ID        string  `json:"id"`
	StartTime float64 `json:"start_time"` // seconds
	EndTime   float64 `json:"end_time"`   // seconds
	Text      string  `json:"text"`
}

// Contains reports whether position t falls inside the caption interval.
// Both bounds are inclusive.
func (c Caption) Contains(t float64) bool {
	return c.StartTime <= t && t <= c.EndTime
}

// Interval returns the caption interval formatted as "MM:SS - MM:SS".
func (c Caption) Interval() string {
	var b strings.Builder
	b.WriteString(FormatTime(c.StartTime))
	b.WriteString(" - ")
	b.WriteString(FormatTime(c.EndTime))
	return b.String()
}

// FormatTime renders a duration in seconds as MM:SS. There is no hours field,
// so an hour and more keeps counting minutes (3661 -> "61:01").
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}

	minutes := int64(math.Floor(seconds / SecondsPerMinute))
	secs := int64(math.Floor(math.Mod(seconds, SecondsPerMinute)))
	return fmt.Sprintf(TimeFormat, minutes, secs)
}
