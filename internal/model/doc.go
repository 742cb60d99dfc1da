package model

// Package model defines domain data structures shared by the session and the
// UI: the caption entity, the insertion-ordered caption list with its
// active-caption matcher, media status enums and time formatting.
