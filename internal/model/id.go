package model

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// CaptionIDPrefix marks ids produced by NewCaptionID
const CaptionIDPrefix = "caption-"

var captionSeq atomic.Uint64

// NewCaptionID generates a unique caption id using UUID v7, which is time
// ordered like the creation timestamp it replaces.
func NewCaptionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to a process-wide counter if UUID generation fails
		return fmt.Sprintf(CaptionIDPrefix+"%d", captionSeq.Add(1))
	}
	return CaptionIDPrefix + id.String()
}
