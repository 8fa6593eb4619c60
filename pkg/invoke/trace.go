package invoke

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewTraceparent returns a version-00, sampled W3C traceparent with a random
// trace id and span id.
func NewTraceparent() string {
	trace := uuid.New()
	span := uuid.New()
	return "00-" + hex.EncodeToString(trace[:]) + "-" + hex.EncodeToString(span[:8]) + "-01"
}
