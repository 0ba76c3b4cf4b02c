package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const requestIDLength = 12

// NewRequestID returns a short unique id used to correlate a single
// question across logs and the audit trail.
func NewRequestID() string {
	id, err := gonanoid.New(requestIDLength)
	if err != nil {
		// gonanoid only fails when the platform RNG is broken; an empty
		// correlation id is still safe to use downstream.
		return ""
	}
	return id
}
