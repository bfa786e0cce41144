// Package uuid generates the time-ordered identifiers used to tag requests.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. The leading 48 bits carry the Unix millisecond
// timestamp, so ids sort by creation time in request logs.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the entropy source fails
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID of any version.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
