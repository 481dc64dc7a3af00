// Package uuid generates and validates record identifiers.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a new UUIDv7 string. Version 7 identifiers are time-ordered,
// which keeps primary key indexes append-mostly.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to UUIDv4 if the random source fails
		return googleuuid.New().String()
	}
	return id.String()
}

// Normalize validates s and returns its canonical lowercase form.
func Normalize(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
