package util

import (
	"github.com/google/uuid"
)

// GenerateID generates a unique identifier for a stored record
func GenerateID() string {
	return uuid.NewString()
}
