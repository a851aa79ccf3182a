package utils

import "github.com/google/uuid"

// GetToken returns a random opaque identifier.
func GetToken() string {
	return uuid.NewString()
}
