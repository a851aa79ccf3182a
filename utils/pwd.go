package utils

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex digest stored for a password. The digest
// is deterministic so login can recompute and compare.
func HashPassword(pwd string) string {
	sum := sha1.Sum([]byte(pwd))
	return hex.EncodeToString(sum[:])
}

// CheckPassword verifies a password against a stored digest. A mismatch
// is a normal outcome, not an error.
func CheckPassword(pwd string, digest string) bool {
	computed := HashPassword(pwd)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
