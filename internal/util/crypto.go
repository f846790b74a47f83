// Package util holds small helpers shared across packages: password rules,
// token hashing, search parsing and filesystem locations.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"unicode"
)

// HashToken returns the hex SHA-256 of a session token. Only the hash is stored.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidatePassword enforces the minimum password policy.
func ValidatePassword(pass string) error {
	if len(pass) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if len(pass) > 72 {
		return fmt.Errorf("password must be at most 72 bytes")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range pass {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("password must contain uppercase, lowercase, and digit")
	}
	return nil
}
