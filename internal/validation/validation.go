// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateUsername checks username length and allowed characters.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username may only contain letters, numbers, dots, hyphens, and underscores")
	}
	return nil
}

// NormalizeEmail trims whitespace and lowercases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the minimal shape of an address: it must contain an
// "@" and the domain part after the last "@" must contain a ".".
func ValidateEmail(email string) error {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return fmt.Errorf("invalid email address")
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return fmt.Errorf("invalid email domain")
	}
	return nil
}

// ValidatePassword checks basic password requirements. The stored credential
// is a one-way hash, so the only hard rules are non-empty and a bcrypt-safe
// length.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}
	if len(password) > 72 {
		return fmt.Errorf("password must not exceed 72 characters")
	}
	return nil
}
