package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for account fields.
const (
	maxNameLen     = 200
	maxUsernameLen = 100
	minPasswordLen = 6
)

// validateSignup checks the signup payload and returns the first error found.
func validateSignup(req signupRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(req.Name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if strings.TrimSpace(req.Username) == "" {
		return "Username is required."
	}
	if utf8.RuneCountInString(req.Username) > maxUsernameLen {
		return "Username is too long (max 100 characters)."
	}
	if req.Password == "" {
		return "Password is required."
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLen {
		return "Password must be at least 6 characters."
	}
	return ""
}
