package validator

import (
	"strings"
)

// Required reports whether every value is non-blank after trimming.
func Required(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// NormalizeEmail lowercases and trims an email address. Emails are stored
// and compared in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
