package utils

import (
	"html"
	"strings"
)

// SanitizeString trims surrounding whitespace and escapes HTML metacharacters.
func SanitizeString(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// SanitizeEmail lowercases and trims an email address. HTML escaping is skipped
// because the value is matched against stored emails, not rendered.
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizeUsername lowercases, trims, and strips inner spaces.
func SanitizeUsername(username string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(username)), " ", "")
}
