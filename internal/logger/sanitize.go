package logger

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxPathLength caps URL paths in request logs.
	MaxPathLength = 500
	// MaxCommandLength caps raw chat command text in logs. Commands are a
	// single line but arrive from untrusted clients.
	MaxCommandLength = 1000
	// MaxErrorMessageLength caps error messages in logs.
	MaxErrorMessageLength = 1000
)

// SanitizePath sanitizes a URL path for safe logging.
func SanitizePath(path string) string {
	if path == "" {
		return ""
	}
	path = filterRunes(path)
	if len(path) > MaxPathLength {
		path = path[:MaxPathLength] + "..."
	}
	return path
}

// SanitizeCommand sanitizes raw chat command text before it is logged.
// Control characters are stripped so a crafted command cannot forge log lines.
func SanitizeCommand(text string) string {
	return SanitizeString(text, MaxCommandLength)
}

// SanitizeString removes control characters, validates UTF-8 and truncates
// to maxLength.
func SanitizeString(s string, maxLength int) string {
	if s == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = MaxErrorMessageLength
	}
	s = filterRunes(s)
	if len(s) > maxLength {
		s = s[:maxLength] + "..."
	}
	return s
}

// SanitizeError sanitizes an error message for safe logging.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error(), MaxErrorMessageLength)
}

// filterRunes validates UTF-8 and removes control characters, keeping
// printable runes plus space, tab, newline and CR.
func filterRunes(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsPrint(r) || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
