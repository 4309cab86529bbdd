package utils

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GenerateRequestID generates a unique request ID for tracking
func GenerateRequestID() string {
	return uuid.New().String()
}

// foldDiacritics strips combining marks so accented titles slug cleanly.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe identifier from a title: lowercase, with
// everything outside [a-z0-9] collapsed to single hyphens and no hyphen
// at either edge. Re-running it on its own output is a no-op.
func Slugify(title string) string {
	folded, _, err := transform.String(foldDiacritics, title)
	if err != nil {
		folded = title
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Sanitize trims whitespace and escapes markup-significant characters
// so stored values are safe to echo into rendered documents.
func Sanitize(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// TruncateText shortens text to at most length characters, cutting at
// the last word boundary and appending an ellipsis. Length counts
// runes so multi-byte text is never split mid-character.
func TruncateText(text string, length int) string {
	if utf8.RuneCountInString(text) <= length {
		return text
	}
	cut := string([]rune(text)[:length])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

// Contains checks if a string slice contains a specific string
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// GetStringOrDefault returns the value if not empty, otherwise returns the default
func GetStringOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
