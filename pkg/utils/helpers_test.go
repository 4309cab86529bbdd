package utils

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Senior Go Developer", "senior-go-developer"},
		{"punctuation collapses", "C++ / Rust Engineer (Remote)", "c-rust-engineer-remote"},
		{"accents fold", "Développeur Génial", "developpeur-genial"},
		{"edge separators trimmed", "  --Hello World--  ", "hello-world"},
		{"numbers kept", "Top 10 Jobs 2024", "top-10-jobs-2024"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Senior Go Developer",
		"C++ / Rust Engineer (Remote)",
		"Développeur Génial",
	}

	for _, input := range inputs {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once), "slugifying a slug must be a no-op")
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", Sanitize("<script>alert(1)</script>"))
	assert.Equal(t, "plain text", Sanitize("  plain text  "))
	assert.Equal(t, "a &amp; b", Sanitize("a & b"))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "one two...", TruncateText("one two three four", 9))
}

func TestTruncateTextMultiByte(t *testing.T) {
	assert.Equal(t, "héllo wörld...", TruncateText("héllo wörld wide", 12))

	out := TruncateText("日本語のテキストです", 4)
	assert.Equal(t, "日本語の...", out)
	assert.True(t, utf8.ValidString(out))
}
