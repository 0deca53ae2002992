// Package sanitize provides pure, total string cleaning functions for
// user-supplied story text, filenames and tool names. None of them
// return errors: malformed input degrades to a shorter (possibly empty)
// safe string.
package sanitize

import (
	"regexp"
	"strings"
)

const (
	// maxStoryLength is the maximum length of a sanitized user story
	maxStoryLength = 500

	// maxNameLength is the maximum length of a sanitized file or tool name
	maxNameLength = 100
)

var (
	filenameInvalid  = regexp.MustCompile(`[^a-z0-9-]`)
	filenameCollapse = regexp.MustCompile(`-+`)
	toolNameInvalid  = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// UserStory removes angle brackets and control characters from a raw
// story, trims surrounding whitespace and truncates to 500 characters.
// May return an empty string.
func UserStory(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if r == '<' || r == '>' {
			continue
		}
		if r < 0x20 || r == 0x7F {
			continue
		}
		b.WriteRune(r)
	}

	cleaned := strings.TrimSpace(b.String())
	return truncate(cleaned, maxStoryLength)
}

// Filename converts arbitrary text into a filesystem-safe slug:
// lowercase, every run of characters outside [a-z0-9-] replaced with a
// single hyphen, no leading or trailing hyphens, at most 100 characters.
func Filename(text string) string {
	name := strings.ToLower(text)
	name = filenameInvalid.ReplaceAllString(name, "-")
	name = filenameCollapse.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	return truncate(name, maxNameLength)
}

// ToolName trims a tool name and strips characters outside
// [a-zA-Z0-9_-], truncating to 100 characters.
func ToolName(text string) string {
	name := strings.TrimSpace(text)
	name = toolNameInvalid.ReplaceAllString(name, "")
	return truncate(name, maxNameLength)
}

// truncate shortens s to at most max runes without splitting a
// multi-byte character.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
