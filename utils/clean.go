package utils

import (
	"regexp"
	"strings"
)

var unsafeNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// CleanFileName replaces characters that are not allowed in file names on
// common filesystems.
func CleanFileName(input string) string {
	cleaned := unsafeNameChars.ReplaceAllString(input, "_")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimRight(cleaned, ". ")
	if cleaned == "" {
		return "book"
	}
	return cleaned
}
