package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	unsafeCharsRe = regexp.MustCompile(`[^a-zA-Z0-9_\-.]`)
)

// SanitizeFilename makes an uploaded filename safe for use inside a storage
// object key: whitespace runs collapse to a single underscore, then everything
// but letters, digits, underscore, hyphen and dot is stripped.
func SanitizeFilename(name string) string {
	name = whitespaceRe.ReplaceAllString(name, "_")
	return unsafeCharsRe.ReplaceAllString(name, "")
}

// FileNameFromURL extracts the trailing path segment of a public URL, minus
// any query string. Used for display names of stored PDFs.
func FileNameFromURL(url string) string {
	if url == "" {
		return ""
	}
	parts := strings.Split(url, "/")
	last := parts[len(parts)-1]
	if i := strings.IndexByte(last, '?'); i >= 0 {
		last = last[:i]
	}
	return last
}
