package service

import (
	"regexp"
	"strings"
)

var (
	slugSpaces = regexp.MustCompile(`\s+`)
	// keeps word characters and extended Latin letters, so accented
	// French titles slugify without losing their letters
	slugStrip  = regexp.MustCompile(`[^\w\x{00C0}-\x{024F}-]+`)
	slugDashes = regexp.MustCompile(`--+`)
)

// Slugify derives a URL-safe identifier from a post title.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugStrip.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
