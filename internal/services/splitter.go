package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// postMarker matches numbered-list markers like "\n1." or "\n  2)".
var postMarker = regexp.MustCompile(`\n\s*\d+[.)]`)

// minPostRunes filters out headers, stray marker text and other noise the
// model emits around the actual posts. Counted in runes, not bytes, so
// non-Latin output is measured correctly.
const minPostRunes = 30

// splitPosts splits a raw model draft on numbered-list markers, trims each
// fragment, drops the short noise fragments, and caps the result at maxCount.
// Fewer than maxCount posts (including none) is a valid outcome.
func splitPosts(raw string, maxCount int) []string {
	parts := postMarker.Split(raw, -1)

	posts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) <= minPostRunes {
			continue
		}
		posts = append(posts, p)
	}

	if len(posts) > maxCount {
		posts = posts[:maxCount]
	}
	return posts
}
