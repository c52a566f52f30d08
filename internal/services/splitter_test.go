package services

import (
	"strings"
	"testing"
)

const (
	longA = "This fragment is comfortably longer than the noise threshold used by the splitter."
	longB = "Another fragment that clears the threshold with plenty of room to spare for testing."
	longC = "A third fragment, also long enough that the splitter keeps it in the output list."
	longD = "Yet another post body that should survive the splitter noise filtering step fine."
)

func TestSplitPosts(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		maxCount int
		expected []string
	}{
		{
			name:     "dot markers",
			raw:      "Here are the posts\n1. " + longA + "\n2. " + longB,
			maxCount: 5,
			expected: []string{longA, longB},
		},
		{
			name:     "paren markers",
			raw:      "\n1) " + longA + "\n2) " + longB,
			maxCount: 5,
			expected: []string{longA, longB},
		},
		{
			name:     "indented markers",
			raw:      "\n  1. " + longA + "\n\t2. " + longB,
			maxCount: 5,
			expected: []string{longA, longB},
		},
		{
			name:     "truncates to max count",
			raw:      "\n1. " + longA + "\n2. " + longB + "\n3. " + longC + "\n4. " + longD,
			maxCount: 3,
			expected: []string{longA, longB, longC},
		},
		{
			name:     "drops short fragments",
			raw:      "Posts:\n1. Too short\n2. " + longA + "\n3. ok",
			maxCount: 5,
			expected: []string{longA},
		},
		{
			name:     "no markers keeps whole text",
			raw:      longA,
			maxCount: 5,
			expected: []string{longA},
		},
		{
			name:     "no markers short text yields nothing",
			raw:      "short blurb",
			maxCount: 5,
			expected: []string{},
		},
		{
			name:     "empty input",
			raw:      "",
			maxCount: 5,
			expected: []string{},
		},
		{
			name:     "marker needs preceding newline",
			raw:      "1. " + longA,
			maxCount: 5,
			expected: []string{"1. " + longA},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitPosts(tt.raw, tt.maxCount)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d posts, got %d: %v", len(tt.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Post %d: expected %q, got %q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestSplitPostsCountsRunesNotBytes(t *testing.T) {
	// 31 Devanagari characters is well over 31 bytes in UTF-8; the threshold
	// must still be measured in characters.
	hindi := strings.Repeat("न", 31)
	got := splitPosts("\n1. "+hindi, 5)
	if len(got) != 1 {
		t.Fatalf("Expected 1 post for 31-rune fragment, got %d", len(got))
	}

	short := strings.Repeat("न", 30)
	got = splitPosts("\n1. "+short, 5)
	if len(got) != 0 {
		t.Errorf("Expected 30-rune fragment to be discarded, got %v", got)
	}
}

func TestSplitPostsTrimsFragments(t *testing.T) {
	got := splitPosts("\n1.   "+longA+"  \n", 5)
	if len(got) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(got))
	}
	if got[0] != longA {
		t.Errorf("Expected trimmed fragment %q, got %q", longA, got[0])
	}
}
