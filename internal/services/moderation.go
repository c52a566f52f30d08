package services

import "regexp"

// bannedTerms is a deliberately small guardrail list. Matching is whole-word
// and case-insensitive, so superstrings like "killjoy" pass through.
var bannedTerms = []string{"fuck", "shit", "hate", "kill"}

var bannedPatterns = compileBannedPatterns()

func compileBannedPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(bannedTerms))
	for _, term := range bannedTerms {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+term+`\b`))
	}
	return patterns
}

// cleanText replaces every banned term with "[removed]". The replacement
// contains no banned term, so the function is idempotent.
func cleanText(text string) string {
	for _, re := range bannedPatterns {
		text = re.ReplaceAllString(text, "[removed]")
	}
	return text
}
