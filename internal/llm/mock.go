package llm

import (
	"context"
	"strings"
)

// Mock is a canned offline implementation for local development. It keys off
// stable prompt markers so the full generation pipeline works without a key.
type Mock struct{}

func (m Mock) Complete(_ context.Context, _ string, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "Based on this plan"):
		var sb strings.Builder
		sb.WriteString("Here are the drafts:\n")
		sb.WriteString("1. Teams that write things down move faster, because decisions stop living in one person's head and start living where everyone can find them.\n")
		sb.WriteString("2. The best onboarding doc is the one a new hire can follow alone on day one. Everything else is tribal knowledge waiting to be lost.\n")
		sb.WriteString("3. Before you automate a process, write it down. Half the time the writing alone shows you the step nobody needed.\n")
		return sb.String(), nil
	case strings.Contains(prompt, "suggest:"):
		return "#productivity #leadership #growth\nFollow for more practical writing tips.", nil
	default:
		return "Plan: three posts, each opening with a concrete observation, one actionable takeaway per post, consistent voice throughout.", nil
	}
}
