package services

import (
	"fmt"
	"strings"

	"postforge-backend/internal/models"
)

func buildPlanPrompt(req models.GenerationRequest) string {
	audience := req.Audience
	if audience == "" {
		audience = models.DefaultAudience
	}
	return fmt.Sprintf(
		"You are an expert LinkedIn strategist. First, outline a brief plan for %d %s posts in %s, about \"%s\", targeting %s. Each plan should describe style, structure, and key points.",
		req.PostCount, req.Tone.PromptLabel(), req.Language, req.Topic, audience,
	)
}

func buildDraftPrompt(plan string, req models.GenerationRequest) string {
	return fmt.Sprintf(
		"Based on this plan:\n%s\nWrite %d LinkedIn posts in %s. Keep them %s and %s. Each post should be natural, engaging, and professional. Do not repeat wording.",
		plan, req.PostCount, req.Language, req.Length.PromptLabel(), req.Tone.PromptLabel(),
	)
}

// buildExtrasPrompt covers the hashtags/CTA combinations explicitly. Callers
// must not invoke it with both flags false; that combination skips the extras
// step entirely.
func buildExtrasPrompt(req models.GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "For the topic \"%s\", suggest:\n", req.Topic)
	if req.WantHashtags {
		b.WriteString("- Relevant hashtags\n")
	}
	if req.WantCTA {
		b.WriteString("- A short call-to-action line\n")
	}
	b.WriteString("Output clearly.")
	return b.String()
}
