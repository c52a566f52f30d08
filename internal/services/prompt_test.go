package services

import (
	"strings"
	"testing"

	"postforge-backend/internal/models"
)

func baseRequest() models.GenerationRequest {
	return models.GenerationRequest{
		Topic:        "remote work culture",
		Tone:         models.ToneThoughtLeadership,
		Length:       models.LengthMedium,
		Language:     models.LanguageEnglish,
		WantHashtags: true,
		WantCTA:      true,
		PostCount:    3,
	}
}

func TestBuildPlanPrompt(t *testing.T) {
	req := baseRequest()
	prompt := buildPlanPrompt(req)

	for _, want := range []string{
		"expert LinkedIn strategist",
		"3 thought leadership posts",
		"in English",
		`about "remote work culture"`,
		"targeting " + models.DefaultAudience,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected plan prompt to contain %q, got %q", want, prompt)
		}
	}
}

func TestBuildPlanPromptCustomAudience(t *testing.T) {
	req := baseRequest()
	req.Audience = "startup founders"

	prompt := buildPlanPrompt(req)
	if !strings.Contains(prompt, "targeting startup founders") {
		t.Errorf("Expected custom audience in plan prompt, got %q", prompt)
	}
	if strings.Contains(prompt, models.DefaultAudience) {
		t.Errorf("Expected default audience to be absent when one is provided, got %q", prompt)
	}
}

func TestBuildDraftPrompt(t *testing.T) {
	req := baseRequest()
	req.Tone = models.ToneCasual
	req.Length = models.LengthShort

	prompt := buildDraftPrompt("PLAN BODY HERE", req)

	for _, want := range []string{
		"Based on this plan:\nPLAN BODY HERE\n",
		"Write 3 LinkedIn posts in English",
		"Keep them short and casual",
		"Do not repeat wording",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected draft prompt to contain %q, got %q", want, prompt)
		}
	}
}

func TestBuildExtrasPrompt(t *testing.T) {
	tests := []struct {
		name         string
		wantHashtags bool
		wantCTA      bool
		contains     []string
		excludes     []string
	}{
		{
			name:         "both",
			wantHashtags: true,
			wantCTA:      true,
			contains:     []string{"- Relevant hashtags", "- A short call-to-action line"},
		},
		{
			name:         "hashtags only",
			wantHashtags: true,
			contains:     []string{"- Relevant hashtags"},
			excludes:     []string{"call-to-action"},
		},
		{
			name:     "cta only",
			wantCTA:  true,
			contains: []string{"- A short call-to-action line"},
			excludes: []string{"hashtags"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			req.WantHashtags = tt.wantHashtags
			req.WantCTA = tt.wantCTA

			prompt := buildExtrasPrompt(req)

			if !strings.Contains(prompt, `For the topic "remote work culture", suggest:`) {
				t.Errorf("Expected topic header in extras prompt, got %q", prompt)
			}
			if !strings.HasSuffix(prompt, "Output clearly.") {
				t.Errorf("Expected extras prompt to end with output instruction, got %q", prompt)
			}
			for _, want := range tt.contains {
				if !strings.Contains(prompt, want) {
					t.Errorf("Expected extras prompt to contain %q, got %q", want, prompt)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(prompt, unwanted) {
					t.Errorf("Expected extras prompt to not contain %q, got %q", unwanted, prompt)
				}
			}
		})
	}
}
