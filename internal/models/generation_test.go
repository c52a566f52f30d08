package models

import "testing"

func TestToneValid(t *testing.T) {
	valid := []Tone{ToneProfessional, ToneCasual, ToneInspirational, ToneThoughtLeadership, ToneHumorous}
	for _, tone := range valid {
		if !tone.Valid() {
			t.Errorf("Expected tone %q to be valid", tone)
		}
	}

	invalid := []Tone{"", "professional", "Sarcastic", "Thought-Leadership"}
	for _, tone := range invalid {
		if tone.Valid() {
			t.Errorf("Expected tone %q to be invalid", tone)
		}
	}
}

func TestTonePromptLabel(t *testing.T) {
	tests := []struct {
		tone     Tone
		expected string
	}{
		{ToneProfessional, "professional"},
		{ToneCasual, "casual"},
		{ToneInspirational, "inspirational"},
		{ToneThoughtLeadership, "thought leadership"},
		{ToneHumorous, "humorous"},
	}

	for _, tt := range tests {
		if got := tt.tone.PromptLabel(); got != tt.expected {
			t.Errorf("Expected prompt label %q for %q, got %q", tt.expected, tt.tone, got)
		}
	}
}

func TestLengthValid(t *testing.T) {
	for _, l := range []Length{LengthShort, LengthMedium, LengthLong} {
		if !l.Valid() {
			t.Errorf("Expected length %q to be valid", l)
		}
	}
	for _, l := range []Length{"", "short", "Tiny"} {
		if l.Valid() {
			t.Errorf("Expected length %q to be invalid", l)
		}
	}
}

func TestLengthPromptLabel(t *testing.T) {
	tests := []struct {
		length   Length
		expected string
	}{
		{LengthShort, "short"},
		{LengthMedium, "medium"},
		{LengthLong, "long"},
	}

	for _, tt := range tests {
		if got := tt.length.PromptLabel(); got != tt.expected {
			t.Errorf("Expected prompt label %q for %q, got %q", tt.expected, tt.length, got)
		}
	}
}

func TestLanguageValid(t *testing.T) {
	for _, l := range []Language{LanguageEnglish, LanguageHindi, LanguageSpanish, LanguageFrench} {
		if !l.Valid() {
			t.Errorf("Expected language %q to be valid", l)
		}
	}
	for _, l := range []Language{"", "english", "German"} {
		if l.Valid() {
			t.Errorf("Expected language %q to be invalid", l)
		}
	}
}
