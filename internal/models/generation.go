package models

// Tone is the closed set of writing tones the pipeline accepts.
type Tone string

const (
	ToneProfessional      Tone = "Professional"
	ToneCasual            Tone = "Casual"
	ToneInspirational     Tone = "Inspirational"
	ToneThoughtLeadership Tone = "Thought Leadership"
	ToneHumorous          Tone = "Humorous"
)

func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneCasual, ToneInspirational, ToneThoughtLeadership, ToneHumorous:
		return true
	}
	return false
}

// PromptLabel is the lowercase form used inside LLM instructions.
func (t Tone) PromptLabel() string {
	switch t {
	case ToneProfessional:
		return "professional"
	case ToneCasual:
		return "casual"
	case ToneInspirational:
		return "inspirational"
	case ToneThoughtLeadership:
		return "thought leadership"
	case ToneHumorous:
		return "humorous"
	}
	return string(t)
}

type Length string

const (
	LengthShort  Length = "Short"
	LengthMedium Length = "Medium"
	LengthLong   Length = "Long"
)

func (l Length) Valid() bool {
	switch l {
	case LengthShort, LengthMedium, LengthLong:
		return true
	}
	return false
}

func (l Length) PromptLabel() string {
	switch l {
	case LengthShort:
		return "short"
	case LengthMedium:
		return "medium"
	case LengthLong:
		return "long"
	}
	return string(l)
}

type Language string

const (
	LanguageEnglish Language = "English"
	LanguageHindi   Language = "Hindi"
	LanguageSpanish Language = "Spanish"
	LanguageFrench  Language = "French"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageHindi, LanguageSpanish, LanguageFrench:
		return true
	}
	return false
}

const (
	// DefaultAudience is substituted when a request leaves Audience empty.
	DefaultAudience = "a general professional audience"

	MinPostCount = 3
	MaxPostCount = 5
)

type GenerationRequest struct {
	Topic        string   `json:"topic"`
	Tone         Tone     `json:"tone"`
	Audience     string   `json:"audience"`
	Length       Length   `json:"length"`
	Language     Language `json:"language"`
	WantHashtags bool     `json:"want_hashtags"`
	WantCTA      bool     `json:"want_cta"`
	PostCount    int      `json:"post_count"`
}

type GenerationResult struct {
	Posts          []string `json:"posts"`
	Extras         *string  `json:"extras,omitempty"`
	LatencySeconds float64  `json:"latency_seconds"`
}
