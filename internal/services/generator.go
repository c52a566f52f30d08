package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"postforge-backend/internal/llm"
	"postforge-backend/internal/metrics"
	"postforge-backend/internal/models"
)

// Notifier receives progress events during a pipeline run. The websocket hub
// implements it; a nil notifier disables progress reporting.
type Notifier interface {
	Notify(sessionID uuid.UUID, msg models.WSMessage)
}

// GeneratorService runs the post generation pipeline: plan, draft, split,
// optional extras, then the banned-word filter.
type GeneratorService struct {
	llm      llm.Client
	model    string
	logger   zerolog.Logger
	metrics  *metrics.Metrics
	notifier Notifier
}

func NewGeneratorService(client llm.Client, model string, logger zerolog.Logger, m *metrics.Metrics, notifier Notifier) *GeneratorService {
	return &GeneratorService{
		llm:      client,
		model:    model,
		logger:   logger.With().Str("component", "generator").Logger(),
		metrics:  m,
		notifier: notifier,
	}
}

// Generate runs the full pipeline for one request. Any LLM failure aborts the
// run; fewer posts than requested is a degraded but successful result.
func (s *GeneratorService) Generate(ctx context.Context, sessionID uuid.UUID, req models.GenerationRequest) (*models.GenerationResult, error) {
	if err := validateRequest(req); err != nil {
		if s.metrics != nil {
			s.metrics.GenerationRunsTotal.WithLabelValues("validation_error").Inc()
		}
		return nil, err
	}

	start := time.Now()

	s.publishStatus(sessionID, 1, "Outlining strategy", 12)
	plan, err := s.complete(ctx, "plan", buildPlanPrompt(req))
	if err != nil {
		return nil, s.abort(start, err)
	}

	s.publishStatus(sessionID, 2, "Drafting posts", 8)
	draft, err := s.complete(ctx, "draft", buildDraftPrompt(plan, req))
	if err != nil {
		return nil, s.abort(start, err)
	}

	posts := splitPosts(draft, req.PostCount)

	var extras *string
	if req.WantHashtags || req.WantCTA {
		s.publishStatus(sessionID, 3, "Adding hashtags and CTA", 4)
		out, err := s.complete(ctx, "extras", buildExtrasPrompt(req))
		if err != nil {
			return nil, s.abort(start, err)
		}
		extras = &out
	}

	moderationHits := 0
	for i := range posts {
		cleaned := cleanText(posts[i])
		if cleaned != posts[i] {
			moderationHits++
		}
		posts[i] = cleaned
	}

	elapsed := time.Since(start)
	latency := math.Round(elapsed.Seconds()*100) / 100

	if len(posts) < req.PostCount {
		s.logger.Warn().
			Int("requested", req.PostCount).
			Int("returned", len(posts)).
			Msg("Model produced fewer posts than requested")
	}

	if s.metrics != nil {
		s.metrics.RecordRun("success", elapsed)
		s.metrics.PostsGeneratedTotal.Add(float64(len(posts)))
		s.metrics.ModerationHitsTotal.Add(float64(moderationHits))
	}

	s.logger.Info().
		Int("posts", len(posts)).
		Bool("extras", extras != nil).
		Float64("latency_seconds", latency).
		Msg("Generation run completed")

	return &models.GenerationResult{
		Posts:          posts,
		Extras:         extras,
		LatencySeconds: latency,
	}, nil
}

// complete performs one LLM call and wraps failures with the step name.
func (s *GeneratorService) complete(ctx context.Context, step, prompt string) (string, error) {
	callStart := time.Now()
	out, err := s.llm.Complete(ctx, s.model, prompt)

	if s.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		s.metrics.RecordLLMCall(step, status, time.Since(callStart))
	}

	if err != nil {
		s.logger.Error().Err(err).Str("step", step).Msg("LLM completion failed")
		return "", &CollaboratorError{Step: step, Err: err}
	}
	return out, nil
}

func (s *GeneratorService) abort(start time.Time, err error) error {
	if s.metrics != nil {
		s.metrics.RecordRun("llm_error", time.Since(start))
	}
	return err
}

func (s *GeneratorService) publishStatus(sessionID uuid.UUID, step int, stepName string, estSeconds int) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(sessionID, models.WSMessage{
		Type: "status_update",
		Payload: models.StatusUpdate{
			SessionID:                 sessionID,
			Step:                      step,
			StepName:                  stepName,
			EstimatedSecondsRemaining: estSeconds,
		},
	})
}

func validateRequest(req models.GenerationRequest) error {
	fields := make(map[string]string)

	if strings.TrimSpace(req.Topic) == "" {
		fields["topic"] = "Topic must not be empty"
	}
	if !req.Tone.Valid() {
		fields["tone"] = fmt.Sprintf("Unknown tone %q", string(req.Tone))
	}
	if !req.Length.Valid() {
		fields["length"] = fmt.Sprintf("Unknown length %q", string(req.Length))
	}
	if !req.Language.Valid() {
		fields["language"] = fmt.Sprintf("Unknown language %q", string(req.Language))
	}
	if req.PostCount < models.MinPostCount || req.PostCount > models.MaxPostCount {
		fields["post_count"] = fmt.Sprintf("Post count must be between %d and %d", models.MinPostCount, models.MaxPostCount)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
