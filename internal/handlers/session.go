package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/yuin/goldmark"

	"postforge-backend/internal/models"
	"postforge-backend/internal/services"
	"postforge-backend/internal/session"
)

type SessionHandler struct {
	store      *session.Store
	generator  postGenerator
	notifier   services.Notifier
	runTimeout time.Duration
}

type postGenerator interface {
	Generate(ctx context.Context, sessionID uuid.UUID, req models.GenerationRequest) (*models.GenerationResult, error)
}

func NewSessionHandler(store *session.Store, generator postGenerator, notifier services.Notifier, runTimeout time.Duration) *SessionHandler {
	return &SessionHandler{
		store:      store,
		generator:  generator,
		notifier:   notifier,
		runTimeout: runTimeout,
	}
}

type postView struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	WordCount int    `json:"word_count"`
	CharCount int    `json:"char_count"`
}

type runView struct {
	ID             uuid.UUID   `json:"id"`
	Topic          string      `json:"topic"`
	Tone           models.Tone `json:"tone"`
	Posts          []postView  `json:"posts"`
	Extras         *string     `json:"extras,omitempty"`
	LatencySeconds float64     `json:"latency_seconds"`
	CreatedAt      time.Time   `json:"created_at"`
}

type historyRunView struct {
	RunNumber int         `json:"run_number"`
	ID        uuid.UUID   `json:"id"`
	Topic     string      `json:"topic"`
	Tone      models.Tone `json:"tone"`
	Previews  []string    `json:"previews"`
	CreatedAt time.Time   `json:"created_at"`
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Create()
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":         sess.ID,
		"created_at": sess.CreatedAt,
	})
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":         sess.ID,
		"created_at": sess.CreatedAt,
		"run_count":  sess.RunCount(),
	})
}

func (h *SessionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var body struct {
		Topic        string `json:"topic"`
		Tone         string `json:"tone"`
		Audience     string `json:"audience"`
		Length       string `json:"length"`
		Language     string `json:"language"`
		WantHashtags *bool  `json:"want_hashtags"`
		WantCTA      *bool  `json:"want_cta"`
		PostCount    int    `json:"post_count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	// Defaults mirror the initial state of the web form.
	req := models.GenerationRequest{
		Topic:        body.Topic,
		Tone:         models.Tone(body.Tone),
		Audience:     body.Audience,
		Length:       models.Length(body.Length),
		Language:     models.Language(body.Language),
		WantHashtags: true,
		WantCTA:      true,
		PostCount:    body.PostCount,
	}
	if body.Tone == "" {
		req.Tone = models.ToneProfessional
	}
	if body.Length == "" {
		req.Length = models.LengthMedium
	}
	if body.Language == "" {
		req.Language = models.LanguageEnglish
	}
	if body.WantHashtags != nil {
		req.WantHashtags = *body.WantHashtags
	}
	if body.WantCTA != nil {
		req.WantCTA = *body.WantCTA
	}
	if req.PostCount == 0 {
		req.PostCount = 3
	}

	if !sess.BeginRun() {
		handleServiceError(w, r, &services.ConflictError{Message: "A generation is already running for this session"})
		return
	}
	defer sess.EndRun()

	ctx, cancel := context.WithTimeout(r.Context(), h.runTimeout)
	defer cancel()

	res, err := h.generator.Generate(ctx, sess.ID, req)
	if err != nil {
		h.notify(sess.ID, models.WSMessage{
			Type: "generation_error",
			Payload: models.ErrorEvent{
				SessionID:    sess.ID,
				ErrorCode:    errorCode(err),
				ErrorMessage: err.Error(),
			},
		})
		handleServiceError(w, r, err)
		return
	}

	entry := models.HistoryEntry{
		ID:             uuid.New(),
		Topic:          strings.TrimSpace(req.Topic),
		Tone:           req.Tone,
		Posts:          res.Posts,
		Extras:         res.Extras,
		LatencySeconds: res.LatencySeconds,
		CreatedAt:      time.Now(),
	}
	sess.Record(entry)

	h.notify(sess.ID, models.WSMessage{
		Type: "generation_complete",
		Payload: models.CompletedEvent{
			SessionID: sess.ID,
			RunID:     entry.ID,
			PostCount: len(res.Posts),
		},
	})

	writeJSON(w, http.StatusOK, toRunView(entry))
}

func (h *SessionHandler) History(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	past := sess.Past()
	runs := make([]historyRunView, 0, len(past))
	for i, e := range past {
		previews := make([]string, 0, len(e.Posts))
		for _, p := range e.Posts {
			previews = append(previews, preview(p))
		}
		runs = append(runs, historyRunView{
			RunNumber: i + 1,
			ID:        e.ID,
			Topic:     e.Topic,
			Tone:      e.Tone,
			Previews:  previews,
			CreatedAt: e.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"runs":  runs,
		"total": len(runs),
	})
}

func (h *SessionHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	entry, ok := h.run(w, r, sess)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toRunView(entry))
}

func (h *SessionHandler) DownloadPost(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	text, index, ok := h.post(w, r, sess)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("linkedin_post_%d.txt", index)))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

func (h *SessionHandler) PreviewPost(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	text, _, ok := h.post(w, r, sess)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to render post", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"html": buf.String()})
}

func (h *SessionHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid session ID", r))
		return nil, false
	}

	sess, ok := h.store.Get(id)
	if !ok {
		handleServiceError(w, r, &services.NotFoundError{Message: "Session not found"})
		return nil, false
	}
	return sess, true
}

func (h *SessionHandler) run(w http.ResponseWriter, r *http.Request, sess *session.Session) (models.HistoryEntry, bool) {
	runID, err := uuid.Parse(chi.URLParam(r, "runID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid run ID", r))
		return models.HistoryEntry{}, false
	}

	entry, ok := sess.Entry(runID)
	if !ok {
		handleServiceError(w, r, &services.NotFoundError{Message: "Run not found"})
		return models.HistoryEntry{}, false
	}
	return entry, true
}

// post resolves the {index} path parameter (1-based) against a stored run.
func (h *SessionHandler) post(w http.ResponseWriter, r *http.Request, sess *session.Session) (string, int, bool) {
	entry, ok := h.run(w, r, sess)
	if !ok {
		return "", 0, false
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 1 || index > len(entry.Posts) {
		handleServiceError(w, r, &services.NotFoundError{Message: "Post not found"})
		return "", 0, false
	}
	return entry.Posts[index-1], index, true
}

func (h *SessionHandler) notify(sessionID uuid.UUID, msg models.WSMessage) {
	if h.notifier == nil {
		return
	}
	h.notifier.Notify(sessionID, msg)
}

func toRunView(e models.HistoryEntry) runView {
	posts := make([]postView, 0, len(e.Posts))
	for i, p := range e.Posts {
		posts = append(posts, postView{
			Index:     i + 1,
			Text:      p,
			WordCount: len(strings.Fields(p)),
			CharCount: utf8.RuneCountInString(p),
		})
	}
	return runView{
		ID:             e.ID,
		Topic:          e.Topic,
		Tone:           e.Tone,
		Posts:          posts,
		Extras:         e.Extras,
		LatencySeconds: e.LatencySeconds,
		CreatedAt:      e.CreatedAt,
	}
}

// preview returns the first 80 characters of a post. The ellipsis is
// appended even when the post is shorter than the cutoff.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) > 80 {
		runes = runes[:80]
	}
	return string(runes) + "..."
}
