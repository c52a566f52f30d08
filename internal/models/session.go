package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one completed generation run stored on a session.
type HistoryEntry struct {
	ID             uuid.UUID `json:"id"`
	Topic          string    `json:"topic"`
	Tone           Tone      `json:"tone"`
	Posts          []string  `json:"posts"`
	Extras         *string   `json:"extras,omitempty"`
	LatencySeconds float64   `json:"latency_seconds"`
	CreatedAt      time.Time `json:"created_at"`
}

// WebSocket message types
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type StatusUpdate struct {
	SessionID                 uuid.UUID `json:"session_id"`
	Step                      int       `json:"step"`
	StepName                  string    `json:"step_name"`
	EstimatedSecondsRemaining int       `json:"estimated_seconds_remaining"`
}

type CompletedEvent struct {
	SessionID uuid.UUID `json:"session_id"`
	RunID     uuid.UUID `json:"run_id"`
	PostCount int       `json:"post_count"`
}

type ErrorEvent struct {
	SessionID    uuid.UUID `json:"session_id"`
	ErrorCode    string    `json:"error_code"`
	ErrorMessage string    `json:"error_message"`
}

// API Error response
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
