package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AssessmentResult is one persisted quiz completion: the answers given,
// the winning bucket, and the full recommendation payload as rendered to
// the student at completion time. Result is stored as raw JSON so the
// record keeps what the student actually saw even if payloads change.
type AssessmentResult struct {
	ID          uuid.UUID       `json:"id"`
	UserID      string          `json:"user_id"`
	QuizID      string          `json:"quiz_id"`
	Bucket      string          `json:"bucket"`
	Answers     []string        `json:"answers"`
	Result      json.RawMessage `json:"result"`
	CompletedAt time.Time       `json:"completed_at"`
}
