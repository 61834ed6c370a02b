package models

import (
	"fmt"
	"time"
)

// Execution statuses.
const (
	StatusExecuted        = "executed"
	StatusSkippedDisabled = "skipped_disabled"
	StatusSkippedCap      = "skipped_cap"
	StatusSkippedError    = "skipped_error"
)

// ExecutionRecord is the immutable audit entry for one execution attempt.
// Its identity is the reminder plus the time it was supposed to run, never
// the actual run time, so retries map onto the same record.
type ExecutionRecord struct {
	UserID       int64     `json:"user_id"`
	ReminderID   int64     `json:"reminder_id"`
	ScheduledFor time.Time `json:"scheduled_for"` // UTC
	Status       string    `json:"status"`
	AIUsed       bool      `json:"ai_used"`
	DraftID      *string   `json:"draft_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Key returns the deterministic execution identity.
func (e *ExecutionRecord) Key() string {
	return ExecutionKey(e.ReminderID, e.ScheduledFor)
}

// ExecutionKey builds the identity key for a (reminder, due-time) pair.
func ExecutionKey(reminderID int64, scheduledFor time.Time) string {
	return fmt.Sprintf("%d_%s", reminderID, scheduledFor.UTC().Format(time.RFC3339))
}
