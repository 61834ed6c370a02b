package models

import "time"

// Draft is the write-once content artifact produced by one execution.
// Drafts are never updated or versioned.
type Draft struct {
	DraftID      string    `json:"draft_id"`
	UserID       int64     `json:"user_id"`
	ReminderID   int64     `json:"reminder_id"`
	ReminderType string    `json:"reminder_type"`
	Content      string    `json:"content"`
	ScheduledFor time.Time `json:"scheduled_for"` // UTC
	CreatedAt    time.Time `json:"created_at"`
}
