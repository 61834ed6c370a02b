package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/logger"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

// DraftWriter persists drafts as write-once records. It never returns an
// error: on a store failure it logs and returns nil, and the caller
// records the execution without a draft id. Draft creation is best-effort
// relative to state correctness.
type DraftWriter struct {
	store DraftStore
	log   *logger.Logger
}

func NewDraftWriter(store DraftStore, log *logger.Logger) *DraftWriter {
	return &DraftWriter{store: store, log: log}
}

func (w *DraftWriter) Create(ctx context.Context, userID, reminderID int64, reminderType, content string, scheduledFor time.Time) *models.Draft {
	draft := &models.Draft{
		DraftID:      uuid.NewString(),
		UserID:       userID,
		ReminderID:   reminderID,
		ReminderType: reminderType,
		Content:      content,
		ScheduledFor: scheduledFor.UTC(),
	}
	if err := w.store.Create(ctx, draft); err != nil {
		w.log.Error("failed to write draft",
			"user_id", userID, "reminder_id", reminderID, "error", err)
		return nil
	}
	return draft
}
