package engine

import (
	"context"
	"time"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/logger"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

// IdempotencyGuard answers whether an execution already happened for a
// (reminder, due-time) pair. It only reads; records are written by the
// Recorder.
//
// The guard fails open: when the lookup itself errors, it reports "not
// executed" so delivery proceeds. A rare duplicate is preferred over
// silently dropping a reminder while the store is flaky. Contrast with
// QuotaGuard, which fails closed.
type IdempotencyGuard struct {
	store ExecutionStore
	log   *logger.Logger
}

func NewIdempotencyGuard(store ExecutionStore, log *logger.Logger) *IdempotencyGuard {
	return &IdempotencyGuard{store: store, log: log}
}

// AlreadyExecuted reports whether a record exists for the execution
// identity of reminderID at scheduledFor.
func (g *IdempotencyGuard) AlreadyExecuted(ctx context.Context, reminderID int64, scheduledFor time.Time) bool {
	key := models.ExecutionKey(reminderID, scheduledFor)
	exists, err := g.store.Exists(ctx, key)
	if err != nil {
		g.log.Warn("idempotency lookup failed, proceeding as not executed",
			"execution_key", key, "error", err)
		return false
	}
	return exists
}
