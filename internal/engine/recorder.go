package engine

import (
	"context"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/logger"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

// Recorder appends the audit entry for one execution attempt. It never
// fails the caller: store errors are logged and swallowed, since losing
// an audit row must not abort delivery.
type Recorder struct {
	store ExecutionStore
	log   *logger.Logger
}

func NewRecorder(store ExecutionStore, log *logger.Logger) *Recorder {
	return &Recorder{store: store, log: log}
}

func (r *Recorder) Record(ctx context.Context, record *models.ExecutionRecord) {
	if err := r.store.Record(ctx, record); err != nil {
		r.log.Error("failed to record execution",
			"execution_key", record.Key(), "status", record.Status, "error", err)
	}
}
