package repository

import (
	"context"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/database"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

type ExecutionRepository struct {
	db *database.DB
}

func NewExecutionRepository(db *database.DB) *ExecutionRepository {
	return &ExecutionRepository{db: db}
}

// Exists reports whether an execution record is already stored under the
// deterministic identity key.
func (r *ExecutionRepository) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM executions WHERE execution_key = $1)`,
		key,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Record writes the audit entry at its identity key. A second write for
// the same key overwrites rather than duplicates; the idempotency guard
// is expected to short-circuit before that happens.
func (r *ExecutionRepository) Record(ctx context.Context, record *models.ExecutionRecord) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO executions (execution_key, user_id, reminder_id, scheduled_for, status, ai_used, draft_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (execution_key) DO UPDATE
		 SET status = EXCLUDED.status, ai_used = EXCLUDED.ai_used, draft_id = EXCLUDED.draft_id`,
		record.Key(), record.UserID, record.ReminderID, record.ScheduledFor.UTC(),
		record.Status, record.AIUsed, record.DraftID,
	)
	return err
}
