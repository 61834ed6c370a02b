package repository

import (
	"context"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/database"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

// DraftRepository is insert-only: drafts are write-once artifacts with no
// update or delete path.
type DraftRepository struct {
	db *database.DB
}

func NewDraftRepository(db *database.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) Create(ctx context.Context, draft *models.Draft) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO drafts (draft_id, user_id, reminder_id, reminder_type, content, scheduled_for)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		draft.DraftID, draft.UserID, draft.ReminderID, draft.ReminderType,
		draft.Content, draft.ScheduledFor,
	).Scan(&draft.CreatedAt)
}

func (r *DraftRepository) GetByUserID(ctx context.Context, userID int64, limit int) ([]*models.Draft, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT draft_id, user_id, reminder_id, reminder_type, content, scheduled_for, created_at
		 FROM drafts WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drafts []*models.Draft
	for rows.Next() {
		draft := &models.Draft{}
		if err := rows.Scan(&draft.DraftID, &draft.UserID, &draft.ReminderID, &draft.ReminderType,
			&draft.Content, &draft.ScheduledFor, &draft.CreatedAt); err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}
	return drafts, rows.Err()
}
