package repository

import (
	"context"
	"time"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/database"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

type ReminderRepository struct {
	db *database.DB
}

func NewReminderRepository(db *database.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO reminders (user_id, enabled, reminder_type, frequency, schedule, content, next_run_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING reminder_id, created_at`,
		reminder.UserID, reminder.Enabled, reminder.Type, reminder.Frequency,
		reminder.Schedule, reminder.Content, reminder.NextRunAt,
	).Scan(&reminder.ReminderID, &reminder.CreatedAt)
}

func (r *ReminderRepository) GetByID(ctx context.Context, reminderID, userID int64) (*models.Reminder, error) {
	reminder := &models.Reminder{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT reminder_id, user_id, enabled, reminder_type, frequency, schedule, content, next_run_at, created_at
		 FROM reminders WHERE reminder_id = $1 AND user_id = $2`,
		reminderID, userID,
	).Scan(&reminder.ReminderID, &reminder.UserID, &reminder.Enabled, &reminder.Type, &reminder.Frequency,
		&reminder.Schedule, &reminder.Content, &reminder.NextRunAt, &reminder.CreatedAt)
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

// GetDue returns enabled reminders whose next_run_at has passed.
func (r *ReminderRepository) GetDue(ctx context.Context, until time.Time) ([]*models.Reminder, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT reminder_id, user_id, enabled, reminder_type, frequency, schedule, content, next_run_at, created_at
		 FROM reminders WHERE enabled = true AND next_run_at IS NOT NULL AND next_run_at <= $1
		 ORDER BY next_run_at ASC`,
		until,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		reminder := &models.Reminder{}
		if err := rows.Scan(&reminder.ReminderID, &reminder.UserID, &reminder.Enabled, &reminder.Type,
			&reminder.Frequency, &reminder.Schedule, &reminder.Content, &reminder.NextRunAt, &reminder.CreatedAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

func (r *ReminderRepository) SetEnabled(ctx context.Context, reminderID int64, enabled bool) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE reminders SET enabled = $1 WHERE reminder_id = $2`,
		enabled, reminderID,
	)
	return err
}

func (r *ReminderRepository) UpdateNextRunAt(ctx context.Context, reminderID int64, nextRunAt *time.Time) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE reminders SET next_run_at = $1 WHERE reminder_id = $2`,
		nextRunAt, reminderID,
	)
	return err
}
