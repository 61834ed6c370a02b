package repository

import (
	"context"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/database"
)

// UsageRepository tracks daily AI generation counters, one row per user
// per UTC calendar day plus one global row per day. Increments are atomic
// adds at the store level, never read-modify-write.
type UsageRepository struct {
	db *database.DB
}

func NewUsageRepository(db *database.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) UserCount(ctx context.Context, userID int64, day string) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COALESCE((SELECT count FROM ai_usage_daily WHERE user_id = $1 AND day = $2), 0)`,
		userID, day,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UsageRepository) GlobalCount(ctx context.Context, day string) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COALESCE((SELECT count FROM ai_usage_global WHERE day = $1), 0)`,
		day,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UsageRepository) IncrementUser(ctx context.Context, userID int64, day string) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO ai_usage_daily (user_id, day, count) VALUES ($1, $2, 1)
		 ON CONFLICT (user_id, day) DO UPDATE SET count = ai_usage_daily.count + 1`,
		userID, day,
	)
	return err
}

func (r *UsageRepository) IncrementGlobal(ctx context.Context, day string) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO ai_usage_global (day, count) VALUES ($1, 1)
		 ON CONFLICT (day) DO UPDATE SET count = ai_usage_global.count + 1`,
		day,
	)
	return err
}
