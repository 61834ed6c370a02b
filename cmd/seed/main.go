// Command seed inserts a reminder and computes its first occurrence.
// Intended for local development and smoke testing the worker.
package main

import (
	"context"
	"flag"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/config"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/database"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/recurrence"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/repository"
)

func main() {
	var (
		userID       = flag.Int64("user", 0, "owner user id (required)")
		reminderType = flag.String("type", models.TypeSimple, "reminder type: simple or ai")
		frequency    = flag.String("freq", models.FreqDaily, "frequency: one_time, daily or weekly")
		message      = flag.String("message", "", "static message (simple reminders)")
		prompt       = flag.String("prompt", "", "generation prompt (ai reminders)")
		role         = flag.String("role", "", "generation role")
		tone         = flag.String("tone", "", "generation tone")
		platform     = flag.String("platform", "", "target platform")
		timeOfDay    = flag.String("at", "09:00", "local time of day, HH:mm")
		timezone     = flag.String("tz", "UTC", "IANA timezone")
		weekDays     = flag.String("days", "", "ISO weekdays for weekly, e.g. 1,3,5")
		date         = flag.String("date", "", "date for one_time, YYYY-MM-DD")
	)
	flag.Parse()

	if *userID == 0 {
		log.Fatal("-user is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	db, err := database.New(ctx, cfg.DatabaseURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	schedule := models.Schedule{
		TimeOfDay: *timeOfDay,
		Timezone:  *timezone,
		WeekDays:  parseDays(*weekDays),
		Date:      *date,
	}

	firstRun, err := recurrence.FirstRun(*frequency, &schedule, time.Now())
	if err != nil {
		log.Fatalf("Failed to compute first run: %v", err)
	}
	if firstRun == nil {
		log.Fatal("Schedule produced no first occurrence; check -at, -tz, -days and -date")
	}

	reminder := &models.Reminder{
		UserID:    *userID,
		Enabled:   true,
		Type:      *reminderType,
		Frequency: *frequency,
		Schedule:  schedule,
		Content: models.Content{
			Message:  *message,
			Prompt:   *prompt,
			Role:     *role,
			Tone:     *tone,
			Platform: *platform,
		},
		NextRunAt: firstRun,
	}

	repo := repository.NewReminderRepository(db)
	if err := repo.Create(ctx, reminder); err != nil {
		log.Fatalf("Failed to create reminder: %v", err)
	}

	log.Printf("Created reminder %d for user %d, first run at %s",
		reminder.ReminderID, reminder.UserID, firstRun.Format(time.RFC3339))
}

func parseDays(s string) []int {
	if s == "" {
		return nil
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			log.Fatalf("Invalid weekday %q", part)
		}
		days = append(days, day)
	}
	return days
}
