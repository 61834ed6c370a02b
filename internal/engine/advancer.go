package engine

import (
	"context"
	"time"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/logger"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/recurrence"
)

// Advancer moves a reminder to its next occurrence after an execution
// attempt. The recurrence base is always the due time that just fired,
// never the wall clock, so a late trigger run does not accumulate drift.
//
// Store failures are logged and swallowed. The one error Advance returns
// is an unrecognized frequency out of the calculator, a programming error
// that the engine logs at its outermost boundary.
type Advancer struct {
	reminders ReminderStore
	log       *logger.Logger
}

func NewAdvancer(reminders ReminderStore, log *logger.Logger) *Advancer {
	return &Advancer{reminders: reminders, log: log}
}

func (a *Advancer) Advance(ctx context.Context, reminder *models.Reminder, scheduledFor time.Time) error {
	if reminder.Frequency == models.FreqOneTime {
		// Terminal: a one_time reminder never runs again.
		if err := a.reminders.SetEnabled(ctx, reminder.ReminderID, false); err != nil {
			a.log.Error("failed to disable one_time reminder",
				"reminder_id", reminder.ReminderID, "error", err)
		}
		return nil
	}

	next, err := recurrence.NextRun(reminder.Frequency, scheduledFor, &reminder.Schedule)
	if err != nil {
		return err
	}

	if next == nil {
		// Invalid schedule data: disable rather than mis-schedule.
		a.log.Warn("recurrence produced no next run, disabling reminder",
			"reminder_id", reminder.ReminderID, "frequency", reminder.Frequency)
		if err := a.reminders.SetEnabled(ctx, reminder.ReminderID, false); err != nil {
			a.log.Error("failed to disable reminder",
				"reminder_id", reminder.ReminderID, "error", err)
		}
		return nil
	}

	if err := a.reminders.UpdateNextRunAt(ctx, reminder.ReminderID, next); err != nil {
		a.log.Error("failed to update next run time",
			"reminder_id", reminder.ReminderID, "next_run_at", next, "error", err)
	}
	return nil
}
