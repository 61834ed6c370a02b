package models

import (
	"fmt"
	"time"
)

// Reminder types route execution: simple reminders carry a static message,
// ai reminders go through the generation collaborator.
const (
	TypeSimple = "simple"
	TypeAI     = "ai"
)

// Frequencies.
const (
	FreqOneTime = "one_time"
	FreqDaily   = "daily"
	FreqWeekly  = "weekly"
)

type Reminder struct {
	ReminderID int64      `json:"reminder_id"`
	UserID     int64      `json:"user_id"`
	Enabled    bool       `json:"enabled"`
	Type       string     `json:"reminder_type"`
	Frequency  string     `json:"frequency"`
	Schedule   Schedule   `json:"schedule"`
	Content    Content    `json:"content"`
	NextRunAt  *time.Time `json:"next_run_at"` // UTC; nil after a one_time reminder has run
	CreatedAt  time.Time  `json:"created_at"`
}

// IsRecurring returns true if this reminder fires more than once.
func (r *Reminder) IsRecurring() bool {
	return r.Frequency == FreqDaily || r.Frequency == FreqWeekly
}

// Content holds either the static message (simple) or the generation
// parameters (ai). The engine never mutates it.
type Content struct {
	Message  string `json:"message,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	Role     string `json:"role,omitempty"`
	Tone     string `json:"tone,omitempty"`
	Platform string `json:"platform,omitempty"`
}

// Schedule is the caller-owned descriptor, tagged by the reminder's
// frequency. Weekly uses TimeOfDay/Timezone/WeekDays; one_time uses
// Date plus TimeOfDay/Timezone at creation; daily advancement needs
// nothing. Validate checks the shape the frequency requires.
type Schedule struct {
	TimeOfDay string `json:"time_of_day,omitempty"` // HH:mm local
	Timezone  string `json:"timezone,omitempty"`    // IANA name
	WeekDays  []int  `json:"week_days,omitempty"`   // ISO, Monday=1..Sunday=7
	Date      string `json:"date,omitempty"`        // YYYY-MM-DD, one_time only
}

// TimeOfDayParts parses TimeOfDay into hour and minute.
func (s *Schedule) TimeOfDayParts() (hour, minute int, err error) {
	var h, m int
	if _, err := fmt.Sscanf(s.TimeOfDay, "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("invalid time_of_day %q: %w", s.TimeOfDay, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("time_of_day %q out of range", s.TimeOfDay)
	}
	return h, m, nil
}

// Location resolves the schedule's IANA timezone.
func (s *Schedule) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return nil, fmt.Errorf("missing timezone")
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// Validate checks the fields the given frequency requires. A nil error
// means the recurrence calculator can work with this schedule.
func (s *Schedule) Validate(frequency string) error {
	switch frequency {
	case FreqOneTime, FreqDaily:
		return nil
	case FreqWeekly:
		if _, err := s.Location(); err != nil {
			return err
		}
		if _, _, err := s.TimeOfDayParts(); err != nil {
			return err
		}
		if len(s.WeekDays) == 0 {
			return fmt.Errorf("week_days must not be empty")
		}
		for _, d := range s.WeekDays {
			if d < 1 || d > 7 {
				return fmt.Errorf("week_days entry %d out of range 1-7", d)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown frequency %q", frequency)
	}
}
