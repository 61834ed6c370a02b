// Package recurrence computes reminder due times. All functions are pure:
// no clock reads, no I/O. Stored timestamps are UTC; weekly math runs in
// the schedule's IANA zone so it stays correct across DST transitions.
package recurrence

import (
	"fmt"
	"sort"
	"time"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

// NextRun computes the due time after scheduledFor. It returns nil for a
// one_time frequency and for a weekly schedule with invalid caller data
// (the reminder should be disabled rather than mis-scheduled). An error is
// returned only for an unrecognized frequency, which is a programming
// error, not bad data.
func NextRun(frequency string, scheduledFor time.Time, sched *models.Schedule) (*time.Time, error) {
	switch frequency {
	case models.FreqOneTime:
		return nil, nil
	case models.FreqDaily:
		// Exact interval arithmetic on a UTC base, so DST never applies.
		next := scheduledFor.UTC().Add(24 * time.Hour)
		return &next, nil
	case models.FreqWeekly:
		return nextWeekly(scheduledFor, sched)
	default:
		return nil, fmt.Errorf("unrecognized frequency %q", frequency)
	}
}

func nextWeekly(scheduledFor time.Time, sched *models.Schedule) (*time.Time, error) {
	if sched == nil || sched.Validate(models.FreqWeekly) != nil {
		return nil, nil
	}
	loc, _ := sched.Location()
	hour, minute, _ := sched.TimeOfDayParts()

	local := scheduledFor.In(loc)
	current := isoWeekday(local.Weekday())

	// Smallest configured day strictly after the one that just fired,
	// wrapping to next week when none remains. Always advances at least
	// one day, so a single configured weekday yields a 7-day cycle.
	days := append([]int(nil), sched.WeekDays...)
	sort.Ints(days)
	delta := 7 - current + days[0]
	for _, d := range days {
		if d > current {
			delta = d - current
			break
		}
	}

	// Anchor the candidate at the configured time of day; any residual
	// time carried by scheduledFor is discarded.
	candidate := time.Date(local.Year(), local.Month(), local.Day()+delta, hour, minute, 0, 0, loc)
	next := candidate.UTC()
	return &next, nil
}

// FirstRun computes the first occurrence at or after now. It is used only
// at reminder creation; advancement always goes through NextRun with the
// due time that just fired as the base. Unlike NextRun, a same-day time
// that has not yet passed is still selected for today.
func FirstRun(frequency string, sched *models.Schedule, now time.Time) (*time.Time, error) {
	switch frequency {
	case models.FreqOneTime:
		return firstOneTime(sched)
	case models.FreqDaily:
		return firstDaily(sched, now)
	case models.FreqWeekly:
		return firstWeekly(sched, now)
	default:
		return nil, fmt.Errorf("unrecognized frequency %q", frequency)
	}
}

func firstOneTime(sched *models.Schedule) (*time.Time, error) {
	if sched == nil || sched.Date == "" {
		return nil, nil
	}
	loc, err := sched.Location()
	if err != nil {
		return nil, nil
	}
	hour, minute, err := sched.TimeOfDayParts()
	if err != nil {
		return nil, nil
	}
	day, err := time.ParseInLocation("2006-01-02", sched.Date, loc)
	if err != nil {
		return nil, nil
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc).UTC()
	return &at, nil
}

func firstDaily(sched *models.Schedule, now time.Time) (*time.Time, error) {
	if sched == nil {
		return nil, nil
	}
	loc, err := sched.Location()
	if err != nil {
		return nil, nil
	}
	hour, minute, err := sched.TimeOfDayParts()
	if err != nil {
		return nil, nil
	}
	local := now.In(loc)
	candidate := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !candidate.After(now) {
		candidate = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}
	at := candidate.UTC()
	return &at, nil
}

func firstWeekly(sched *models.Schedule, now time.Time) (*time.Time, error) {
	if sched == nil || sched.Validate(models.FreqWeekly) != nil {
		return nil, nil
	}
	loc, _ := sched.Location()
	hour, minute, _ := sched.TimeOfDayParts()

	local := now.In(loc)
	for offset := 0; offset < 8; offset++ {
		day := local.AddDate(0, 0, offset)
		if !containsDay(sched.WeekDays, isoWeekday(day.Weekday())) {
			continue
		}
		candidate := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
		if candidate.After(now) {
			at := candidate.UTC()
			return &at, nil
		}
	}
	// Unreachable with a valid weekday set: 8 consecutive days cover
	// every ISO weekday at least once.
	return nil, nil
}

// isoWeekday maps time.Weekday (Sunday=0) to ISO numbering (Monday=1,
// Sunday=7).
func isoWeekday(w time.Weekday) int {
	return (int(w)+6)%7 + 1
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
