package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func weeklyNY(days ...int) *models.Schedule {
	return &models.Schedule{
		TimeOfDay: "09:30",
		Timezone:  "America/New_York",
		WeekDays:  days,
	}
}

func TestNextRun_OneTime(t *testing.T) {
	next, err := NextRun(models.FreqOneTime, time.Now().UTC(), nil)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestNextRun_Daily_Exact24h(t *testing.T) {
	bases := []time.Time{
		time.Date(2024, 3, 6, 14, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC),  // across a US DST start
		time.Date(2024, 11, 2, 12, 0, 0, 0, time.UTC),  // across a US DST end
		time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC), // year boundary
	}
	for _, base := range bases {
		next, err := NextRun(models.FreqDaily, base, nil)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, base.Add(24*time.Hour), *next, "base %s", base)
	}
}

func TestNextRun_Weekly_MidWeekAdvances(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	// Wednesday 09:30 in New York; Mon/Wed/Fri configured.
	due := time.Date(2024, 3, 6, 9, 30, 0, 0, ny).UTC()
	next, err := NextRun(models.FreqWeekly, due, weeklyNY(1, 3, 5))
	require.NoError(t, err)
	require.NotNil(t, next)

	want := time.Date(2024, 3, 8, 9, 30, 0, 0, ny).UTC() // that week's Friday
	assert.Equal(t, want, *next)
}

func TestNextRun_Weekly_WrapsAcrossDSTStart(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	// Friday 09:30 EST; the wrap lands on Monday after DST begins
	// (2024-03-10), so the local 09:30 maps to a different UTC offset.
	due := time.Date(2024, 3, 8, 9, 30, 0, 0, ny).UTC()
	assert.Equal(t, time.Date(2024, 3, 8, 14, 30, 0, 0, time.UTC), due)

	next, err := NextRun(models.FreqWeekly, due, weeklyNY(1, 3, 5))
	require.NoError(t, err)
	require.NotNil(t, next)

	want := time.Date(2024, 3, 11, 9, 30, 0, 0, ny).UTC()
	assert.Equal(t, want, *next)
	assert.Equal(t, time.Date(2024, 3, 11, 13, 30, 0, 0, time.UTC), *next)
}

func TestNextRun_Weekly_SingleDayIsSevenDayCycle(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	due := time.Date(2024, 4, 1, 9, 30, 0, 0, ny).UTC() // a Monday
	next, err := NextRun(models.FreqWeekly, due, weeklyNY(1))
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, time.Date(2024, 4, 8, 9, 30, 0, 0, ny).UTC(), *next)
}

func TestNextRun_Weekly_IgnoresResidualTime(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	// Wednesday 17:45 local; the candidate still anchors at 09:30.
	due := time.Date(2024, 3, 6, 17, 45, 12, 0, ny).UTC()
	next, err := NextRun(models.FreqWeekly, due, weeklyNY(1, 3, 5))
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, time.Date(2024, 3, 8, 9, 30, 0, 0, ny).UTC(), *next)
}

func TestNextRun_Weekly_InvalidScheduleReturnsNil(t *testing.T) {
	due := time.Date(2024, 3, 6, 14, 30, 0, 0, time.UTC)

	cases := map[string]*models.Schedule{
		"nil schedule":     nil,
		"missing timezone": {TimeOfDay: "09:30", WeekDays: []int{1}},
		"bad timezone":     {TimeOfDay: "09:30", Timezone: "Mars/Olympus", WeekDays: []int{1}},
		"bad time of day":  {TimeOfDay: "25:99", Timezone: "America/New_York", WeekDays: []int{1}},
		"empty weekdays":   {TimeOfDay: "09:30", Timezone: "America/New_York"},
		"weekday range":    {TimeOfDay: "09:30", Timezone: "America/New_York", WeekDays: []int{0, 8}},
	}
	for name, sched := range cases {
		next, err := NextRun(models.FreqWeekly, due, sched)
		require.NoError(t, err, name)
		assert.Nil(t, next, name)
	}
}

func TestNextRun_UnrecognizedFrequency(t *testing.T) {
	next, err := NextRun("fortnightly", time.Now().UTC(), nil)
	require.Error(t, err)
	assert.Nil(t, next)
}

func TestFirstRun_Daily_SameDayFutureTime(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	sched := &models.Schedule{TimeOfDay: "09:30", Timezone: "America/New_York"}

	now := time.Date(2024, 3, 6, 8, 0, 0, 0, ny).UTC()
	first, err := FirstRun(models.FreqDaily, sched, now)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, time.Date(2024, 3, 6, 9, 30, 0, 0, ny).UTC(), *first)
}

func TestFirstRun_Daily_RollsForwardAtOrAfterNow(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	sched := &models.Schedule{TimeOfDay: "09:30", Timezone: "America/New_York"}

	// Exactly 09:30 counts as passed and rolls to tomorrow.
	now := time.Date(2024, 3, 6, 9, 30, 0, 0, ny).UTC()
	first, err := FirstRun(models.FreqDaily, sched, now)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, time.Date(2024, 3, 7, 9, 30, 0, 0, ny).UTC(), *first)
}

func TestFirstRun_Weekly_SameDayStillSelectable(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	// Wednesday 08:00, Wednesday configured: today's 09:30 is still ahead.
	now := time.Date(2024, 3, 6, 8, 0, 0, 0, ny).UTC()
	first, err := FirstRun(models.FreqWeekly, weeklyNY(3), now)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, time.Date(2024, 3, 6, 9, 30, 0, 0, ny).UTC(), *first)
}

func TestFirstRun_Weekly_PassedTimeMovesToNextConfiguredDay(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	// Wednesday 10:00, Mon/Wed configured: Wednesday already fired.
	now := time.Date(2024, 3, 6, 10, 0, 0, 0, ny).UTC()
	first, err := FirstRun(models.FreqWeekly, weeklyNY(1, 3), now)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, time.Date(2024, 3, 11, 9, 30, 0, 0, ny).UTC(), *first)
}

func TestFirstRun_OneTime(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	sched := &models.Schedule{Date: "2024-12-25", TimeOfDay: "09:00", Timezone: "America/New_York"}

	first, err := FirstRun(models.FreqOneTime, sched, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, time.Date(2024, 12, 25, 9, 0, 0, 0, ny).UTC(), *first)
	assert.Equal(t, time.Date(2024, 12, 25, 14, 0, 0, 0, time.UTC), *first)
}

func TestFirstRun_OneTime_InvalidDate(t *testing.T) {
	sched := &models.Schedule{Date: "not-a-date", TimeOfDay: "09:00", Timezone: "UTC"}
	first, err := FirstRun(models.FreqOneTime, sched, time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, first)
}

func TestIsoWeekday(t *testing.T) {
	assert.Equal(t, 1, isoWeekday(time.Monday))
	assert.Equal(t, 3, isoWeekday(time.Wednesday))
	assert.Equal(t, 6, isoWeekday(time.Saturday))
	assert.Equal(t, 7, isoWeekday(time.Sunday))
}
