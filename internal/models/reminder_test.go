package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleValidate_Weekly(t *testing.T) {
	valid := Schedule{TimeOfDay: "09:30", Timezone: "America/New_York", WeekDays: []int{1, 3, 5}}
	assert.NoError(t, valid.Validate(FreqWeekly))

	cases := map[string]Schedule{
		"missing timezone": {TimeOfDay: "09:30", WeekDays: []int{1}},
		"unknown timezone": {TimeOfDay: "09:30", Timezone: "Not/AZone", WeekDays: []int{1}},
		"bad time of day":  {TimeOfDay: "9am", Timezone: "UTC", WeekDays: []int{1}},
		"hour overflow":    {TimeOfDay: "24:00", Timezone: "UTC", WeekDays: []int{1}},
		"empty weekdays":   {TimeOfDay: "09:30", Timezone: "UTC"},
		"weekday zero":     {TimeOfDay: "09:30", Timezone: "UTC", WeekDays: []int{0}},
		"weekday eight":    {TimeOfDay: "09:30", Timezone: "UTC", WeekDays: []int{8}},
	}
	for name, sched := range cases {
		assert.Error(t, sched.Validate(FreqWeekly), name)
	}
}

func TestScheduleValidate_OtherFrequencies(t *testing.T) {
	empty := Schedule{}
	assert.NoError(t, empty.Validate(FreqDaily))
	assert.NoError(t, empty.Validate(FreqOneTime))
	assert.Error(t, empty.Validate("monthly"))
}

func TestTimeOfDayParts(t *testing.T) {
	s := Schedule{TimeOfDay: "09:30"}
	h, m, err := s.TimeOfDayParts()
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)

	s = Schedule{TimeOfDay: "23:59"}
	h, m, err = s.TimeOfDayParts()
	require.NoError(t, err)
	assert.Equal(t, 23, h)
	assert.Equal(t, 59, m)
}

func TestIsRecurring(t *testing.T) {
	r := Reminder{Frequency: FreqDaily}
	assert.True(t, r.IsRecurring())
	r.Frequency = FreqWeekly
	assert.True(t, r.IsRecurring())
	r.Frequency = FreqOneTime
	assert.False(t, r.IsRecurring())
}

func TestExecutionRecordKey(t *testing.T) {
	rec := ExecutionRecord{
		ReminderID:   12,
		ScheduledFor: time.Date(2024, 3, 6, 14, 30, 0, 0, time.UTC),
	}
	assert.Equal(t, "12_2024-03-06T14:30:00Z", rec.Key())
}
