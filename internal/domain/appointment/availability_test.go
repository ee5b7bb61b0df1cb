package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
)

func workDay() *models.WorkingDay {
	return &models.WorkingDay{
		IsWorking:  true,
		StartTime:  "09:00",
		EndTime:    "17:00",
		IsBreaking: true,
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	}
}

func at(t *testing.T, date, hm string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hm, time.UTC)
	require.NoError(t, err)
	return ts
}

func TestValidateSlot(t *testing.T) {
	now := at(t, "2026-03-10", "08:00")

	cases := []struct {
		name      string
		start     string
		duration  int
		wantField string
	}{
		{"fits inside working hours", "10:00", 60, ""},
		{"ends exactly at closing", "16:00", 60, ""},
		{"starts exactly at closing", "17:00", 30, "start_time"},
		{"runs past closing", "16:30", 60, "start_time"},
		{"starts before opening", "08:30", 30, "start_time"},
		{"ends before break", "11:00", 30, ""},
		{"ends exactly at break start", "11:00", 60, "start_time"},
		{"starts inside break", "12:30", 60, "start_time"},
		{"straddles the break", "11:30", 90, "start_time"},
		{"starts exactly at break end", "13:00", 60, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := at(t, "2026-03-10", tc.start)
			err := ValidateSlot(now, start, tc.duration, workDay())

			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}

			ve, ok := httperr.AsValidation(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			assert.Equal(t, tc.wantField, ve.Field)
		})
	}
}

func TestValidateSlotPast(t *testing.T) {
	now := at(t, "2026-03-10", "14:00")

	t.Run("past date", func(t *testing.T) {
		err := ValidateSlot(now, at(t, "2026-03-09", "10:00"), 30, workDay())
		ve, ok := httperr.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "date", ve.Field)
	})

	t.Run("past hours today", func(t *testing.T) {
		err := ValidateSlot(now, at(t, "2026-03-10", "10:00"), 30, workDay())
		ve, ok := httperr.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "start_time", ve.Field)
	})

	t.Run("later today is fine", func(t *testing.T) {
		err := ValidateSlot(now, at(t, "2026-03-10", "15:00"), 30, workDay())
		assert.NoError(t, err)
	})
}

func TestValidateSlotDayRecord(t *testing.T) {
	now := at(t, "2026-03-10", "08:00")
	start := at(t, "2026-03-11", "10:00")

	t.Run("missing working day record", func(t *testing.T) {
		err := ValidateSlot(now, start, 30, nil)
		ve, ok := httperr.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "date", ve.Field)
		assert.Equal(t, "Unable to get working time.", ve.Message)
	})

	t.Run("non-working day", func(t *testing.T) {
		day := workDay()
		day.IsWorking = false
		err := ValidateSlot(now, start, 30, day)
		ve, ok := httperr.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "date", ve.Field)
		assert.Equal(t, "Appointment must be on working day.", ve.Message)
	})

	t.Run("no break configured", func(t *testing.T) {
		day := workDay()
		day.IsBreaking = false
		err := ValidateSlot(now, start, 60, day)
		assert.NoError(t, err)
	})
}

func TestEndTimeByDuration(t *testing.T) {
	assert.Equal(t, "10:30", EndTimeByDuration("10:00", 30))
	assert.Equal(t, "13:00", EndTimeByDuration("11:30", 90))
	assert.Equal(t, "00:15", EndTimeByDuration("23:45", 30))
}
