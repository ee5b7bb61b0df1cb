package appointment

import (
	"time"

	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
)

const dateLayout = "2006-01-02"

// ValidateSlot decide se um agendamento cabe no expediente do dia.
//
// The boundary conditions are deliberately asymmetric: an appointment may
// end exactly at closing or exactly at break start, but may not start at
// closing and may not straddle a break. Checks run in order and the first
// violation wins, tagged on the field the client has to fix.
func ValidateSlot(now time.Time, start time.Time, durationMin int, day *models.WorkingDay) error {
	loc := start.Location()
	nowLocal := now.In(loc)

	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)
	if start.Before(today) {
		return httperr.ErrValidation("date", "Appointment cannot start in the past date.")
	}
	if start.Format(dateLayout) == nowLocal.Format(dateLayout) && start.Before(nowLocal) {
		return httperr.ErrValidation("start_time", "Appointment cannot start in the past hours.")
	}

	if day == nil {
		return httperr.ErrValidation("date", "Unable to get working time.")
	}
	if !day.IsWorking {
		return httperr.ErrValidation("date", "Appointment must be on working day.")
	}

	end := start.Add(time.Duration(durationMin) * time.Minute)
	workStart := atClock(start, day.StartTime)
	workEnd := atClock(start, day.EndTime)

	outsideWorkingHours := start.Before(workStart) ||
		start.After(workEnd) ||
		start.Equal(workEnd) ||
		(workEnd.After(start) && workEnd.Before(end))
	if outsideWorkingHours {
		return httperr.ErrValidation("start_time", "Appointment must be on working hours.")
	}

	if day.IsBreaking {
		breakStart := atClock(start, day.BreakStart)
		breakEnd := atClock(start, day.BreakEnd)

		onBreak := (!breakStart.Before(start) && !breakStart.After(end)) ||
			(breakEnd.After(start) && breakEnd.Before(end)) ||
			breakEnd.Equal(end) ||
			(start.After(breakStart) && start.Before(breakEnd))
		if onBreak {
			return httperr.ErrValidation("start_time", "Appointment is set on breaking hours. Please select valid timing for appointment.")
		}
	}

	return nil
}

// EndTimeByDuration computa o horário final a partir da duração.
func EndTimeByDuration(startTime string, durationMin int) string {
	t := parseClock(startTime)
	return t.Add(time.Duration(durationMin) * time.Minute).Format("15:04")
}

func atClock(day time.Time, hm string) time.Time {
	t := parseClock(hm)
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		day.Location(),
	)
}

func parseClock(hm string) time.Time {
	if t, err := time.Parse("15:04:05", hm); err == nil {
		return t
	}
	t, _ := time.Parse("15:04", hm)
	return t
}
