package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwell/appointments-api/internal/models"
)

func strptr(s string) *string { return &s }
func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }

func baseAppointment() *models.Appointment {
	return &models.Appointment{
		ID:        10,
		Title:     "Haircut",
		Date:      "2026-03-10",
		StartTime: "10:00",
		EndTime:   "10:30",
		Duration:  30,
		Price:     25,
	}
}

func TestDiffFields(t *testing.T) {
	ap := baseAppointment()

	changes := DiffFields(ap, UpdateInput{
		Title:    strptr("Haircut + beard"),
		Price:    fptr(40),
		Duration: iptr(45),
	})

	require.Len(t, changes, 3)

	byField := map[string]FieldChange{}
	for _, ch := range changes {
		byField[ch.Field] = ch
	}

	assert.Equal(t, "Haircut", byField["title"].Prev)
	assert.Equal(t, "Haircut + beard", byField["title"].Current)
	assert.Equal(t, "25", byField["price"].Prev)
	assert.Equal(t, "40", byField["price"].Current)
	assert.Equal(t, "30", byField["duration"].Prev)
	assert.Equal(t, "45", byField["duration"].Current)
}

func TestDiffFieldsSkipsUnchanged(t *testing.T) {
	ap := baseAppointment()

	changes := DiffFields(ap, UpdateInput{
		Title: strptr("Haircut"),
		Price: fptr(25),
	})

	assert.Empty(t, changes)
}

func TestDiffFieldsNeverRecordsEndTime(t *testing.T) {
	ap := baseAppointment()

	changes := DiffFields(ap, UpdateInput{
		EndTime:  strptr("11:00"),
		Duration: iptr(60),
	})

	require.Len(t, changes, 1)
	assert.Equal(t, "duration", changes[0].Field)
}

func TestHasSenseChange(t *testing.T) {
	assert.False(t, HasSenseChange([]FieldChange{
		{Field: "title"},
		{Field: "messages_allowed"},
		{Field: "note_from_customer"},
	}))

	assert.True(t, HasSenseChange([]FieldChange{
		{Field: "title"},
		{Field: "price"},
	}))

	assert.True(t, HasSenseChange([]FieldChange{
		{Field: "start_time"},
	}))
}

func TestAcceptAllowed(t *testing.T) {
	pending := models.AppointmentStatus{Name: "pending"}
	accepted := models.AppointmentStatus{Name: "accepted"}

	t.Run("pending and last change from other side", func(t *testing.T) {
		ap := baseAppointment()
		ap.Status = pending
		ap.History = []models.AppointmentHistory{
			{ID: 1, UserID: 5, RoleID: 2},
		}
		assert.True(t, AcceptAllowed(ap, 9, 3))
	})

	t.Run("own last change blocks accept", func(t *testing.T) {
		ap := baseAppointment()
		ap.Status = pending
		ap.History = []models.AppointmentHistory{
			{ID: 1, UserID: 5, RoleID: 2},
			{ID: 2, UserID: 9, RoleID: 3},
		}
		assert.False(t, AcceptAllowed(ap, 9, 3))
	})

	t.Run("same user in a different role may accept", func(t *testing.T) {
		ap := baseAppointment()
		ap.Status = pending
		ap.History = []models.AppointmentHistory{
			{ID: 2, UserID: 9, RoleID: 2},
		}
		assert.True(t, AcceptAllowed(ap, 9, 3))
	})

	t.Run("not pending", func(t *testing.T) {
		ap := baseAppointment()
		ap.Status = accepted
		assert.False(t, AcceptAllowed(ap, 9, 3))
	})
}

func TestLastHistoryPicksHighestID(t *testing.T) {
	ap := baseAppointment()
	ap.History = []models.AppointmentHistory{
		{ID: 3, UserID: 1},
		{ID: 7, UserID: 2},
		{ID: 5, UserID: 3},
	}

	last := LastHistory(ap)
	require.NotNil(t, last)
	assert.Equal(t, uint(7), last.ID)

	assert.Nil(t, LastHistory(baseAppointment()))
}
