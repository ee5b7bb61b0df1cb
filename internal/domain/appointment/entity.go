package appointment

import (
	"strconv"

	"github.com/bookwell/appointments-api/internal/models"
)

// nonSenseFields are the editable fields whose change does not revoke a
// prior acceptance.
var nonSenseFields = map[string]bool{
	"title":              true,
	"messages_allowed":   true,
	"note_from_customer": true,
	"end_time":           true,
}

// UpdateInput carries the editable appointment fields. Nil means
// "not sent", not "clear".
type UpdateInput struct {
	Title                    *string
	Date                     *string
	StartTime                *string
	EndTime                  *string
	Price                    *float64
	Duration                 *int
	StaffID                  *uint
	CustomerID               *uint
	IndividualUserIndustryID *uint
	ServiceID                *uint
	MessagesAllowed          *bool
	NoteFromCustomer         *string
	NoteFromCreator          *string
}

type FieldChange struct {
	Field   string
	Prev    string
	Current string
}

// DiffFields compares the incoming payload against the stored appointment
// and returns one change per modified field. end_time is derived from
// start_time + duration and is never recorded.
func DiffFields(ap *models.Appointment, in UpdateInput) []FieldChange {
	var changes []FieldChange

	add := func(field, prev, current string) {
		if prev != current {
			changes = append(changes, FieldChange{Field: field, Prev: prev, Current: current})
		}
	}

	if in.Title != nil {
		add("title", ap.Title, *in.Title)
	}
	if in.Date != nil {
		add("date", ap.Date, *in.Date)
	}
	if in.StartTime != nil {
		add("start_time", ap.StartTime, *in.StartTime)
	}
	if in.Price != nil {
		add("price", formatFloat(ap.Price), formatFloat(*in.Price))
	}
	if in.Duration != nil {
		add("duration", strconv.Itoa(ap.Duration), strconv.Itoa(*in.Duration))
	}
	if in.StaffID != nil {
		add("staff_id", formatID(ap.StaffID), formatID(in.StaffID))
	}
	if in.CustomerID != nil {
		add("customer_id", formatID(ap.CustomerID), formatID(in.CustomerID))
	}
	if in.IndividualUserIndustryID != nil {
		add("individual_user_industry_id", formatID(ap.IndividualUserIndustryID), formatID(in.IndividualUserIndustryID))
	}
	if in.ServiceID != nil {
		add("service_id", formatID(ap.ServiceID), formatID(in.ServiceID))
	}
	if in.MessagesAllowed != nil {
		add("messages_allowed", strconv.FormatBool(ap.MessagesAllowed), strconv.FormatBool(*in.MessagesAllowed))
	}
	if in.NoteFromCustomer != nil {
		add("note_from_customer", ap.NoteFromCustomer, *in.NoteFromCustomer)
	}
	if in.NoteFromCreator != nil {
		add("note_from_creator", ap.NoteFromCreator, *in.NoteFromCreator)
	}

	return changes
}

// HasSenseChange reports whether any change touches a sense-bearing field.
// Substantive edits on an accepted appointment revoke the acceptance.
func HasSenseChange(changes []FieldChange) bool {
	for _, ch := range changes {
		if !nonSenseFields[ch.Field] {
			return true
		}
	}
	return false
}

// ===============================
// Actor helpers
// ===============================

// IsCompanyOwner reports whether the actor is the company owner acting in
// the Owner role.
func IsCompanyOwner(ownerID, actorID, activeRoleID, ownerRoleID uint) bool {
	return ownerID == actorID && activeRoleID == ownerRoleID
}

// IsActingStaff reports whether the actor is the appointment's staff member
// acting in the Staff role.
func IsActingStaff(ap *models.Appointment, actorID, activeRoleID, staffRoleID uint) bool {
	return ap.StaffID != nil && *ap.StaffID == actorID && activeRoleID == staffRoleID
}

// IsLastChangeBy reports whether the given history row was written by the
// given user acting in the given role.
func IsLastChangeBy(last *models.AppointmentHistory, userID, roleID uint) bool {
	return last != nil && last.UserID == userID && last.RoleID == roleID
}

// LastHistory returns the most recent history row, or nil.
func LastHistory(ap *models.Appointment) *models.AppointmentHistory {
	if len(ap.History) == 0 {
		return nil
	}
	last := &ap.History[0]
	for i := range ap.History {
		if ap.History[i].ID > last.ID {
			last = &ap.History[i]
		}
	}
	return last
}

// AcceptAllowed reports whether the actor may accept the appointment: it is
// pending and the last recorded change came from the other side.
func AcceptAllowed(ap *models.Appointment, actorID, activeRoleID uint) bool {
	if Status(ap.Status.Name) != StatusPending {
		return false
	}
	return !IsLastChangeBy(LastHistory(ap), actorID, activeRoleID)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatID(id *uint) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}
