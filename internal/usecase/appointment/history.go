package appointment

import (
	"context"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
)

// appendEvent records a lifecycle event on the appointment's history.
func appendEvent(
	ctx context.Context,
	repo domain.Repository,
	ap *models.Appointment,
	actor *models.User,
	eventName string,
) error {

	eventID, err := repo.EventIDByName(ctx, eventName)
	if err != nil {
		return err
	}

	return repo.AppendHistory(ctx, []models.AppointmentHistory{{
		AppointmentID: ap.ID,
		UserID:        actor.ID,
		RoleID:        actor.ActiveRoleID,
		EventID:       &eventID,
	}})
}

// appendChanges records one history row per changed field.
func appendChanges(
	ctx context.Context,
	repo domain.Repository,
	ap *models.Appointment,
	actor *models.User,
	changes []domain.FieldChange,
) error {

	rows := make([]models.AppointmentHistory, 0, len(changes))
	for _, ch := range changes {
		rows = append(rows, models.AppointmentHistory{
			AppointmentID: ap.ID,
			UserID:        actor.ID,
			RoleID:        actor.ActiveRoleID,
			Field:         ch.Field,
			Prev:          ch.Prev,
			Current:       ch.Current,
		})
	}

	return repo.AppendHistory(ctx, rows)
}

// emitToCounterparty notifies the user on the other side of the
// appointment. Missing counterparties are not an error: an owner booking
// with no staff or customer attached simply notifies nobody.
func emitToCounterparty(
	ctx context.Context,
	emitter *notify.Emitter,
	ap *models.Appointment,
	actor *models.User,
	action string,
) {

	toID, toRole, ok := counterparty(ap, actor.ID)
	if !ok || toID == actor.ID {
		return
	}

	apID := ap.ID
	_, _ = emitter.Create(ctx, actor.ID, notify.CreateInput{
		Action:        action,
		ToRole:        toRole,
		ToID:          toID,
		CompanyID:     &ap.CompanyID,
		AppointmentID: &apID,
	})
}

func counterparty(ap *models.Appointment, actorID uint) (uint, string, bool) {
	switch domain.ResolveRole(ap, actorID) {
	case domain.RoleOwner, domain.RoleStaff, domain.RoleIndividual:
		if ap.CustomerID != nil {
			return *ap.CustomerID, models.RoleCustomer, true
		}
	case domain.RoleCustomer:
		if ap.StaffID != nil {
			return *ap.StaffID, models.RoleStaff, true
		}
		if ap.IndividualUserIndustry != nil {
			return ap.IndividualUserIndustry.UserID, models.RoleIndividual, true
		}
		return ap.Company.OwnerID, models.RoleOwner, true
	}

	return 0, "", false
}
