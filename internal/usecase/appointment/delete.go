package appointment

import (
	"context"
	"time"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
)

type DeleteAppointment struct {
	repo domain.Repository
}

func NewDeleteAppointment(repo domain.Repository) *DeleteAppointment {
	return &DeleteAppointment{repo: repo}
}

// Execute hides the appointment from the actor's role perspective only.
// The row stays visible to every other role until they delete their own
// copy; nothing is ever hard-deleted.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor *models.User,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	role := domain.ResolveRole(ap, actor.ID)
	return uc.repo.SoftDeleteForRole(ctx, ap, role, time.Now())
}
