package appointment

import (
	"context"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
)

type CancelAppointment struct {
	repo    domain.Repository
	emitter *notify.Emitter
}

func NewCancelAppointment(
	repo domain.Repository,
	emitter *notify.Emitter,
) *CancelAppointment {
	return &CancelAppointment{
		repo:    repo,
		emitter: emitter,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor *models.User,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanCancel(domain.Status(ap.Status.Name)); err != nil {
		return nil, err
	}

	statusID, err := uc.repo.StatusIDByName(ctx, string(domain.StatusCancelled))
	if err != nil {
		return nil, err
	}
	ap.StatusID = statusID

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	if err := appendEvent(ctx, uc.repo, ap, actor, models.EventCancelled); err != nil {
		return nil, err
	}

	cancelled, err := uc.repo.GetByID(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	emitToCounterparty(ctx, uc.emitter, cancelled, actor, models.ActionAppointmentCancelled)

	return cancelled, nil
}
