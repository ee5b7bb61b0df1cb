package appointment

import (
	"context"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
)

type AcceptAppointment struct {
	repo    domain.Repository
	emitter *notify.Emitter
}

func NewAcceptAppointment(
	repo domain.Repository,
	emitter *notify.Emitter,
) *AcceptAppointment {
	return &AcceptAppointment{
		repo:    repo,
		emitter: emitter,
	}
}

func (uc *AcceptAppointment) Execute(
	ctx context.Context,
	actor *models.User,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanAccept(domain.Status(ap.Status.Name)); err != nil {
		return nil, err
	}

	statusID, err := uc.repo.StatusIDByName(ctx, string(domain.StatusAccepted))
	if err != nil {
		return nil, err
	}
	ap.StatusID = statusID

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	if err := appendEvent(ctx, uc.repo, ap, actor, models.EventAccepted); err != nil {
		return nil, err
	}

	accepted, err := uc.repo.GetByID(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	emitToCounterparty(ctx, uc.emitter, accepted, actor, models.ActionAppointmentAccepted)

	return accepted, nil
}
