package appointment

import (
	"context"
	"fmt"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
)

type FinishAppointment struct {
	repo    domain.Repository
	emitter *notify.Emitter
}

func NewFinishAppointment(
	repo domain.Repository,
	emitter *notify.Emitter,
) *FinishAppointment {
	return &FinishAppointment{
		repo:    repo,
		emitter: emitter,
	}
}

func (uc *FinishAppointment) Execute(
	ctx context.Context,
	actor *models.User,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanFinish(domain.Status(ap.Status.Name)); err != nil {
		return nil, err
	}

	statusID, err := uc.repo.StatusIDByName(ctx, string(domain.StatusFinished))
	if err != nil {
		return nil, err
	}
	ap.StatusID = statusID

	// A rejected write here is an internal fault, not a user error.
	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, fmt.Errorf("appointment cannot be finished: %w", err)
	}

	if err := appendEvent(ctx, uc.repo, ap, actor, models.EventFinished); err != nil {
		return nil, err
	}

	finished, err := uc.repo.GetByID(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	emitToCounterparty(ctx, uc.emitter, finished, actor, models.ActionAppointmentFinished)

	return finished, nil
}
