package appointment

import (
	"context"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/httperr"
)

type GetAppointmentRole struct {
	repo domain.Repository
}

func NewGetAppointmentRole(repo domain.Repository) *GetAppointmentRole {
	return &GetAppointmentRole{repo: repo}
}

func (uc *GetAppointmentRole) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
) (domain.Role, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return "", httperr.ErrBusiness("appointment_not_found")
	}

	return domain.ResolveRole(ap, actorID), nil
}
