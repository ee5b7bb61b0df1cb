package appointment

import (
	"context"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/models"
)

type ListStatuses struct {
	repo domain.Repository
}

func NewListStatuses(repo domain.Repository) *ListStatuses {
	return &ListStatuses{repo: repo}
}

func (uc *ListStatuses) Execute(ctx context.Context) ([]models.AppointmentStatus, error) {
	return uc.repo.ListStatuses(ctx)
}
