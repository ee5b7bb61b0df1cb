package appointment

import (
	"context"
	"sort"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns the appointments visible to the actor.
//
// An actor in a personal role gets the merged union across every personal
// role they hold, each filtered independently; duplicates are kept as-is.
// An actor in the Owner role gets a single filtered query over the company
// scope. The result is sorted by creation time, newest first.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor *models.User,
	f domain.Filter,
) ([]models.Appointment, error) {

	ownerRole, err := uc.repo.RoleByName(ctx, models.RoleOwner)
	if err != nil {
		return nil, err
	}

	var appointments []models.Appointment

	if actor.ActiveRoleID != ownerRole.ID {
		roles, err := uc.repo.RolesOf(ctx, actor.ID, f.RoleIDs)
		if err != nil {
			return nil, err
		}

		for i := range roles {
			if roles[i].Name == models.RoleOwner {
				continue
			}
			part, err := uc.repo.ListForRole(ctx, actor.ID, &roles[i], f)
			if err != nil {
				return nil, err
			}
			appointments = append(appointments, part...)
		}
	} else {
		appointments, err = uc.repo.ListForOwner(ctx, actor.ID, f)
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].CreatedAt.After(appointments[j].CreatedAt)
	})

	return appointments, nil
}
