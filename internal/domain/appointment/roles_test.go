package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookwell/appointments-api/internal/models"
)

func uptr(v uint) *uint { return &v }

func TestResolveRole(t *testing.T) {
	ap := &models.Appointment{
		StaffID:    uptr(1),
		CustomerID: uptr(2),
		IndividualUserIndustry: &models.IndividualUserIndustry{
			UserID: 3,
		},
	}

	assert.Equal(t, RoleStaff, ResolveRole(ap, 1))
	assert.Equal(t, RoleCustomer, ResolveRole(ap, 2))
	assert.Equal(t, RoleIndividual, ResolveRole(ap, 3))
	assert.Equal(t, RoleOwner, ResolveRole(ap, 99))
}

func TestResolveRolePriority(t *testing.T) {
	// Same user on both sides: staff wins.
	ap := &models.Appointment{
		StaffID:    uptr(7),
		CustomerID: uptr(7),
	}
	assert.Equal(t, RoleStaff, ResolveRole(ap, 7))
}

func TestResolveRoleEmptyAppointment(t *testing.T) {
	assert.Equal(t, RoleOwner, ResolveRole(&models.Appointment{}, 1))
}
