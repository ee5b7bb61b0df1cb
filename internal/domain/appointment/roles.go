package appointment

import "github.com/bookwell/appointments-api/internal/models"

type Role string

const (
	RoleStaff      Role = "staff"
	RoleCustomer   Role = "customer"
	RoleIndividual Role = "individual"
	RoleOwner      Role = "owner"
)

// ResolveRole returns the role the actor holds in the appointment.
//
// First match wins: staff, then customer, then individual. Anything else
// falls back to owner without verifying actual ownership, so callers must
// gate access upstream before trusting the result.
func ResolveRole(ap *models.Appointment, actorID uint) Role {
	switch {
	case ap.StaffID != nil && *ap.StaffID == actorID:
		return RoleStaff
	case ap.CustomerID != nil && *ap.CustomerID == actorID:
		return RoleCustomer
	case ap.IndividualUserIndustry != nil && ap.IndividualUserIndustry.UserID == actorID:
		return RoleIndividual
	default:
		return RoleOwner
	}
}
