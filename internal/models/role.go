package models

const (
	RoleOwner      = "Owner"
	RoleStaff      = "Staff"
	RoleCustomer   = "Customer"
	RoleIndividual = "Individual"
)

// PersonalRoleNames are the roles scoping a user's own appointments,
// as opposed to Owner which sees the whole company scope.
var PersonalRoleNames = []string{RoleStaff, RoleCustomer, RoleIndividual}

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:30;uniqueIndex;not null" json:"name"`
}
