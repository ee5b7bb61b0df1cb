package models

import "time"

const (
	ActionAppointmentCreated   = "appointment.created"
	ActionAppointmentAccepted  = "appointment.accepted"
	ActionAppointmentCancelled = "appointment.cancelled"
	ActionAppointmentFinished  = "appointment.finished"
	ActionAppointmentUpdated   = "appointment.updated"

	ActionCompanyCustomerInvitation            = "company.customer.invitation"
	ActionIndividualCustomerInvitation         = "individual.customer.invitation"
	ActionCompanyStaffInvitation               = "company.staff.invitation"
	ActionIndividualCustomerInvitationAccepted = "individual.customer.invitation.accepted"
)

type NotificationAction struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:64;uniqueIndex;not null" json:"name"`
}

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ActionID uint               `json:"action_id"`
	Action   NotificationAction `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"action"`

	FromID uint  `json:"from_id"`
	From   *User `gorm:"foreignKey:FromID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"from"`

	ToID uint  `json:"to_id"`
	To   *User `gorm:"foreignKey:ToID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"to"`

	ToRoleID uint `json:"to_role_id"`

	CompanyID *uint    `json:"company_id"`
	Company   *Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"company"`

	IndustryID *uint                   `json:"industry_id"`
	Industry   *IndividualUserIndustry `gorm:"foreignKey:IndustryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"industry"`

	AppointmentID *uint        `json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment"`

	MessageID *uint `json:"message_id"`

	// At most one invitation token is populated per notification; the
	// customer and staff tokens never leave the API.
	CustomerInvitationToken           *string `gorm:"size:64" json:"-"`
	IndividualCustomerInvitationToken *string `gorm:"size:64" json:"individual_customer_invitation_token"`
	StaffInvitationToken              *string `gorm:"size:64" json:"-"`

	// Monotonic: once stamped, never unset.
	SeenAt *time.Time `json:"seen_at"`
	ReadAt *time.Time `json:"read_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
