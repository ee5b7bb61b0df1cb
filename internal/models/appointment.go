package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title string `gorm:"size:150" json:"title"`

	// Scheduling fields. Date is "2006-01-02", times are "15:04" wall-clock
	// in the company timezone, duration is whole minutes.
	Date      string `gorm:"size:10;index" json:"date"`
	StartTime string `gorm:"size:8" json:"start_time"`
	EndTime   string `gorm:"size:8" json:"end_time"`
	Duration  int    `json:"duration"`

	Price float64 `json:"price"`

	CompanyID uint    `json:"company_id"`
	Company   Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"company"`

	CreatorID uint `json:"creator_id"`
	Creator   User `gorm:"foreignKey:CreatorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"creator"`

	// RoleID is the role the creator was acting in when booking.
	RoleID uint `json:"role_id"`

	StaffID *uint `json:"staff_id"`
	Staff   *User `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	CustomerID *uint `json:"customer_id"`
	Customer   *User `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	IndividualUserIndustryID *uint                   `json:"individual_user_industry_id"`
	IndividualUserIndustry   *IndividualUserIndustry `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"individual_user_industry"`

	ServiceID *uint    `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StatusID uint              `json:"status_id"`
	Status   AppointmentStatus `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"status"`

	MessagesAllowed  bool   `json:"messages_allowed"`
	NoteFromCustomer string `gorm:"size:500" json:"note_from_customer"`
	NoteFromCreator  string `gorm:"size:500" json:"note_from_creator"`

	Permalink string `gorm:"size:64;uniqueIndex" json:"permalink"`

	// Appointments are never hard-deleted; each viewer role hides its own copy.
	DeletedByOwnerAt          *time.Time `json:"deleted_by_owner_at"`
	DeletedByStaffAt          *time.Time `json:"deleted_by_staff_at"`
	DeletedByCustomerAt       *time.Time `json:"deleted_by_customer_at"`
	DeletedByIndividualUserAt *time.Time `json:"deleted_by_individual_user_at"`

	History []AppointmentHistory `json:"history,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
