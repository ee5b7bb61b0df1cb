package models

import "time"

// CustomerInvitation invites a customer to a company.
type CustomerInvitation struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Token     string `gorm:"size:64;uniqueIndex;not null" json:"token"`
	CompanyID uint   `json:"company_id"`
	Email     string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}

// IndividualCustomerInvitation invites a customer to an individual
// user's industry.
type IndividualCustomerInvitation struct {
	ID                       uint   `gorm:"primaryKey" json:"id"`
	Token                    string `gorm:"size:64;uniqueIndex;not null" json:"token"`
	IndividualUserIndustryID uint   `json:"individual_user_industry_id"`

	IndividualUserIndustry IndividualUserIndustry `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"individual_user_industry"`

	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}

// StaffInvitation invites a staff member to a company.
type StaffInvitation struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Token     string `gorm:"size:64;uniqueIndex;not null" json:"token"`
	CompanyID uint   `json:"company_id"`
	Email     string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}
