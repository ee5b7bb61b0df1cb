package models

import "time"

type Industry struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

// IndividualUserIndustry links an individual user to an industry they
// offer services in. Appointments of kind "individual" reference this row.
type IndividualUserIndustry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	IndustryID uint     `json:"industry_id"`
	Industry   Industry `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"industry"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IndustryCustomer attaches a customer to an individual user's industry.
type IndustryCustomer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	IndividualUserIndustryID uint `gorm:"index:idx_industry_customer,unique" json:"individual_user_industry_id"`
	UserID                   uint `gorm:"index:idx_industry_customer,unique" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}
