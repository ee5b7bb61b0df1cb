package models

import "time"

// WorkingDay holds the business hours of a company for a single date.
// Times are wall-clock strings ("15:04") in the company timezone.
type WorkingDay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyID uint   `gorm:"index:idx_working_days_company_date,unique" json:"company_id"`
	Date      string `gorm:"size:10;index:idx_working_days_company_date,unique" json:"date"`

	StartTime string `gorm:"size:8" json:"start_time"`
	EndTime   string `gorm:"size:8" json:"end_time"`
	IsWorking bool   `json:"is_working"`

	IsBreaking bool   `json:"is_breaking"`
	BreakStart string `gorm:"size:8" json:"break_start"`
	BreakEnd   string `gorm:"size:8" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
