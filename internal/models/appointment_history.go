package models

import "time"

const (
	EventCreated   = "created"
	EventAccepted  = "accepted"
	EventCancelled = "cancelled"
	EventFinished  = "finished"
)

type HistoryEvent struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:30;uniqueIndex;not null" json:"name"`
}

// AppointmentHistory is an append-only audit row. A row is either a field
// change (Field/Prev/Current set) or a lifecycle event (EventID set).
type AppointmentHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index" json:"appointment_id"`

	UserID uint `json:"user_id"`
	RoleID uint `json:"role_id"`

	Field   string `gorm:"size:50" json:"field"`
	Prev    string `gorm:"size:255" json:"prev"`
	Current string `gorm:"size:255" json:"current"`

	EventID *uint         `json:"event_id"`
	Event   *HistoryEvent `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"event"`

	CreatedAt time.Time `json:"created_at"`
}
