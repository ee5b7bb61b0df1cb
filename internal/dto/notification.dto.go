package dto

import (
	"time"

	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
)

// NotificationDTO is the read model: message and link are recomputed from
// the action and its associations on every request, never persisted.
type NotificationDTO struct {
	ID     uint   `json:"id"`
	Action string `json:"action"`

	Message string `json:"message"`
	Link    string `json:"link"`

	FromID   uint   `json:"from_id"`
	FromName string `json:"from_name,omitempty"`

	CompanyID     *uint `json:"company_id,omitempty"`
	IndustryID    *uint `json:"industry_id,omitempty"`
	AppointmentID *uint `json:"appointment_id,omitempty"`

	IndividualCustomerInvitationToken *string `json:"individual_customer_invitation_token,omitempty"`

	SeenAt *time.Time `json:"seen_at"`
	ReadAt *time.Time `json:"read_at"`

	CreatedAt time.Time `json:"created_at"`
}

func NewNotificationDTO(n *models.Notification) NotificationDTO {
	out := NotificationDTO{
		ID:     n.ID,
		Action: n.Action.Name,

		Message: notify.Message(n),
		Link:    notify.Link(n),

		FromID: n.FromID,

		CompanyID:     n.CompanyID,
		IndustryID:    n.IndustryID,
		AppointmentID: n.AppointmentID,

		IndividualCustomerInvitationToken: n.IndividualCustomerInvitationToken,

		SeenAt: n.SeenAt,
		ReadAt: n.ReadAt,

		CreatedAt: n.CreatedAt,
	}

	if n.From != nil {
		out.FromName = n.From.Name
	}

	return out
}

func NewNotificationListDTO(ns []models.Notification) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(ns))
	for i := range ns {
		out = append(out, NewNotificationDTO(&ns[i]))
	}
	return out
}
