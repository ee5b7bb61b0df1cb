package dto

import (
	"time"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/models"
)

type AppointmentDTO struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`

	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Duration  int     `json:"duration"`
	Price     float64 `json:"price"`

	Status string `json:"status"`

	CompanyID   uint   `json:"company_id"`
	CompanyName string `json:"company_name"`

	StaffID      *uint  `json:"staff_id"`
	StaffName    string `json:"staff_name,omitempty"`
	CustomerID   *uint  `json:"customer_id"`
	CustomerName string `json:"customer_name,omitempty"`

	ServiceID   *uint  `json:"service_id"`
	ServiceName string `json:"service_name,omitempty"`

	IndividualUserIndustryID *uint  `json:"individual_user_industry_id"`
	IndustryName             string `json:"industry_name,omitempty"`

	MessagesAllowed  bool   `json:"messages_allowed"`
	NoteFromCustomer string `json:"note_from_customer"`
	NoteFromCreator  string `json:"note_from_creator"`

	Permalink string `json:"permalink"`

	// IsAcceptAllowed is computed for the requesting user: pending, and the
	// last change came from the other side.
	IsAcceptAllowed bool `json:"is_accept_allowed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAppointmentDTO(ap *models.Appointment, actorID, activeRoleID uint) AppointmentDTO {
	out := AppointmentDTO{
		ID:    ap.ID,
		Title: ap.Title,

		Date:      ap.Date,
		StartTime: ap.StartTime,
		EndTime:   ap.EndTime,
		Duration:  ap.Duration,
		Price:     ap.Price,

		Status: ap.Status.Name,

		CompanyID:   ap.CompanyID,
		CompanyName: ap.Company.Name,

		StaffID:    ap.StaffID,
		CustomerID: ap.CustomerID,

		ServiceID:                ap.ServiceID,
		IndividualUserIndustryID: ap.IndividualUserIndustryID,

		MessagesAllowed:  ap.MessagesAllowed,
		NoteFromCustomer: ap.NoteFromCustomer,
		NoteFromCreator:  ap.NoteFromCreator,

		Permalink: ap.Permalink,

		IsAcceptAllowed: domain.AcceptAllowed(ap, actorID, activeRoleID),

		CreatedAt: ap.CreatedAt,
		UpdatedAt: ap.UpdatedAt,
	}

	if ap.Staff != nil {
		out.StaffName = ap.Staff.Name
	}
	if ap.Customer != nil {
		out.CustomerName = ap.Customer.Name
	}
	if ap.Service != nil {
		out.ServiceName = ap.Service.Name
	}
	if ap.IndividualUserIndustry != nil {
		out.IndustryName = ap.IndividualUserIndustry.Industry.Name
	}

	return out
}

func NewAppointmentListDTO(aps []models.Appointment, actorID, activeRoleID uint) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointmentDTO(&aps[i], actorID, activeRoleID))
	}
	return out
}
