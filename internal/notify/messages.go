package notify

import (
	"fmt"

	"github.com/bookwell/appointments-api/internal/models"
)

// Message renders the user-facing text for a notification from its action
// and resolved associations. Never stored; recomputed on every read so the
// wording follows whatever the associations currently say.
func Message(n *models.Notification) string {
	switch n.Action.Name {
	case models.ActionAppointmentCreated:
		return fmt.Sprintf("%s booked a new appointment%s.", fromName(n), appointmentWhen(n))
	case models.ActionAppointmentAccepted:
		return fmt.Sprintf("%s accepted the appointment%s.", fromName(n), appointmentWhen(n))
	case models.ActionAppointmentCancelled:
		return fmt.Sprintf("%s cancelled the appointment%s.", fromName(n), appointmentWhen(n))
	case models.ActionAppointmentFinished:
		return fmt.Sprintf("%s marked the appointment%s as finished.", fromName(n), appointmentWhen(n))
	case models.ActionAppointmentUpdated:
		return fmt.Sprintf("%s changed the appointment%s.", fromName(n), appointmentWhen(n))
	case models.ActionCompanyCustomerInvitation:
		return fmt.Sprintf("%s invited you to join %s as a customer.", fromName(n), companyName(n))
	case models.ActionCompanyStaffInvitation:
		return fmt.Sprintf("%s invited you to join %s as a staff member.", fromName(n), companyName(n))
	case models.ActionIndividualCustomerInvitation:
		return fmt.Sprintf("%s invited you to become their customer.", fromName(n))
	case models.ActionIndividualCustomerInvitationAccepted:
		return fmt.Sprintf("%s accepted your customer invitation.", fromName(n))
	default:
		return "You have a new notification."
	}
}

// Link returns the in-app navigation target for a notification.
func Link(n *models.Notification) string {
	switch n.Action.Name {
	case models.ActionAppointmentCreated,
		models.ActionAppointmentAccepted,
		models.ActionAppointmentCancelled,
		models.ActionAppointmentFinished,
		models.ActionAppointmentUpdated:
		if n.AppointmentID != nil {
			return fmt.Sprintf("/appointments/%d", *n.AppointmentID)
		}
	case models.ActionCompanyCustomerInvitation:
		if n.CustomerInvitationToken != nil {
			return "/invitations/customer/" + *n.CustomerInvitationToken
		}
	case models.ActionIndividualCustomerInvitation:
		if n.IndividualCustomerInvitationToken != nil {
			return "/invitations/individual-customer/" + *n.IndividualCustomerInvitationToken
		}
	case models.ActionCompanyStaffInvitation:
		if n.StaffInvitationToken != nil {
			return "/invitations/staff/" + *n.StaffInvitationToken
		}
	case models.ActionIndividualCustomerInvitationAccepted:
		if n.IndustryID != nil {
			return fmt.Sprintf("/industries/%d/customers", *n.IndustryID)
		}
	}

	return "/notifications"
}

func fromName(n *models.Notification) string {
	if n.From != nil && n.From.Name != "" {
		return n.From.Name
	}
	return "Someone"
}

func companyName(n *models.Notification) string {
	if n.Company != nil && n.Company.Name != "" {
		return n.Company.Name
	}
	return "the company"
}

func appointmentWhen(n *models.Notification) string {
	if n.Appointment == nil {
		return ""
	}
	return fmt.Sprintf(" on %s at %s", n.Appointment.Date, n.Appointment.StartTime)
}
