package appointment

import (
	"context"
	"time"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
	"github.com/bookwell/appointments-api/internal/timezone"
)

type UpdateAppointment struct {
	repo    domain.Repository
	emitter *notify.Emitter
}

func NewUpdateAppointment(
	repo domain.Repository,
	emitter *notify.Emitter,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:    repo,
		emitter: emitter,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actor *models.User,
	appointmentID uint,
	in domain.UpdateInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	changes := domain.DiffFields(ap, in)
	if len(changes) == 0 {
		return ap, nil
	}

	// Reschedules have to pass the same slot validation as creation.
	if in.Date != nil || in.StartTime != nil || in.Duration != nil {
		if err := uc.validateReschedule(ctx, ap, in); err != nil {
			return nil, err
		}
	}

	// Substantive edits on an accepted appointment revoke the acceptance
	// and send it back for re-confirmation.
	if domain.HasSenseChange(changes) && domain.Status(ap.Status.Name) == domain.StatusAccepted {
		pendingID, err := uc.repo.StatusIDByName(ctx, string(domain.StatusPending))
		if err != nil {
			return nil, err
		}
		ap.StatusID = pendingID
	}

	applyChanges(ap, in)
	ap.EndTime = domain.EndTimeByDuration(ap.StartTime, ap.Duration)

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	if err := appendChanges(ctx, uc.repo, ap, actor, changes); err != nil {
		return nil, err
	}

	updated, err := uc.repo.GetByID(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	emitToCounterparty(ctx, uc.emitter, updated, actor, models.ActionAppointmentUpdated)

	return updated, nil
}

func (uc *UpdateAppointment) validateReschedule(
	ctx context.Context,
	ap *models.Appointment,
	in domain.UpdateInput,
) error {

	date := ap.Date
	if in.Date != nil {
		date = *in.Date
	}
	startTime := ap.StartTime
	if in.StartTime != nil {
		startTime = *in.StartTime
	}
	duration := ap.Duration
	if in.Duration != nil {
		duration = *in.Duration
	}

	company, err := uc.repo.GetCompanyByID(ctx, ap.CompanyID)
	if err != nil {
		return httperr.ErrBusiness("company_not_found")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		date+" "+startTime,
		timezone.Location(company.Timezone),
	)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	day, err := uc.repo.WorkingDayFor(ctx, ap.CompanyID, date)
	if err != nil {
		return err
	}

	now := timezone.NowIn(company.Timezone)
	return domain.ValidateSlot(now, start, duration, day)
}

func applyChanges(ap *models.Appointment, in domain.UpdateInput) {
	if in.Title != nil {
		ap.Title = *in.Title
	}
	if in.Date != nil {
		ap.Date = *in.Date
	}
	if in.StartTime != nil {
		ap.StartTime = *in.StartTime
	}
	if in.Price != nil {
		ap.Price = *in.Price
	}
	if in.Duration != nil {
		ap.Duration = *in.Duration
	}
	if in.StaffID != nil {
		ap.StaffID = in.StaffID
	}
	if in.CustomerID != nil {
		ap.CustomerID = in.CustomerID
	}
	if in.IndividualUserIndustryID != nil {
		ap.IndividualUserIndustryID = in.IndividualUserIndustryID
	}
	if in.ServiceID != nil {
		ap.ServiceID = in.ServiceID
	}
	if in.MessagesAllowed != nil {
		ap.MessagesAllowed = *in.MessagesAllowed
	}
	if in.NoteFromCustomer != nil {
		ap.NoteFromCustomer = *in.NoteFromCustomer
	}
	if in.NoteFromCreator != nil {
		ap.NoteFromCreator = *in.NoteFromCreator
	}
}
