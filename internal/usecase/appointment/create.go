package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
	"github.com/bookwell/appointments-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Title     string
	CompanyID uint

	ServiceID                *uint
	StaffID                  *uint
	CustomerID               *uint
	IndividualUserIndustryID *uint

	Date      string
	StartTime string
	Duration  int
	Price     float64

	MessagesAllowed  bool
	NoteFromCreator  string
	NoteFromCustomer string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	emitter *notify.Emitter
}

func NewCreateAppointment(
	repo domain.Repository,
	emitter *notify.Emitter,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		emitter: emitter,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor *models.User,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	company, err := uc.repo.GetCompanyByID(ctx, in.CompanyID)
	if err != nil {
		return nil, httperr.ErrBusiness("company_not_found")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.StartTime,
		timezone.Location(company.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	day, err := uc.repo.WorkingDayFor(ctx, in.CompanyID, in.Date)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(company.Timezone)
	if err := domain.ValidateSlot(now, start, in.Duration, day); err != nil {
		return nil, err
	}

	statusID, err := uc.repo.StatusIDByName(ctx, string(domain.InitialStatus()))
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		Title:     in.Title,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   domain.EndTimeByDuration(in.StartTime, in.Duration),
		Duration:  in.Duration,
		Price:     in.Price,

		CompanyID: in.CompanyID,
		CreatorID: actor.ID,
		RoleID:    actor.ActiveRoleID,

		ServiceID:                in.ServiceID,
		StaffID:                  in.StaffID,
		CustomerID:               in.CustomerID,
		IndividualUserIndustryID: in.IndividualUserIndustryID,

		StatusID:        statusID,
		MessagesAllowed: in.MessagesAllowed,

		NoteFromCreator:  in.NoteFromCreator,
		NoteFromCustomer: in.NoteFromCustomer,

		Permalink: uuid.NewString(),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	created, err := uc.repo.GetByID(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	if err := appendEvent(ctx, uc.repo, created, actor, models.EventCreated); err != nil {
		return nil, err
	}

	emitToCounterparty(ctx, uc.emitter, created, actor, models.ActionAppointmentCreated)

	return created, nil
}
