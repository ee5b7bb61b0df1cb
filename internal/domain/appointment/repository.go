package appointment

import (
	"context"
	"time"

	"github.com/bookwell/appointments-api/internal/models"
)

// Filter narrows an appointment listing. Zero values mean "not applied".
// Date bounds equal to "Invalid date" are ignored, not rejected.
type Filter struct {
	Statuses   []uint
	DateFrom   string
	DateTo     string
	Industries []uint
	RoleIDs    []uint
}

type Repository interface {
	// -------- Appointment --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SoftDeleteForRole(
		ctx context.Context,
		ap *models.Appointment,
		role Role,
		now time.Time,
	) error

	// -------- Visibility --------
	ListForOwner(
		ctx context.Context,
		ownerID uint,
		f Filter,
	) ([]models.Appointment, error)

	ListForRole(
		ctx context.Context,
		userID uint,
		role *models.Role,
		f Filter,
	) ([]models.Appointment, error)

	// -------- Lookup tables --------
	RolesOf(
		ctx context.Context,
		userID uint,
		roleIDs []uint,
	) ([]models.Role, error)

	RoleByName(
		ctx context.Context,
		name string,
	) (*models.Role, error)

	StatusIDByName(
		ctx context.Context,
		name string,
	) (uint, error)

	ListStatuses(
		ctx context.Context,
	) ([]models.AppointmentStatus, error)

	EventIDByName(
		ctx context.Context,
		name string,
	) (uint, error)

	// -------- Scheduling context --------
	GetCompanyByID(
		ctx context.Context,
		id uint,
	) (*models.Company, error)

	// WorkingDayFor returns (nil, nil) when no record exists for the date.
	WorkingDayFor(
		ctx context.Context,
		companyID uint,
		date string,
	) (*models.WorkingDay, error)

	// -------- History --------
	AppendHistory(
		ctx context.Context,
		rows []models.AppointmentHistory,
	) error
}
