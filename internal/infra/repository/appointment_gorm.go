package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.withPreloads(r.db.WithContext(ctx)).
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	// Associations are preloaded on reads; never write them back.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
}

func (r *AppointmentGormRepository) SoftDeleteForRole(
	ctx context.Context,
	ap *models.Appointment,
	role domain.Role,
	now time.Time,
) error {

	switch role {
	case domain.RoleOwner:
		ap.DeletedByOwnerAt = &now
	case domain.RoleStaff:
		ap.DeletedByStaffAt = &now
	case domain.RoleCustomer:
		ap.DeletedByCustomerAt = &now
	case domain.RoleIndividual:
		ap.DeletedByIndividualUserAt = &now
	default:
		return httperr.ErrBusiness("unknown_role")
	}

	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
}

// --------------------------------------------------
// Visibility
// --------------------------------------------------

// roleScopes maps a personal role name to the query restricting
// appointments to that role's own perspective, soft-deletes excluded.
var roleScopes = map[string]func(q *gorm.DB, r *AppointmentGormRepository, userID uint) *gorm.DB{
	models.RoleStaff: func(q *gorm.DB, _ *AppointmentGormRepository, userID uint) *gorm.DB {
		return q.Where("staff_id = ? AND deleted_by_staff_at IS NULL", userID)
	},
	models.RoleCustomer: func(q *gorm.DB, _ *AppointmentGormRepository, userID uint) *gorm.DB {
		return q.Where("customer_id = ? AND deleted_by_customer_at IS NULL", userID)
	},
	models.RoleIndividual: func(q *gorm.DB, r *AppointmentGormRepository, userID uint) *gorm.DB {
		sub := r.db.Model(&models.IndividualUserIndustry{}).
			Select("id").
			Where("user_id = ?", userID)
		return q.Where("individual_user_industry_id IN (?)", sub).
			Where("deleted_by_individual_user_at IS NULL")
	},
}

func (r *AppointmentGormRepository) ListForRole(
	ctx context.Context,
	userID uint,
	role *models.Role,
	f domain.Filter,
) ([]models.Appointment, error) {

	scope, ok := roleScopes[role.Name]
	if !ok {
		return nil, httperr.ErrBusiness("unknown_role")
	}

	q := r.withPreloads(r.db.WithContext(ctx).Model(&models.Appointment{}))
	q = scope(q, r, userID)
	q = r.applyFilter(q, f, role.Name)

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListForOwner(
	ctx context.Context,
	ownerID uint,
	f domain.Filter,
) ([]models.Appointment, error) {

	q := r.withPreloads(r.db.WithContext(ctx).Model(&models.Appointment{})).
		Where("company_id IN (?)", r.db.Model(&models.Company{}).
			Select("id").
			Where("owner_id = ?", ownerID)).
		Where("deleted_by_owner_at IS NULL")

	q = r.applyFilter(q, f, models.RoleOwner)

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) applyFilter(
	q *gorm.DB,
	f domain.Filter,
	roleName string,
) *gorm.DB {

	if len(f.Statuses) > 0 {
		q = q.Where("status_id IN ?", f.Statuses)
	}
	if validDate(f.DateFrom) {
		q = q.Where("date >= ?", f.DateFrom)
	}
	if validDate(f.DateTo) {
		q = q.Where("date <= ?", f.DateTo)
	}
	if len(f.Industries) > 0 && roleName == models.RoleIndividual {
		sub := r.db.Model(&models.IndividualUserIndustry{}).
			Select("id").
			Where("industry_id IN ?", f.Industries)
		q = q.Where("individual_user_industry_id IN (?)", sub)
	}

	return q
}

// Frontends send the literal string "Invalid date" for unset pickers;
// both it and the empty value mean "no bound".
func validDate(d string) bool {
	return d != "" && d != "Invalid date"
}

func (r *AppointmentGormRepository) withPreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Status").
		Preload("Company").
		Preload("Staff").
		Preload("Customer").
		Preload("Service").
		Preload("IndividualUserIndustry").
		Preload("IndividualUserIndustry.Industry").
		Preload("History")
}

// --------------------------------------------------
// Lookup tables
// --------------------------------------------------

func (r *AppointmentGormRepository) RolesOf(
	ctx context.Context,
	userID uint,
	roleIDs []uint,
) ([]models.Role, error) {

	q := r.db.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID)

	if len(roleIDs) > 0 {
		q = q.Where("roles.id IN ?", roleIDs)
	}

	var roles []models.Role
	if err := q.Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *AppointmentGormRepository) RoleByName(
	ctx context.Context,
	name string,
) (*models.Role, error) {

	var role models.Role
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *AppointmentGormRepository) StatusIDByName(
	ctx context.Context,
	name string,
) (uint, error) {

	var status models.AppointmentStatus
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&status).Error; err != nil {
		return 0, err
	}
	return status.ID, nil
}

func (r *AppointmentGormRepository) ListStatuses(
	ctx context.Context,
) ([]models.AppointmentStatus, error) {

	var statuses []models.AppointmentStatus
	if err := r.db.WithContext(ctx).Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *AppointmentGormRepository) EventIDByName(
	ctx context.Context,
	name string,
) (uint, error) {

	var event models.HistoryEvent
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&event).Error; err != nil {
		return 0, err
	}
	return event.ID, nil
}

// --------------------------------------------------
// Scheduling context
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCompanyByID(
	ctx context.Context,
	id uint,
) (*models.Company, error) {

	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *AppointmentGormRepository) WorkingDayFor(
	ctx context.Context,
	companyID uint,
	date string,
) (*models.WorkingDay, error) {

	var day models.WorkingDay
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND date = ?", companyID, date).
		First(&day).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// --------------------------------------------------
// History
// --------------------------------------------------

func (r *AppointmentGormRepository) AppendHistory(
	ctx context.Context,
	rows []models.AppointmentHistory,
) error {

	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
