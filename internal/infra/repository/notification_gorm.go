package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

// --------------------------------------------------
// Lookup tables
// --------------------------------------------------

func (r *NotificationGormRepository) ActionByName(
	ctx context.Context,
	name string,
) (*models.NotificationAction, error) {

	var action models.NotificationAction
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&action).Error; err != nil {
		return nil, err
	}
	return &action, nil
}

func (r *NotificationGormRepository) RoleByName(
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

func (r *NotificationGormRepository) PersonalRoleIDs(
	ctx context.Context,
) ([]uint, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Role{}).
		Where("name IN ?", models.PersonalRoleNames).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *NotificationGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Notification
// --------------------------------------------------

func (r *NotificationGormRepository) Create(
	ctx context.Context,
	n *models.Notification,
) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationGormRepository) Save(
	ctx context.Context,
	n *models.Notification,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(n).Error
}

func (r *NotificationGormRepository) GetForUser(
	ctx context.Context,
	userID uint,
	id uint,
) (*models.Notification, error) {

	var n models.Notification
	if err := r.withPreloads(r.db.WithContext(ctx)).
		Where("id = ? AND to_id = ?", id, userID).
		First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Notification, error) {

	var ns []models.Notification
	if err := r.withPreloads(r.db.WithContext(ctx)).
		Where("to_id = ?", userID).
		Order("created_at DESC").
		Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

func (r *NotificationGormRepository) Delete(
	ctx context.Context,
	n *models.Notification,
) error {
	return r.db.WithContext(ctx).Delete(n).Error
}

func (r *NotificationGormRepository) DeleteForUser(
	ctx context.Context,
	userID uint,
	ids []uint,
) error {
	return r.db.WithContext(ctx).
		Where("to_id = ? AND id IN ?", userID, ids).
		Delete(&models.Notification{}).Error
}

func (r *NotificationGormRepository) ByIndividualCustomerInvitationToken(
	ctx context.Context,
	token string,
) (*models.Notification, error) {

	var n models.Notification
	if err := r.db.WithContext(ctx).
		Where("individual_customer_invitation_token = ?", token).
		First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkSeen bulk-stamps the actor's unseen notifications restricted to the
// given role set. Already stamped rows are untouched, so the stamp is
// monotonic.
func (r *NotificationGormRepository) MarkSeen(
	ctx context.Context,
	userID uint,
	roleIDs []uint,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("to_id = ? AND seen_at IS NULL AND to_role_id IN ?", userID, roleIDs).
		Update("seen_at", now)

	return res.RowsAffected, res.Error
}

func (r *NotificationGormRepository) withPreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Action").
		Preload("From").
		Preload("Company").
		Preload("Industry").
		Preload("Appointment")
}

// --------------------------------------------------
// Invitation acceptance
// --------------------------------------------------

func (r *NotificationGormRepository) GetIndividualCustomerInvitation(
	ctx context.Context,
	token string,
) (*models.IndividualCustomerInvitation, error) {

	var inv models.IndividualCustomerInvitation
	if err := r.db.WithContext(ctx).
		Preload("IndividualUserIndustry").
		Where("token = ?", token).
		First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *NotificationGormRepository) HasIndustryCustomer(
	ctx context.Context,
	industryID uint,
	userID uint,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.IndustryCustomer{}).
		Where("individual_user_industry_id = ? AND user_id = ?", industryID, userID).
		Count(&count).Error

	return count > 0, err
}

func (r *NotificationGormRepository) AttachIndustryCustomer(
	ctx context.Context,
	industryID uint,
	userID uint,
) error {
	return r.db.WithContext(ctx).Create(&models.IndustryCustomer{
		IndividualUserIndustryID: industryID,
		UserID:                   userID,
	}).Error
}

func (r *NotificationGormRepository) DeleteIndividualCustomerInvitation(
	ctx context.Context,
	inv *models.IndividualCustomerInvitation,
) error {
	return r.db.WithContext(ctx).Delete(inv).Error
}

// Compile-time check
var _ notify.Store = (*NotificationGormRepository)(nil)
