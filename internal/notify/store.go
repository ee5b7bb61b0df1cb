package notify

import (
	"context"
	"time"

	"github.com/bookwell/appointments-api/internal/models"
)

type Store interface {
	// -------- Lookup tables --------
	ActionByName(
		ctx context.Context,
		name string,
	) (*models.NotificationAction, error)

	RoleByName(
		ctx context.Context,
		name string,
	) (*models.Role, error)

	PersonalRoleIDs(
		ctx context.Context,
	) ([]uint, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Notification --------
	Create(
		ctx context.Context,
		n *models.Notification,
	) error

	Save(
		ctx context.Context,
		n *models.Notification,
	) error

	GetForUser(
		ctx context.Context,
		userID uint,
		id uint,
	) (*models.Notification, error)

	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Notification, error)

	Delete(
		ctx context.Context,
		n *models.Notification,
	) error

	DeleteForUser(
		ctx context.Context,
		userID uint,
		ids []uint,
	) error

	ByIndividualCustomerInvitationToken(
		ctx context.Context,
		token string,
	) (*models.Notification, error)

	MarkSeen(
		ctx context.Context,
		userID uint,
		roleIDs []uint,
		now time.Time,
	) (int64, error)

	// -------- Invitation acceptance --------
	GetIndividualCustomerInvitation(
		ctx context.Context,
		token string,
	) (*models.IndividualCustomerInvitation, error)

	HasIndustryCustomer(
		ctx context.Context,
		industryID uint,
		userID uint,
	) (bool, error)

	AttachIndustryCustomer(
		ctx context.Context,
		industryID uint,
		userID uint,
	) error

	DeleteIndividualCustomerInvitation(
		ctx context.Context,
		inv *models.IndividualCustomerInvitation,
	) error
}
