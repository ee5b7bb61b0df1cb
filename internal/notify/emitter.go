package notify

import (
	"context"

	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
)

type CreateInput struct {
	Action string
	ToRole string

	// FromID of zero defaults to the acting user.
	FromID uint
	ToID   uint

	CompanyID     *uint
	IndustryID    *uint
	AppointmentID *uint

	CustomerInvitationToken           *string
	IndividualCustomerInvitationToken *string
	StaffInvitationToken              *string
}

// Emitter records notifications and hands them to the dispatcher for
// real-time fan-out.
type Emitter struct {
	store      Store
	dispatcher *Dispatcher
}

func NewEmitter(store Store, dispatcher *Dispatcher) *Emitter {
	return &Emitter{
		store:      store,
		dispatcher: dispatcher,
	}
}

func (e *Emitter) Create(
	ctx context.Context,
	actorID uint,
	in CreateInput,
) (*models.Notification, error) {

	action, err := e.store.ActionByName(ctx, in.Action)
	if err != nil {
		return nil, httperr.ErrBusiness("notification_action_not_found")
	}

	toRole, err := e.store.RoleByName(ctx, in.ToRole)
	if err != nil {
		return nil, httperr.ErrBusiness("role_not_found")
	}

	fromID := in.FromID
	if fromID == 0 {
		fromID = actorID
	}

	n := &models.Notification{
		ActionID:      action.ID,
		FromID:        fromID,
		ToID:          in.ToID,
		ToRoleID:      toRole.ID,
		CompanyID:     in.CompanyID,
		IndustryID:    in.IndustryID,
		AppointmentID: in.AppointmentID,

		CustomerInvitationToken:           in.CustomerInvitationToken,
		IndividualCustomerInvitationToken: in.IndividualCustomerInvitationToken,
		StaffInvitationToken:              in.StaffInvitationToken,
	}

	if err := e.store.Create(ctx, n); err != nil {
		return nil, err
	}

	// Fire-and-forget: the row is already committed, delivery failures
	// are the dispatcher's problem.
	if toUser, err := e.store.GetUserByID(ctx, in.ToID); err == nil {
		e.dispatcher.Dispatch(Event{
			Permalink:      "account" + toUser.Permalink,
			NotificationID: n.ID,
		})
	}

	return n, nil
}
