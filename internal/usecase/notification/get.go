package notification

import (
	"context"

	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
)

type GetNotification struct {
	store notify.Store
}

func NewGetNotification(store notify.Store) *GetNotification {
	return &GetNotification{store: store}
}

func (uc *GetNotification) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
) (*models.Notification, error) {

	n, err := uc.store.GetForUser(ctx, actorID, id)
	if err != nil {
		return nil, httperr.ErrBusiness("notification_not_found")
	}
	return n, nil
}
