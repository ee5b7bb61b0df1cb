package notification

import (
	"context"

	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
)

type ListNotifications struct {
	store notify.Store
}

func NewListNotifications(store notify.Store) *ListNotifications {
	return &ListNotifications{store: store}
}

func (uc *ListNotifications) Execute(
	ctx context.Context,
	actorID uint,
) ([]models.Notification, error) {
	return uc.store.ListForUser(ctx, actorID)
}
