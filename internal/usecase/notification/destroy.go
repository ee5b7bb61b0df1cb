package notification

import (
	"context"

	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/notify"
)

type DestroyNotification struct {
	store notify.Store
}

func NewDestroyNotification(store notify.Store) *DestroyNotification {
	return &DestroyNotification{store: store}
}

func (uc *DestroyNotification) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
) error {

	n, err := uc.store.GetForUser(ctx, actorID, id)
	if err != nil {
		return httperr.ErrBusiness("notification_not_found")
	}

	return uc.store.Delete(ctx, n)
}

// ExecuteMany removes a batch of the actor's notifications; ids belonging
// to other users are silently skipped by the ownership predicate.
func (uc *DestroyNotification) ExecuteMany(
	ctx context.Context,
	actorID uint,
	ids []uint,
) error {

	if len(ids) == 0 {
		return nil
	}
	return uc.store.DeleteForUser(ctx, actorID, ids)
}
