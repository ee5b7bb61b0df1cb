package notification

import (
	"context"
	"time"

	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
)

type MakeRead struct {
	store notify.Store
}

func NewMakeRead(store notify.Store) *MakeRead {
	return &MakeRead{store: store}
}

func (uc *MakeRead) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
) (*models.Notification, error) {

	n, err := uc.store.GetForUser(ctx, actorID, id)
	if err != nil {
		return nil, httperr.ErrBusiness("notification_not_found")
	}

	now := time.Now()
	n.ReadAt = &now

	if err := uc.store.Save(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
