package notification

import (
	"context"
	"time"

	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
)

type MakeSeen struct {
	store notify.Store
}

func NewMakeSeen(store notify.Store) *MakeSeen {
	return &MakeSeen{store: store}
}

// Execute stamps seen_at on the actor's unseen notifications for the role
// set matching their active role: all personal roles at once when acting
// in a personal role, just Owner otherwise. Re-running is a no-op in
// effect since stamped rows are excluded.
func (uc *MakeSeen) Execute(
	ctx context.Context,
	actor *models.User,
) (int64, error) {

	personalIDs, err := uc.store.PersonalRoleIDs(ctx)
	if err != nil {
		return 0, err
	}

	roleIDs := personalIDs
	if !containsID(personalIDs, actor.ActiveRoleID) {
		ownerRole, err := uc.store.RoleByName(ctx, models.RoleOwner)
		if err != nil {
			return 0, err
		}
		roleIDs = []uint{ownerRole.ID}
	}

	return uc.store.MarkSeen(ctx, actor.ID, roleIDs, time.Now())
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
