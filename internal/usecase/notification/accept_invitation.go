package notification

import (
	"context"

	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
)

type AcceptIndividualCustomerInvitation struct {
	store   notify.Store
	emitter *notify.Emitter
}

func NewAcceptIndividualCustomerInvitation(
	store notify.Store,
	emitter *notify.Emitter,
) *AcceptIndividualCustomerInvitation {
	return &AcceptIndividualCustomerInvitation{
		store:   store,
		emitter: emitter,
	}
}

// Execute attaches the actor as a customer of the inviting individual
// user's industry, consumes the invitation and notifies the inviter.
func (uc *AcceptIndividualCustomerInvitation) Execute(
	ctx context.Context,
	actor *models.User,
	token string,
) error {

	inv, err := uc.store.GetIndividualCustomerInvitation(ctx, token)
	if err != nil {
		return httperr.ErrBusiness("invitation_not_found")
	}

	industryID := inv.IndividualUserIndustryID

	already, err := uc.store.HasIndustryCustomer(ctx, industryID, actor.ID)
	if err != nil {
		return err
	}
	if already {
		return httperr.ErrBusiness("customer_already_attached")
	}

	if err := uc.store.AttachIndustryCustomer(ctx, industryID, actor.ID); err != nil {
		return err
	}

	// Conta acertada: convite e notificação associada saem juntos.
	if n, err := uc.store.ByIndividualCustomerInvitationToken(ctx, token); err == nil {
		if err := uc.store.Delete(ctx, n); err != nil {
			return err
		}
	}
	if err := uc.store.DeleteIndividualCustomerInvitation(ctx, inv); err != nil {
		return err
	}

	_, err = uc.emitter.Create(ctx, actor.ID, notify.CreateInput{
		Action:     models.ActionIndividualCustomerInvitationAccepted,
		ToRole:     models.RoleIndividual,
		ToID:       inv.IndividualUserIndustry.UserID,
		IndustryID: &industryID,
	})
	return err
}
