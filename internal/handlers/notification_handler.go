package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bookwell/appointments-api/internal/dto"
	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/httpresp"
	notificationuc "github.com/bookwell/appointments-api/internal/usecase/notification"
)

type NotificationHandler struct {
	log *zap.Logger

	get      *notificationuc.GetNotification
	list     *notificationuc.ListNotifications
	makeSeen *notificationuc.MakeSeen
	makeRead *notificationuc.MakeRead
	destroy  *notificationuc.DestroyNotification
	acceptIC *notificationuc.AcceptIndividualCustomerInvitation
}

func NewNotificationHandler(
	log *zap.Logger,
	get *notificationuc.GetNotification,
	list *notificationuc.ListNotifications,
	makeSeen *notificationuc.MakeSeen,
	makeRead *notificationuc.MakeRead,
	destroy *notificationuc.DestroyNotification,
	acceptIC *notificationuc.AcceptIndividualCustomerInvitation,
) *NotificationHandler {
	return &NotificationHandler{
		log:      log,
		get:      get,
		list:     list,
		makeSeen: makeSeen,
		makeRead: makeRead,
		destroy:  destroy,
		acceptIC: acceptIC,
	}
}

func (h *NotificationHandler) GetByID(c *gin.Context) {
	actor := actorFrom(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	n, err := h.get.Execute(c.Request.Context(), actor.ID, id)
	if err != nil {
		writeError(c, h.log, "notification get", err)
		return
	}

	httpresp.OK(c, dto.NewNotificationDTO(n))
}

func (h *NotificationHandler) List(c *gin.Context) {
	actor := actorFrom(c)

	ns, err := h.list.Execute(c.Request.Context(), actor.ID)
	if err != nil {
		writeError(c, h.log, "notification list", err)
		return
	}

	httpresp.List(c, dto.NewNotificationListDTO(ns))
}

func (h *NotificationHandler) MakeSeen(c *gin.Context) {
	actor := actorFrom(c)

	seen, err := h.makeSeen.Execute(c.Request.Context(), actor)
	if err != nil {
		writeError(c, h.log, "notification make seen", err)
		return
	}

	h.log.Info("notifications marked seen",
		zap.Uint("user_id", actor.ID),
		zap.Int64("count", seen),
	)

	httpresp.OK(c, gin.H{"seen": seen})
}

func (h *NotificationHandler) MakeRead(c *gin.Context) {
	actor := actorFrom(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	n, err := h.makeRead.Execute(c.Request.Context(), actor.ID, id)
	if err != nil {
		writeError(c, h.log, "notification make read", err)
		return
	}

	httpresp.OK(c, dto.NewNotificationDTO(n))
}

func (h *NotificationHandler) Destroy(c *gin.Context) {
	actor := actorFrom(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.destroy.Execute(c.Request.Context(), actor.ID, id); err != nil {
		writeError(c, h.log, "notification destroy", err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

type DestroyNotificationsRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

func (h *NotificationHandler) DestroyMultiple(c *gin.Context) {
	actor := actorFrom(c)

	var req DestroyNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := h.destroy.ExecuteMany(c.Request.Context(), actor.ID, req.IDs); err != nil {
		writeError(c, h.log, "notification destroy multiple", err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

func (h *NotificationHandler) AcceptIndividualCustomerInvitation(c *gin.Context) {
	actor := actorFrom(c)

	token := c.Param("token")
	if token == "" {
		httperr.BadRequest(c, "invalid_token", "Invitation token is required.")
		return
	}

	if err := h.acceptIC.Execute(c.Request.Context(), actor, token); err != nil {
		writeError(c, h.log, "invitation accept", err)
		return
	}

	h.log.Info("individual customer invitation accepted",
		zap.Uint("user_id", actor.ID),
	)

	httpresp.OK(c, gin.H{"accepted": true})
}
