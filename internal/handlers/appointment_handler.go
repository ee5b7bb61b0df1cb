package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/dto"
	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/httpresp"
	"github.com/bookwell/appointments-api/internal/models"
	appointmentuc "github.com/bookwell/appointments-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	log *zap.Logger

	create   *appointmentuc.CreateAppointment
	update   *appointmentuc.UpdateAppointment
	accept   *appointmentuc.AcceptAppointment
	cancel   *appointmentuc.CancelAppointment
	finish   *appointmentuc.FinishAppointment
	list     *appointmentuc.ListAppointments
	remove   *appointmentuc.DeleteAppointment
	role     *appointmentuc.GetAppointmentRole
	statuses *appointmentuc.ListStatuses
}

func NewAppointmentHandler(
	log *zap.Logger,
	create *appointmentuc.CreateAppointment,
	update *appointmentuc.UpdateAppointment,
	accept *appointmentuc.AcceptAppointment,
	cancel *appointmentuc.CancelAppointment,
	finish *appointmentuc.FinishAppointment,
	list *appointmentuc.ListAppointments,
	remove *appointmentuc.DeleteAppointment,
	role *appointmentuc.GetAppointmentRole,
	statuses *appointmentuc.ListStatuses,
) *AppointmentHandler {
	return &AppointmentHandler{
		log:      log,
		create:   create,
		update:   update,
		accept:   accept,
		cancel:   cancel,
		finish:   finish,
		list:     list,
		remove:   remove,
		role:     role,
		statuses: statuses,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Title     string `json:"title"`
	CompanyID uint   `json:"company_id" binding:"required"`

	ServiceID                *uint `json:"service_id"`
	StaffID                  *uint `json:"staff_id"`
	CustomerID               *uint `json:"customer_id"`
	IndividualUserIndustryID *uint `json:"individual_user_industry_id"`

	Date      string  `json:"date" binding:"required"`
	StartTime string  `json:"start_time" binding:"required"`
	Duration  int     `json:"duration" binding:"required,min=1"`
	Price     float64 `json:"price"`

	MessagesAllowed  bool   `json:"messages_allowed"`
	NoteFromCreator  string `json:"note_from_creator"`
	NoteFromCustomer string `json:"note_from_customer"`
}

type UpdateAppointmentRequest struct {
	Title     *string  `json:"title"`
	Date      *string  `json:"date"`
	StartTime *string  `json:"start_time"`
	Price     *float64 `json:"price"`
	Duration  *int     `json:"duration"`

	StaffID                  *uint `json:"staff_id"`
	CustomerID               *uint `json:"customer_id"`
	IndividualUserIndustryID *uint `json:"individual_user_industry_id"`
	ServiceID                *uint `json:"service_id"`

	MessagesAllowed  *bool   `json:"messages_allowed"`
	NoteFromCustomer *string `json:"note_from_customer"`
	NoteFromCreator  *string `json:"note_from_creator"`
}

// ======================================================
// INDEX
// ======================================================

func (h *AppointmentHandler) Index(c *gin.Context) {
	actor := actorFrom(c)

	f := domain.Filter{
		Statuses:   queryIDs(c, "statuses[]"),
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
		Industries: queryIDs(c, "industries[]"),
		RoleIDs:    queryIDs(c, "role_ids[]"),
	}

	appointments, err := h.list.Execute(c.Request.Context(), actor, f)
	if err != nil {
		writeError(c, h.log, "appointment list", err)
		return
	}

	httpresp.List(c, dto.NewAppointmentListDTO(appointments, actor.ID, actor.ActiveRoleID))
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := actorFrom(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	h.log.Info("creating appointment",
		zap.Uint("user_id", actor.ID),
		zap.Uint("company_id", req.CompanyID),
		zap.String("date", req.Date),
		zap.String("start_time", req.StartTime),
	)

	created, err := h.create.Execute(c.Request.Context(), actor, appointmentuc.CreateAppointmentInput{
		Title:     req.Title,
		CompanyID: req.CompanyID,

		ServiceID:                req.ServiceID,
		StaffID:                  req.StaffID,
		CustomerID:               req.CustomerID,
		IndividualUserIndustryID: req.IndividualUserIndustryID,

		Date:      req.Date,
		StartTime: req.StartTime,
		Duration:  req.Duration,
		Price:     req.Price,

		MessagesAllowed:  req.MessagesAllowed,
		NoteFromCreator:  req.NoteFromCreator,
		NoteFromCustomer: req.NoteFromCustomer,
	})
	if err != nil {
		writeError(c, h.log, "appointment create", err)
		return
	}

	h.log.Info("appointment created",
		zap.Uint("appointment_id", created.ID),
		zap.Uint("user_id", actor.ID),
	)

	httpresp.Created(c, dto.NewAppointmentDTO(created, actor.ID, actor.ActiveRoleID))
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	actor := actorFrom(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), actor, id, domain.UpdateInput{
		Title:     req.Title,
		Date:      req.Date,
		StartTime: req.StartTime,
		Price:     req.Price,
		Duration:  req.Duration,

		StaffID:                  req.StaffID,
		CustomerID:               req.CustomerID,
		IndividualUserIndustryID: req.IndividualUserIndustryID,
		ServiceID:                req.ServiceID,

		MessagesAllowed:  req.MessagesAllowed,
		NoteFromCustomer: req.NoteFromCustomer,
		NoteFromCreator:  req.NoteFromCreator,
	})
	if err != nil {
		writeError(c, h.log, "appointment update", err)
		return
	}

	h.log.Info("appointment updated",
		zap.Uint("appointment_id", updated.ID),
		zap.Uint("user_id", actor.ID),
	)

	httpresp.OK(c, dto.NewAppointmentDTO(updated, actor.ID, actor.ActiveRoleID))
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Accept(c *gin.Context) {
	h.transition(c, "appointment accept", h.accept.Execute)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, "appointment cancel", h.cancel.Execute)
}

func (h *AppointmentHandler) Finish(c *gin.Context) {
	h.transition(c, "appointment finish", h.finish.Execute)
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	op string,
	exec func(ctx context.Context, actor *models.User, id uint) (*models.Appointment, error),
) {
	actor := actorFrom(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := exec(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, h.log, op, err)
		return
	}

	h.log.Info(op,
		zap.Uint("appointment_id", ap.ID),
		zap.Uint("user_id", actor.ID),
		zap.String("status", ap.Status.Name),
	)

	httpresp.OK(c, dto.NewAppointmentDTO(ap, actor.ID, actor.ActiveRoleID))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	actor := actorFrom(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actor, id); err != nil {
		writeError(c, h.log, "appointment delete", err)
		return
	}

	h.log.Info("appointment hidden for role",
		zap.Uint("appointment_id", id),
		zap.Uint("user_id", actor.ID),
	)

	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// ROLE
// ======================================================

func (h *AppointmentHandler) GetRole(c *gin.Context) {
	actor := actorFrom(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	role, err := h.role.Execute(c.Request.Context(), actor.ID, id)
	if err != nil {
		writeError(c, h.log, "appointment role", err)
		return
	}

	httpresp.OK(c, gin.H{"role": role})
}

// ======================================================
// STATUSES
// ======================================================

func (h *AppointmentHandler) Statuses(c *gin.Context) {
	statuses, err := h.statuses.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, "appointment statuses", err)
		return
	}

	httpresp.List(c, statuses)
}

// ======================================================
// HELPERS
// ======================================================

func queryIDs(c *gin.Context, key string) []uint {
	raw := c.QueryArray(key)
	if len(raw) == 0 {
		if v := c.Query(key[:len(key)-2]); v != "" {
			raw = []string{v}
		}
	}

	var out []uint
	for _, s := range raw {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, uint(id))
	}
	return out
}
