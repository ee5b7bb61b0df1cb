package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bookwell/appointments-api/internal/httperr"
	"github.com/bookwell/appointments-api/internal/middleware"
	"github.com/bookwell/appointments-api/internal/models"
)

// actorFrom rebuilds the acting user from the verified token claims. Only
// the identity and active role travel in the token; nothing else is needed
// downstream.
func actorFrom(c *gin.Context) *models.User {
	return &models.User{
		ID:           c.MustGet(middleware.ContextUserID).(uint),
		ActiveRoleID: c.MustGet(middleware.ContextActiveRoleID).(uint),
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return 0, false
	}
	return uint(id), true
}

// writeError maps domain failures onto HTTP: field-tagged validation errors
// become 422 keyed by field, business rule violations (missing records
// included) become 400, anything else is logged and hidden behind a 500.
func writeError(c *gin.Context, log *zap.Logger, op string, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Unprocessable(c, ve)
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.BadRequest(c, be.Code, be.Code)
		return
	}

	log.Error(op+" failed", zap.Error(err))
	httperr.Internal(c, "internal_error", "Unexpected error.")
}
