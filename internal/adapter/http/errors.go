package http

import (
	"errors"
	"net/http"

	"tender-crm-backend/internal/adapter/middleware"
	"tender-crm-backend/internal/domain/actor"
	"tender-crm-backend/internal/domain/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respondError maps domain errors → HTTP codes. Anything unrecognised is a 500 and logged.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	var ve *errs.ValidationError
	switch {
	case errors.As(err, &ve):
		details := make([]FieldError, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			details = append(details, FieldError{Field: f.Field, Message: f.Message})
		}
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: details})
	case errors.Is(err, errs.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	log.Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// bindValid binds the body into req and runs the validator. On failure the error
// response is already written and ok is false.
func bindValid(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

// requireActor returns the calling actor; ok is false after a 401 has been written.
func requireActor(c echo.Context) (actor.Actor, bool, error) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		return actor.Actor{}, false, c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing " + middleware.HeaderUserID})
	}
	return a, true, nil
}
