package http

import (
	"net/http"

	domain "tender-crm-backend/internal/domain/user"
	ucUser "tender-crm-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserHandler struct {
	uc  *ucUser.Usecase
	log *zap.Logger
}

func NewUserHandler(uc *ucUser.Usecase, logger *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: logger}
}

type userReq struct {
	Username      string `json:"username"      validate:"required,max=64"`
	FullName      string `json:"fullName"      validate:"required,max=255"`
	Email         string `json:"email"         validate:"required,email"`
	Role          string `json:"role"          validate:"required,oneof=Admin Manager Sales Finance"`
	DepartmentID  string `json:"departmentId"`
	DesignationID string `json:"designationId"`
	Active        *bool  `json:"active"`
}

func (r userReq) input() ucUser.Input {
	return ucUser.Input{
		Username:      r.Username,
		FullName:      r.FullName,
		Email:         r.Email,
		Role:          domain.Role(r.Role),
		DepartmentID:  r.DepartmentID,
		DesignationID: r.DesignationID,
		Active:        r.Active,
	}
}

func (h *UserHandler) Create(c echo.Context) error {
	var req userReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Create(c.Request().Context(), req.input())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *UserHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("departmentId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Update(c echo.Context) error {
	var req userReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
