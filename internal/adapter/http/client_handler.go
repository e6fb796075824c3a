package http

import (
	"net/http"

	domain "tender-crm-backend/internal/domain/client"
	ucClient "tender-crm-backend/internal/usecase/client"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ClientHandler struct {
	uc  *ucClient.Usecase
	log *zap.Logger
}

func NewClientHandler(uc *ucClient.Usecase, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, log: logger}
}

type clientReq struct {
	Name          string `json:"name"          validate:"required,max=255"`
	Industry      string `json:"industry"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"         validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Status        string `json:"status"        validate:"omitempty,oneof=Active Inactive Prospect"`
}

func (r clientReq) input() ucClient.Input {
	return ucClient.Input{
		Name:          r.Name,
		Industry:      r.Industry,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		Status:        domain.Status(r.Status),
	}
}

func (h *ClientHandler) Create(c echo.Context) error {
	a, ok, err := requireActor(c)
	if !ok {
		return err
	}
	var req clientReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Create(c.Request().Context(), a, req.input())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ClientHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), domain.Status(c.QueryParam("status")))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) Update(c echo.Context) error {
	var req clientReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ClientHandler) AppendHistory(c echo.Context) error {
	a, ok, err := requireActor(c)
	if !ok {
		return err
	}
	var req historyReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.AppendHistory(c.Request().Context(), a, c.Param("id"), ucClient.HistoryInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}
