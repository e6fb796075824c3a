package http

import (
	"net/http"

	domain "tender-crm-backend/internal/domain/tender"
	ucTender "tender-crm-backend/internal/usecase/tender"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TenderHandler struct {
	uc  *ucTender.Usecase
	log *zap.Logger
}

func NewTenderHandler(uc *ucTender.Usecase, logger *zap.Logger) *TenderHandler {
	return &TenderHandler{uc: uc, log: logger}
}

type tenderReq struct {
	ReferenceNo string  `json:"referenceNo" validate:"required,max=128"`
	Title       string  `json:"title"       validate:"required,max=255"`
	ClientID    string  `json:"clientId"`
	Status      string  `json:"status"      validate:"omitempty,tenderstatus"`
	Value       float64 `json:"value"       validate:"gte=0,dec2"`
	DueDate     string  `json:"dueDate"     validate:"omitempty,datetime=2006-01-02"`
}

type assignReq struct {
	UserIDs []string `json:"userIds" validate:"required,min=1,dive,required"`
}

type assignmentResponseReq struct {
	Response string `json:"response" validate:"required,oneof=Accepted Declined"`
	Comment  string `json:"comment"`
}

type stageReq struct {
	Status        string `json:"status"        validate:"required"`
	Notes         string `json:"notes"`
	CompletedDate string `json:"completedDate" validate:"omitempty,datetime=2006-01-02"`
}

type historyReq struct {
	Action  string `json:"action"  validate:"required"`
	Details string `json:"details"`
}

func (h *TenderHandler) Create(c echo.Context) error {
	a, ok, err := requireActor(c)
	if !ok {
		return err
	}
	var req tenderReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Create(c.Request().Context(), a, ucTender.CreateInput{
		ReferenceNo: req.ReferenceNo,
		Title:       req.Title,
		ClientID:    req.ClientID,
		Status:      domain.Status(req.Status),
		Value:       req.Value,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *TenderHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TenderHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), domain.Filter{
		Status:   domain.Status(c.QueryParam("status")),
		ClientID: c.QueryParam("clientId"),
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TenderHandler) Update(c echo.Context) error {
	a, ok, err := requireActor(c)
	if !ok {
		return err
	}
	var req tenderReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Update(c.Request().Context(), a, c.Param("id"), ucTender.UpdateInput{
		ReferenceNo: req.ReferenceNo,
		Title:       req.Title,
		ClientID:    req.ClientID,
		Status:      domain.Status(req.Status),
		Value:       req.Value,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TenderHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TenderHandler) Assign(c echo.Context) error {
	a, ok, err := requireActor(c)
	if !ok {
		return err
	}
	var req assignReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.AssignUsers(c.Request().Context(), a, c.Param("id"), req.UserIDs)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TenderHandler) RespondToAssignment(c echo.Context) error {
	a, ok, err := requireActor(c)
	if !ok {
		return err
	}
	var req assignmentResponseReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.RespondToAssignment(c.Request().Context(), a, c.Param("id"), ucTender.RespondInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TenderHandler) UpdatePostAwardStage(c echo.Context) error {
	a, ok, err := requireActor(c)
	if !ok {
		return err
	}
	var req stageReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.UpdatePostAwardStage(c.Request().Context(), a, c.Param("id"), c.Param("stage"), ucTender.StageInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TenderHandler) AppendHistory(c echo.Context) error {
	a, ok, err := requireActor(c)
	if !ok {
		return err
	}
	var req historyReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.AppendHistory(c.Request().Context(), a, c.Param("id"), ucTender.HistoryInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}
