package http

import (
	"net/http"

	domain "tender-crm-backend/internal/domain/financial"
	ucFinancial "tender-crm-backend/internal/usecase/financial"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type FinancialHandler struct {
	uc  *ucFinancial.Usecase
	log *zap.Logger
}

func NewFinancialHandler(uc *ucFinancial.Usecase, logger *zap.Logger) *FinancialHandler {
	return &FinancialHandler{uc: uc, log: logger}
}

type createFinancialReq struct {
	TenderID   string  `json:"tenderId"   validate:"required"`
	Type       string  `json:"type"       validate:"required,oneof=EMD PBG SD Other"`
	Amount     float64 `json:"amount"     validate:"required,gt=0,dec2"`
	Notes      string  `json:"notes"`
	ExpiryDate string  `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
}

type instrumentReq struct {
	Mode          string  `json:"mode"          validate:"omitempty,instrumentmode"`
	ProcessedDate string  `json:"processedDate" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate    string  `json:"expiryDate"    validate:"omitempty,datetime=2006-01-02"`
	IssuingBank   string  `json:"issuingBank"`
	DocumentURL   string  `json:"documentUrl"   validate:"omitempty,url"`
	Amount        float64 `json:"amount"        validate:"gte=0"`
}

type updateFinancialReq struct {
	Status     string         `json:"status" validate:"required,finstatus"`
	Reason     string         `json:"reason"`
	Instrument *instrumentReq `json:"instrument"`
}

func (h *FinancialHandler) Create(c echo.Context) error {
	a, ok, err := requireActor(c)
	if !ok {
		return err
	}
	var req createFinancialReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.Create(c.Request().Context(), a, ucFinancial.CreateInput{
		TenderID:   req.TenderID,
		Type:       domain.Type(req.Type),
		Amount:     req.Amount,
		Notes:      req.Notes,
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FinancialHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FinancialHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), domain.Filter{
		TenderID: c.QueryParam("tenderId"),
		Status:   domain.Status(c.QueryParam("status")),
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FinancialHandler) Update(c echo.Context) error {
	a, ok, err := requireActor(c)
	if !ok {
		return err
	}
	var req updateFinancialReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	in := ucFinancial.UpdateInput{Status: domain.Status(req.Status), Reason: req.Reason}
	if req.Instrument != nil {
		in.Instrument = &domain.InstrumentDetails{
			Mode:          req.Instrument.Mode,
			ProcessedDate: req.Instrument.ProcessedDate,
			ExpiryDate:    req.Instrument.ExpiryDate,
			IssuingBank:   req.Instrument.IssuingBank,
			DocumentURL:   req.Instrument.DocumentURL,
			Amount:        req.Instrument.Amount,
		}
	}
	out, err := h.uc.Update(c.Request().Context(), a, c.Param("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
