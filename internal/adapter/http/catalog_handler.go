package http

import (
	"net/http"

	"tender-crm-backend/internal/domain/catalog"
	ucCatalog "tender-crm-backend/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CatalogHandler serves one catalog table. The entity's own struct is the request body.
type CatalogHandler[T any, P catalog.Item[T]] struct {
	svc *ucCatalog.Service[T, P]
	log *zap.Logger
}

func NewCatalogHandler[T any, P catalog.Item[T]](svc *ucCatalog.Service[T, P], logger *zap.Logger) *CatalogHandler[T, P] {
	return &CatalogHandler[T, P]{svc: svc, log: logger}
}

func (h *CatalogHandler[T, P]) Create(c echo.Context) error {
	item := new(T)
	if ok, err := bindValid(c, item); !ok {
		return err
	}
	out, err := h.svc.Create(c.Request().Context(), item)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CatalogHandler[T, P]) Get(c echo.Context) error {
	out, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler[T, P]) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler[T, P]) Update(c echo.Context) error {
	patch := new(T)
	if ok, err := bindValid(c, patch); !ok {
		return err
	}
	out, err := h.svc.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler[T, P]) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler[T, P]) mount(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
