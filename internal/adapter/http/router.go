package http

import (
	"tender-crm-backend/internal/domain/catalog"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health       *Handler
	Financial    *FinancialHandler
	Tender       *TenderHandler
	Client       *ClientHandler
	User         *UserHandler
	OEMs         *CatalogHandler[catalog.OEM, *catalog.OEM]
	Products     *CatalogHandler[catalog.Product, *catalog.Product]
	Departments  *CatalogHandler[catalog.Department, *catalog.Department]
	Designations *CatalogHandler[catalog.Designation, *catalog.Designation]
	BidTemplates *CatalogHandler[catalog.BidTemplate, *catalog.BidTemplate]
}

// Register mounts every route. mw applies to the API routes, not to /health.
func Register(e *echo.Echo, h Handlers, mw ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	api := e.Group("", mw...)

	fr := api.Group("/financial-requests")
	fr.POST("", h.Financial.Create)
	fr.GET("", h.Financial.List)
	fr.GET("/:id", h.Financial.Get)
	fr.PUT("/:id", h.Financial.Update)

	t := api.Group("/tenders")
	t.POST("", h.Tender.Create)
	t.GET("", h.Tender.List)
	t.GET("/:id", h.Tender.Get)
	t.PUT("/:id", h.Tender.Update)
	t.DELETE("/:id", h.Tender.Delete)
	t.POST("/:id/assign", h.Tender.Assign)
	t.PUT("/:id/assignment-response", h.Tender.RespondToAssignment)
	t.PUT("/:id/post-award/:stage", h.Tender.UpdatePostAwardStage)
	t.POST("/:id/history", h.Tender.AppendHistory)

	cl := api.Group("/clients")
	cl.POST("", h.Client.Create)
	cl.GET("", h.Client.List)
	cl.GET("/:id", h.Client.Get)
	cl.PUT("/:id", h.Client.Update)
	cl.DELETE("/:id", h.Client.Delete)
	cl.POST("/:id/history", h.Client.AppendHistory)

	u := api.Group("/users")
	u.POST("", h.User.Create)
	u.GET("", h.User.List)
	u.GET("/:id", h.User.Get)
	u.PUT("/:id", h.User.Update)
	u.DELETE("/:id", h.User.Delete)

	h.OEMs.mount(api.Group("/oems"))
	h.Products.mount(api.Group("/products"))
	admin := api.Group("/admin")
	h.Departments.mount(admin.Group("/departments"))
	h.Designations.mount(admin.Group("/designations"))
	h.BidTemplates.mount(admin.Group("/bid-templates"))
}
