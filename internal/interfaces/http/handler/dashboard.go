package handler

import (
	dashboardapp "github.com/fridgetofork/pantry-admin/internal/application/dashboard"
	"github.com/fridgetofork/pantry-admin/internal/application/enums"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the landing page summary and the label catalog
type DashboardHandler struct {
	BaseHandler
	dashboardService *dashboardapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *dashboardapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Get godoc
// @ID           getDashboard
// @Summary      Totals, expiry watch lists and ingredients per category
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse[dashboardapp.Response]
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	resp, err := h.dashboardService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Enums godoc
// @ID           listEnums
// @Summary      Value and display label of every enumeration
// @Tags         enums
// @Produce      json
// @Success      200 {object} APIResponse[enums.Catalog]
// @Router       /enums [get]
func (h *DashboardHandler) Enums(c *gin.Context) {
	h.Success(c, enums.All())
}
