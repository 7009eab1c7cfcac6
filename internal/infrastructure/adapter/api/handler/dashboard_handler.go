package handler

import (
	"net/http"

	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/domain/usecase/dashboard"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin dashboard's aggregate views
type DashboardHandler struct {
	dashboardUseCase *dashboard.UseCase
	logger           coreport.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(dashboardUseCase *dashboard.UseCase, logger coreport.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// Stats handles the GET /api/dashboard/stats endpoint
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUseCase.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
