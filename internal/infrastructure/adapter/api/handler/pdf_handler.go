package handler

import (
	"net/http"

	"github.com/astrodash/astro-api/internal/domain/port/client"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// PDFHandler handles direct report-data to PDF conversion requests
type PDFHandler struct {
	renderer client.PDFRenderer
	logger   coreport.Logger
}

// NewPDFHandler creates a new pdf handler instance
func NewPDFHandler(renderer client.PDFRenderer, logger coreport.Logger) *PDFHandler {
	return &PDFHandler{
		renderer: renderer,
		logger:   logger,
	}
}

// Render handles the POST /api/pdf endpoint: arbitrary report-data JSON in,
// binary PDF out. The template is selected from the report name nested in
// the data, with a default for unknown names.
func (h *PDFHandler) Render(c *gin.Context) {
	var reportData map[string]any
	if err := c.ShouldBindJSON(&reportData); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	pdf, err := h.renderer.Render(c.Request.Context(), reportData)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=report.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
