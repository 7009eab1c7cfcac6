package handler

import (
	"fmt"
	"net/http"

	"github.com/astrodash/astro-api/internal/domain/entity"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/domain/usecase/report"
	"github.com/astrodash/astro-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles report generation and history HTTP requests
type ReportHandler struct {
	orchestrator *report.Orchestrator
	historyUC    *report.HistoryUseCase
	logger       coreport.Logger
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(
	orchestrator *report.Orchestrator,
	historyUC *report.HistoryUseCase,
	logger coreport.Logger,
) *ReportHandler {
	return &ReportHandler{
		orchestrator: orchestrator,
		historyUC:    historyUC,
		logger:       logger,
	}
}

// Generate handles the POST /api/reports/generate endpoint. A successful
// run streams the PDF; failures return JSON with the mapped status.
func (h *ReportHandler) Generate(c *gin.Context) {
	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid report generation request", map[string]any{
			"error": err.Error(),
		})
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.orchestrator.Generate(c.Request.Context(), req.UserID, req.ReportType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=report-%d.pdf`, result.History.ID))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

// CreateEntry handles the POST /api/reports endpoint
func (h *ReportHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	entry, err := h.historyUC.CreateEntry(c.Request.Context(), report.CreateEntryInput{
		UserID:     req.UserID,
		ReportType: req.ReportType,
		ReportName: req.ReportName,
		Amount:     req.Amount,
		Status:     req.Status,
		PDFURL:     req.PDFURL,
		Error:      req.Error,
		Metadata:   req.Metadata,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewHistoryEntryResponse(entry))
}

// ListEntries handles the GET /api/reports endpoint
func (h *ReportHandler) ListEntries(c *gin.Context) {
	entries, err := h.historyUC.ListEntries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewHistoryListResponse(entries))
}

// ListProducts handles the GET /api/reports/products endpoint
func (h *ReportHandler) ListProducts(c *gin.Context) {
	catalog := entity.Catalog()
	products := make([]dto.ProductResponse, 0, len(catalog))
	for _, p := range catalog {
		products = append(products, dto.ProductResponse{
			Type:        p.Type,
			Description: p.Description,
			Price:       p.Price(),
		})
	}
	c.JSON(http.StatusOK, products)
}
