package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/caterops/catering_backend/internal/core/ports/services"
	"github.com/caterops/catering_backend/internal/dto"
	"github.com/caterops/catering_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for portfolio-level reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to portfolio reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.portfolioSummary)
		reports.GET("/variance", h.varianceReport)
	}
}

// portfolioSummary godoc
// @Summary Get the portfolio summary
// @Description Aggregates counts, pax, revenue and realized margin across all events
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.PortfolioSummaryResponse
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /reports/summary [get]
func (h *reportingHandler) portfolioSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for portfolio summary")

	summary, err := h.reportingService.PortfolioSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build portfolio summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPortfolioSummaryResponse(*summary))
}

// varianceReport godoc
// @Summary Get the planned versus realized variance report
// @Description Lists planned profit, real profit and variance for every event; real figures only for closed events
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.EventVarianceRowResponse
// @Failure 500 {object} map[string]string "Failed to build variance report"
// @Router /reports/variance [get]
func (h *reportingHandler) varianceReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for variance report")

	rows, err := h.reportingService.VarianceReport(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build variance report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build variance report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVarianceRowsResponse(rows))
}
