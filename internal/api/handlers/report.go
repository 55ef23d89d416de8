package handlers

import (
	"net/http"
	"strconv"

	"workforce-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for reports
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// LeaveSummary handles GET /reports/leave/:year
// @Summary Approved leave summary for a year
// @Description Per-user approved leave days aggregated by type. Manager or admin only.
// @Tags reports
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} service.LeaveSummaryReport "Leave summary"
// @Failure 400 {object} ErrorResponse "Invalid year"
// @Security BearerAuth
// @Router /api/reports/leave/{year} [get]
func (h *ReportHandler) LeaveSummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
		return
	}

	report, err := h.reportService.LeaveSummary(year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Availability handles GET /reports/availability
// @Summary Team availability over a date range
// @Description Per-day covering teams with headcounts net of approved leave
// @Tags reports
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} service.AvailabilityReport "Availability report"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Security BearerAuth
// @Router /api/reports/availability [get]
func (h *ReportHandler) Availability(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from and to query parameters are required"})
		return
	}

	report, err := h.reportService.Availability(from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
