package handlers

import (
	"net/http"

	"workforce-portal-backend/internal/auth"
	"workforce-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftHandler handles HTTP requests for schedule views
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// GetShift handles GET /shifts/:id
// @Summary Get a shift by ID
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Successfully retrieved shift"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /api/shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	shift, err := h.shiftService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// GetMyShifts handles GET /shifts/me
// @Summary Get the caller's shifts
// @Tags shifts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} service.ShiftListResponse "Successfully retrieved shifts"
// @Security BearerAuth
// @Router /api/shifts/me [get]
func (h *ShiftHandler) GetMyShifts(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	page, pageSize := pagination(c)
	shifts, err := h.shiftService.GetForUser(userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// GetSchedule handles GET /shifts
// @Summary Get the schedule for a date range
// @Description Every shift between from and to, with approved leave overlaid
// @Tags shifts
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} service.ShiftResponse "Successfully retrieved schedule"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Security BearerAuth
// @Router /api/shifts [get]
func (h *ShiftHandler) GetSchedule(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from and to query parameters are required"})
		return
	}

	shifts, err := h.shiftService.GetSchedule(from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}
