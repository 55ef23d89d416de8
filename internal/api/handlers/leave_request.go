package handlers

import (
	"net/http"

	"workforce-portal-backend/internal/auth"
	"workforce-portal-backend/internal/database/models"
	"workforce-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaveRequestHandler handles HTTP requests for leave requests
type LeaveRequestHandler struct {
	leaveService service.LeaveRequestServiceInterface
}

// NewLeaveRequestHandler creates a new leave request handler
func NewLeaveRequestHandler(leaveService service.LeaveRequestServiceInterface) *LeaveRequestHandler {
	return &LeaveRequestHandler{leaveService: leaveService}
}

// ListLeaveTypes handles GET /leave/types
// @Summary List the leave-type catalog
// @Tags leave
// @Produce json
// @Success 200 {array} models.LeaveType "Leave types"
// @Security BearerAuth
// @Router /api/leave/types [get]
func (h *LeaveRequestHandler) ListLeaveTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.leaveService.LeaveTypes())
}

// CreateLeaveRequest handles POST /leave
// @Summary Request leave
// @Description Submit a pending leave request for the caller. Past start dates are accepted and flagged retrospective.
// @Tags leave
// @Accept json
// @Produce json
// @Param request body service.CreateLeaveRequest true "Leave request"
// @Success 201 {object} service.LeaveRequestResponse "Created leave request"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /api/leave [post]
func (h *LeaveRequestHandler) CreateLeaveRequest(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req service.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	leave, err := h.leaveService.Create(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, leave)
}

// ReviewLeaveRequest handles POST /leave/:id/review
// @Summary Approve or reject a leave request
// @Description Manager or admin decision on a pending request
// @Tags leave
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Param request body service.ReviewLeaveRequest true "Decision"
// @Success 200 {object} service.LeaveRequestResponse "Reviewed leave request"
// @Failure 403 {object} ErrorResponse "Manager role required"
// @Failure 404 {object} ErrorResponse "Leave request not found"
// @Failure 409 {object} ErrorResponse "Request is no longer pending"
// @Security BearerAuth
// @Router /api/leave/{id}/review [post]
func (h *LeaveRequestHandler) ReviewLeaveRequest(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	role, _ := auth.GetUserRole(c)

	var req service.ReviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	leave, err := h.leaveService.Review(id, callerID, role, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leave)
}

// CancelLeaveRequest handles POST /leave/:id/cancel
// @Summary Cancel a pending leave request
// @Description The owner (or an admin) withdraws a pending request
// @Tags leave
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Success 200 {object} service.LeaveRequestResponse "Cancelled leave request"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Leave request not found"
// @Failure 409 {object} ErrorResponse "Request is no longer pending"
// @Security BearerAuth
// @Router /api/leave/{id}/cancel [post]
func (h *LeaveRequestHandler) CancelLeaveRequest(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	role, _ := auth.GetUserRole(c)

	leave, err := h.leaveService.Cancel(id, callerID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leave)
}

// GetLeaveRequest handles GET /leave/:id
// @Summary Get a leave request
// @Description Visible to the owner, managers and admins
// @Tags leave
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Success 200 {object} service.LeaveRequestResponse "Leave request"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Leave request not found"
// @Security BearerAuth
// @Router /api/leave/{id} [get]
func (h *LeaveRequestHandler) GetLeaveRequest(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	role, _ := auth.GetUserRole(c)

	leave, err := h.leaveService.GetByID(id, callerID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leave)
}

// ListLeaveRequests handles GET /leave
// @Summary List leave requests
// @Description Managers and admins see everyone's requests and may filter by user and status; other callers see only their own.
// @Tags leave
// @Produce json
// @Param user_id query string false "Filter by user (UUID), manager only"
// @Param status query string false "Filter by status (PENDING, APPROVED, REJECTED, CANCELLED)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.LeaveRequestListResponse "Leave requests"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /api/leave [get]
func (h *LeaveRequestHandler) ListLeaveRequests(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	role, _ := auth.GetUserRole(c)

	page, pageSize := pagination(c)
	query := service.LeaveRequestQuery{Page: page, PageSize: pageSize}

	privileged := role == models.RoleAdmin || role == models.RoleManager
	if privileged {
		if userIDStr := c.Query("user_id"); userIDStr != "" {
			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
				return
			}
			query.UserID = &userID
		}
	} else {
		query.UserID = &callerID
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.LeaveRequestStatus(statusStr)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status"})
			return
		}
		query.Status = &status
	}

	requests, err := h.leaveService.List(query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}
