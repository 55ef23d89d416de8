package handlers

import (
	"net/http"

	"workforce-portal-backend/internal/auth"
	"workforce-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftSwapHandler handles HTTP requests for shift swap coordination
type ShiftSwapHandler struct {
	swapService service.ShiftSwapServiceInterface
}

// NewShiftSwapHandler creates a new shift swap handler
func NewShiftSwapHandler(swapService service.ShiftSwapServiceInterface) *ShiftSwapHandler {
	return &ShiftSwapHandler{swapService: swapService}
}

// ProposeSwap handles POST /swaps
// @Summary Propose a shift swap
// @Description Create a pending swap request offering the caller's shift for another user's shift
// @Tags swaps
// @Accept json
// @Produce json
// @Param request body service.ProposeSwapRequest true "Swap proposal"
// @Success 201 {object} service.SwapRequestResponse "Created swap request"
// @Failure 400 {object} ErrorResponse "Invalid proposal"
// @Failure 409 {object} ErrorResponse "Shift already has a pending swap"
// @Security BearerAuth
// @Router /api/swaps [post]
func (h *ShiftSwapHandler) ProposeSwap(c *gin.Context) {
	requesterID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req service.ProposeSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	swap, err := h.swapService.Propose(requesterID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, swap)
}

// RespondToSwap handles POST /swaps/:id/respond
// @Summary Accept or reject a swap request
// @Description The designated responder accepts (exchanging shift owners atomically) or rejects a pending request
// @Tags swaps
// @Accept json
// @Produce json
// @Param id path string true "Swap request ID (UUID)"
// @Param request body service.RespondSwapRequest true "Decision"
// @Success 200 {object} service.SwapRequestResponse "Resolved swap request"
// @Failure 403 {object} ErrorResponse "Caller is not the responder"
// @Failure 404 {object} ErrorResponse "Swap request not found"
// @Failure 409 {object} ErrorResponse "Request is no longer pending"
// @Security BearerAuth
// @Router /api/swaps/{id}/respond [post]
func (h *ShiftSwapHandler) RespondToSwap(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req service.RespondSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	swap, err := h.swapService.Respond(id, callerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, swap)
}

// CancelSwap handles POST /swaps/:id/cancel
// @Summary Cancel a pending swap request
// @Description The requester (or an admin) withdraws a pending request
// @Tags swaps
// @Produce json
// @Param id path string true "Swap request ID (UUID)"
// @Success 200 {object} service.SwapRequestResponse "Cancelled swap request"
// @Failure 403 {object} ErrorResponse "Caller is not the requester"
// @Failure 404 {object} ErrorResponse "Swap request not found"
// @Failure 409 {object} ErrorResponse "Request is no longer pending"
// @Security BearerAuth
// @Router /api/swaps/{id}/cancel [post]
func (h *ShiftSwapHandler) CancelSwap(c *gin.Context) {
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

	swap, err := h.swapService.Cancel(id, callerID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, swap)
}

// GetSwap handles GET /swaps/:id
// @Summary Get a swap request
// @Description Visible to the participants, managers and admins
// @Tags swaps
// @Produce json
// @Param id path string true "Swap request ID (UUID)"
// @Success 200 {object} service.SwapRequestResponse "Swap request"
// @Failure 403 {object} ErrorResponse "Not a participant"
// @Failure 404 {object} ErrorResponse "Swap request not found"
// @Security BearerAuth
// @Router /api/swaps/{id} [get]
func (h *ShiftSwapHandler) GetSwap(c *gin.Context) {
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

	swap, err := h.swapService.GetByID(id, callerID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, swap)
}

// GetMySwaps handles GET /swaps
// @Summary List the caller's swap requests
// @Description Requests where the caller is requester or responder, newest first
// @Tags swaps
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.SwapRequestListResponse "Swap requests"
// @Security BearerAuth
// @Router /api/swaps [get]
func (h *ShiftSwapHandler) GetMySwaps(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	page, pageSize := pagination(c)
	swaps, err := h.swapService.GetForUser(callerID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, swaps)
}
