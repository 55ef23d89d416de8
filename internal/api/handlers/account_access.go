package handlers

import (
	"net/http"

	"workforce-portal-backend/internal/auth"
	"workforce-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountAccessHandler handles HTTP requests for account access tracking
type AccountAccessHandler struct {
	accessService service.AccountAccessServiceInterface
}

// NewAccountAccessHandler creates a new account access handler
func NewAccountAccessHandler(accessService service.AccountAccessServiceInterface) *AccountAccessHandler {
	return &AccountAccessHandler{accessService: accessService}
}

// SetMyAccess handles PUT /access/me
// @Summary Record the caller's account state on an environment
// @Description Upserts the (caller, environment) access record with the given status
// @Tags access
// @Accept json
// @Produce json
// @Param request body service.SetAccessRequest true "Environment and status"
// @Success 200 {object} service.AccountAccessResponse "Recorded access state"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Environment not found"
// @Security BearerAuth
// @Router /api/access/me [put]
func (h *AccountAccessHandler) SetMyAccess(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req service.SetAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	access, err := h.accessService.Set(userID, req, &userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, access)
}

// SetUserAccess handles PUT /access/users/:id
// @Summary Record another user's account state on an environment
// @Description Admin or manager records an access state on behalf of a user
// @Tags access
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param request body service.SetAccessRequest true "Environment and status"
// @Success 200 {object} service.AccountAccessResponse "Recorded access state"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "User or environment not found"
// @Security BearerAuth
// @Router /api/access/users/{id} [put]
func (h *AccountAccessHandler) SetUserAccess(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	actorID, _ := auth.GetUserID(c)

	var req service.SetAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	access, err := h.accessService.Set(userID, req, &actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, access)
}

// GetMyAccess handles GET /access/me
// @Summary List the caller's account access records
// @Tags access
// @Produce json
// @Success 200 {array} service.AccountAccessResponse "Access records"
// @Security BearerAuth
// @Router /api/access/me [get]
func (h *AccountAccessHandler) GetMyAccess(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	records, err := h.accessService.GetForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetUserAccess handles GET /access/users/:id
// @Summary List a user's account access records
// @Tags access
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {array} service.AccountAccessResponse "Access records"
// @Security BearerAuth
// @Router /api/access/users/{id} [get]
func (h *AccountAccessHandler) GetUserAccess(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	records, err := h.accessService.GetForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
