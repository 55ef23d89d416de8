package handlers

import (
	"net/http"

	"workforce-portal-backend/internal/auth"
	"workforce-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EnvironmentHandler handles HTTP requests for customer environments
type EnvironmentHandler struct {
	envService    service.EnvironmentServiceInterface
	accessService service.AccountAccessServiceInterface
}

// NewEnvironmentHandler creates a new environment handler
func NewEnvironmentHandler(envService service.EnvironmentServiceInterface, accessService service.AccountAccessServiceInterface) *EnvironmentHandler {
	return &EnvironmentHandler{envService: envService, accessService: accessService}
}

// CreateEnvironment handles POST /environments
// @Summary Create an environment
// @Tags environments
// @Accept json
// @Produce json
// @Param environment body service.CreateEnvironmentRequest true "Environment data"
// @Success 201 {object} service.EnvironmentResponse "Created environment"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /api/environments [post]
func (h *EnvironmentHandler) CreateEnvironment(c *gin.Context) {
	var req service.CreateEnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	actorID, _ := auth.GetUserID(c)
	env, err := h.envService.Create(req, &actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, env)
}

// ListEnvironments handles GET /environments
// @Summary List environments
// @Tags environments
// @Produce json
// @Param customer_id query string false "Filter by customer (UUID)"
// @Success 200 {array} service.EnvironmentResponse "Environments"
// @Failure 400 {object} ErrorResponse "Invalid customer_id"
// @Security BearerAuth
// @Router /api/environments [get]
func (h *EnvironmentHandler) ListEnvironments(c *gin.Context) {
	var customerID *uuid.UUID
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		id, err := uuid.Parse(customerIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
			return
		}
		customerID = &id
	}

	envs, err := h.envService.List(customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, envs)
}

// GetEnvironment handles GET /environments/:id
// @Summary Get an environment
// @Tags environments
// @Produce json
// @Param id path string true "Environment ID (UUID)"
// @Success 200 {object} service.EnvironmentResponse "Environment"
// @Failure 404 {object} ErrorResponse "Environment not found"
// @Security BearerAuth
// @Router /api/environments/{id} [get]
func (h *EnvironmentHandler) GetEnvironment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	env, err := h.envService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, env)
}

// UpdateEnvironment handles PUT /environments/:id
// @Summary Update an environment
// @Tags environments
// @Accept json
// @Produce json
// @Param id path string true "Environment ID (UUID)"
// @Param environment body service.UpdateEnvironmentRequest true "Fields to update"
// @Success 200 {object} service.EnvironmentResponse "Updated environment"
// @Failure 404 {object} ErrorResponse "Environment not found"
// @Security BearerAuth
// @Router /api/environments/{id} [put]
func (h *EnvironmentHandler) UpdateEnvironment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateEnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	actorID, _ := auth.GetUserID(c)
	env, err := h.envService.Update(id, req, &actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, env)
}

// DeleteEnvironment handles DELETE /environments/:id
// @Summary Delete an environment
// @Tags environments
// @Produce json
// @Param id path string true "Environment ID (UUID)"
// @Success 200 {object} map[string]string "Environment deleted"
// @Failure 404 {object} ErrorResponse "Environment not found"
// @Security BearerAuth
// @Router /api/environments/{id} [delete]
func (h *EnvironmentHandler) DeleteEnvironment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	actorID, _ := auth.GetUserID(c)
	if err := h.envService.Delete(id, &actorID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "environment deleted"})
}

// GetEnvironmentAccess handles GET /environments/:id/access
// @Summary List account access records on an environment
// @Tags environments
// @Produce json
// @Param id path string true "Environment ID (UUID)"
// @Success 200 {array} service.AccountAccessResponse "Access records"
// @Failure 404 {object} ErrorResponse "Environment not found"
// @Security BearerAuth
// @Router /api/environments/{id}/access [get]
func (h *EnvironmentHandler) GetEnvironmentAccess(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	records, err := h.accessService.GetForEnvironment(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
