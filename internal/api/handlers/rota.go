package handlers

import (
	"net/http"
	"strconv"

	"workforce-portal-backend/internal/auth"
	"workforce-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RotaHandler handles HTTP requests for the team rota
type RotaHandler struct {
	rotaService service.RotaServiceInterface
}

// NewRotaHandler creates a new rota handler
func NewRotaHandler(rotaService service.RotaServiceInterface) *RotaHandler {
	return &RotaHandler{rotaService: rotaService}
}

// GenerateRota handles POST /rota/generate
// @Summary Generate the team rota for a year
// @Description Build the 4-on/4-off rota for every day of the year and replace any stored version. Admin or manager only.
// @Tags rota
// @Accept json
// @Produce json
// @Param request body service.GenerateRotaRequest true "Year and optional anchor date"
// @Success 200 {object} service.RotaResponse "Generated rota"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /api/rota/generate [post]
func (h *RotaHandler) GenerateRota(c *gin.Context) {
	var req service.GenerateRotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.Year < 2000 || req.Year > 2100 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "year must be between 2000 and 2100"})
		return
	}

	actorID, _ := auth.GetUserID(c)
	rota, err := h.rotaService.Generate(req, &actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rota)
}

// GetRota handles GET /rota/:year
// @Summary Get the stored rota for a year
// @Tags rota
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} service.RotaResponse "Stored rota"
// @Failure 404 {object} ErrorResponse "Rota not found"
// @Security BearerAuth
// @Router /api/rota/{year} [get]
func (h *RotaHandler) GetRota(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
		return
	}

	rota, err := h.rotaService.GetYear(year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rota)
}

// AssignRota handles POST /rota/:year/assign
// @Summary Materialize per-user shifts from the team rota
// @Description Create one shift per rota day for every active member of the covering teams. Admin or manager only.
// @Tags rota
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} map[string]interface{} "Number of shifts created"
// @Failure 404 {object} ErrorResponse "Rota not found"
// @Security BearerAuth
// @Router /api/rota/{year}/assign [post]
func (h *RotaHandler) AssignRota(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
		return
	}

	actorID, _ := auth.GetUserID(c)
	created, err := h.rotaService.AssignRotaToUsers(year, &actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "shifts_created": created})
}
