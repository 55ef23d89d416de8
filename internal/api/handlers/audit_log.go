package handlers

import (
	"net/http"
	"time"

	"workforce-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLogHandler handles HTTP requests for the audit trail
type AuditLogHandler struct {
	auditService service.AuditServiceInterface
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(auditService service.AuditServiceInterface) *AuditLogHandler {
	return &AuditLogHandler{auditService: auditService}
}

// ListAuditLog handles GET /audit
// @Summary List audit entries
// @Description Filterable audit trail, newest first. Admin only.
// @Tags audit
// @Produce json
// @Param user_id query string false "Filter by acting user (UUID)"
// @Param action_type query string false "Filter by action type substring"
// @Param from query string false "Entries at or after this date (YYYY-MM-DD)"
// @Param to query string false "Entries at or before this date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} service.AuditLogListResponse "Audit entries"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /api/audit [get]
func (h *AuditLogHandler) ListAuditLog(c *gin.Context) {
	page, pageSize := pagination(c)
	query := service.AuditLogQuery{
		ActionType: c.Query("action_type"),
		Page:       page,
		PageSize:   pageSize,
	}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
			return
		}
		query.UserID = &userID
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from date"})
			return
		}
		query.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to date"})
			return
		}
		// Include the whole end day
		end := to.Add(24*time.Hour - time.Nanosecond)
		query.To = &end
	}

	entries, err := h.auditService.List(query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
