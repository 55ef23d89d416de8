package handlers

import (
	"net/http"

	"workforce-portal-backend/internal/auth"
	"workforce-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for in-app notifications
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetMyNotifications handles GET /notifications
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.NotificationListResponse "Notifications with unread count"
// @Security BearerAuth
// @Router /api/notifications [get]
func (h *NotificationHandler) GetMyNotifications(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	page, pageSize := pagination(c)
	notifications, err := h.notificationService.GetForUser(userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead handles POST /notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} map[string]string "Marked read"
// @Failure 403 {object} ErrorResponse "Not the recipient"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	if err := h.notificationService.MarkRead(id, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "marked read"})
}

// MarkAllNotificationsRead handles POST /notifications/read-all
// @Summary Mark all of the caller's notifications as read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]string "Marked read"
// @Security BearerAuth
// @Router /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all notifications marked read"})
}
