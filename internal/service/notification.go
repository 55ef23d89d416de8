package service

import (
	"errors"
	"fmt"

	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NotificationService handles in-app notification delivery and reading.
// Send is best-effort: delivery failures are logged and never propagated, so
// a failed notification cannot roll back the business operation that
// triggered it.
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotificationResponse represents a notification returned to the client
type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	UserID    uuid.UUID               `json:"user_id"`
	Message   string                  `json:"message"`
	Link      string                  `json:"link,omitempty"`
	Type      models.NotificationType `json:"type"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt string                  `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Unread        int64                  `json:"unread"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Send delivers a notification to a user. Failures are logged, not returned.
func (s *NotificationService) Send(userID uuid.UUID, message, link string, notifType models.NotificationType) {
	if !notifType.IsValid() {
		notifType = models.NotificationInfo
	}

	notification := &models.Notification{
		UserID:  userID,
		Message: message,
		Link:    link,
		Type:    notifType,
	}

	if err := s.repo.Create(notification); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"message": message,
		}).Warnf("failed to deliver notification: %v", err)
	}
}

// GetForUser retrieves a user's notifications with the unread count
func (s *NotificationService) GetForUser(userID uuid.UUID, page, pageSize int) (*NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	notifications, total, err := s.repo.GetByUserID(userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	unread, err := s.repo.CountUnread(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = NotificationResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Message:   n.Message,
			Link:      n.Link,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return &NotificationListResponse{
		Notifications: responses,
		Unread:        unread,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// MarkRead marks a notification as read; the caller must be its recipient
func (s *NotificationService) MarkRead(id, callerID uuid.UUID) error {
	notification, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.UserID != callerID {
		return apperrors.ErrNotOwner
	}

	if err := s.repo.MarkRead(id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks every notification of the caller as read
func (s *NotificationService) MarkAllRead(callerID uuid.UUID) error {
	if err := s.repo.MarkAllRead(callerID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
