package service

import (
	"fmt"
	"time"

	"workforce-portal-backend/internal/database/models"
	"workforce-portal-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuditService records and lists the business audit trail. Log is
// best-effort like notification delivery: a failed append is logged and never
// fails the operation being audited.
type AuditService struct {
	repo repository.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditLogRepositoryInterface) *AuditService {
	return &AuditService{repo: repo}
}

// AuditLogEntryResponse represents one audit entry returned to the client
type AuditLogEntryResponse struct {
	ID             uuid.UUID  `json:"id"`
	Timestamp      string     `json:"timestamp"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	ActionType     string     `json:"action_type"`
	Details        string     `json:"details"`
	TargetEntityID *uuid.UUID `json:"target_entity_id,omitempty"`
}

// AuditLogListResponse represents a paginated audit listing
type AuditLogListResponse struct {
	Entries  []AuditLogEntryResponse `json:"entries"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// Log appends an audit entry. A nil userID marks a system action.
func (s *AuditService) Log(userID *uuid.UUID, actionType, details string, targetEntityID *uuid.UUID) {
	entry := &models.AuditLogEntry{
		UserID:         userID,
		ActionType:     actionType,
		Details:        details,
		TargetEntityID: targetEntityID,
	}

	if err := s.repo.Create(entry); err != nil {
		logrus.WithField("action_type", actionType).Warnf("failed to append audit entry: %v", err)
	}
}

// AuditLogQuery narrows a listing of audit entries
type AuditLogQuery struct {
	UserID     *uuid.UUID
	ActionType string
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

// List retrieves audit entries matching the query, newest first
func (s *AuditService) List(q AuditLogQuery) (*AuditLogListResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 50
	}

	filter := repository.AuditLogFilter{
		UserID:     q.UserID,
		ActionType: q.ActionType,
		From:       q.From,
		To:         q.To,
	}

	offset := (q.Page - 1) * q.PageSize
	entries, total, err := s.repo.GetAll(filter, q.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	responses := make([]AuditLogEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = AuditLogEntryResponse{
			ID:             e.ID,
			Timestamp:      e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			UserID:         e.UserID,
			ActionType:     e.ActionType,
			Details:        e.Details,
			TargetEntityID: e.TargetEntityID,
		}
	}

	return &AuditLogListResponse{
		Entries:  responses,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}
