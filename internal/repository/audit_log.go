package repository

import (
	"time"

	"workforce-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogFilter narrows an audit log listing
type AuditLogFilter struct {
	UserID     *uuid.UUID
	ActionType string // substring match, case-insensitive
	From       *time.Time
	To         *time.Time
}

// AuditLogRepository handles database operations for the audit trail
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create appends an audit log entry
func (r *AuditLogRepository) Create(entry *models.AuditLogEntry) error {
	return r.db.Create(entry).Error
}

// GetAll retrieves audit entries matching the filter, newest first
func (r *AuditLogRepository) GetAll(filter AuditLogFilter, limit, offset int) ([]models.AuditLogEntry, int64, error) {
	var entries []models.AuditLogEntry
	var total int64

	query := r.db.Model(&models.AuditLogEntry{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ActionType != "" {
		query = query.Where("action_type ILIKE ?", "%"+filter.ActionType+"%")
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}
