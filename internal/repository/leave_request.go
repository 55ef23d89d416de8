package repository

import (
	"time"

	"workforce-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveRequestRepository handles database operations for leave requests
type LeaveRequestRepository struct {
	db *gorm.DB
}

// NewLeaveRequestRepository creates a new leave request repository
func NewLeaveRequestRepository(db *gorm.DB) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: db}
}

// Create creates a new leave request
func (r *LeaveRequestRepository) Create(req *models.LeaveRequest) error {
	return r.db.Create(req).Error
}

// GetByID retrieves a leave request by ID
func (r *LeaveRequestRepository) GetByID(id uuid.UUID) (*models.LeaveRequest, error) {
	var req models.LeaveRequest
	err := r.db.First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetAll retrieves leave requests with optional user and status filters,
// newest first
func (r *LeaveRequestRepository) GetAll(userID *uuid.UUID, status *models.LeaveRequestStatus, limit, offset int) ([]models.LeaveRequest, int64, error) {
	var reqs []models.LeaveRequest
	var total int64

	query := r.db.Model(&models.LeaveRequest{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reqs).Error
	return reqs, total, err
}

// GetApprovedInRange retrieves approved requests overlapping [from, to]
func (r *LeaveRequestRepository) GetApprovedInRange(from, to time.Time) ([]models.LeaveRequest, error) {
	var reqs []models.LeaveRequest
	err := r.db.Where("status = ? AND start_date <= ? AND end_date >= ?", models.LeaveStatusApproved, to, from).
		Order("start_date ASC").Find(&reqs).Error
	return reqs, err
}

// GetApprovedForUserOnDate reports whether the user has approved leave covering the date
func (r *LeaveRequestRepository) GetApprovedForUserOnDate(userID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.LeaveRequest{}).
		Where("user_id = ? AND status = ? AND start_date <= ? AND end_date >= ?", userID, models.LeaveStatusApproved, date, date).
		Count(&count).Error
	return count > 0, err
}

// Update updates a leave request
func (r *LeaveRequestRepository) Update(req *models.LeaveRequest) error {
	return r.db.Save(req).Error
}

// Delete deletes a leave request
func (r *LeaveRequestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.LeaveRequest{}, "id = ?", id).Error
}
