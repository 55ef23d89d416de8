package repository

import (
	"time"

	"workforce-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// CreateBatch inserts a set of shifts in one statement
func (r *ShiftRepository) CreateBatch(shifts []models.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	return r.db.CreateInBatches(shifts, 200).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByUserID retrieves all shifts owned by a user, newest first
func (r *ShiftRepository) GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	if err := r.db.Model(&models.Shift{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("user_id = ?", userID).Order("date DESC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// GetByDateRange retrieves shifts falling inside [from, to]
func (r *ShiftRepository) GetByDateRange(from, to time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Where("date >= ? AND date <= ?", from, to).Order("date ASC").Find(&shifts).Error
	return shifts, err
}

// GetByUserAndDate retrieves a user's shift on a given date, if any
func (r *ShiftRepository) GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "user_id = ? AND date = ?", userID, date).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a shift
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shift{}, "id = ?", id).Error
}

// DeleteByYearAndTeams removes team shifts for a year ahead of a re-assignment
func (r *ShiftRepository) DeleteByYearAndTeams(year int, teams []models.ShiftTeam) error {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return r.db.Where("team_id IN ? AND date >= ? AND date <= ?", teams, start, end).
		Delete(&models.Shift{}).Error
}
