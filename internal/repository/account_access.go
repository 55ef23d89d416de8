package repository

import (
	"workforce-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountAccessRepository handles database operations for account access records
type AccountAccessRepository struct {
	db *gorm.DB
}

// NewAccountAccessRepository creates a new account access repository
func NewAccountAccessRepository(db *gorm.DB) *AccountAccessRepository {
	return &AccountAccessRepository{db: db}
}

// Upsert creates or updates the access record for a (user, environment) pair
func (r *AccountAccessRepository) Upsert(access *models.AccountAccess) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "environment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(access).Error
}

// GetByUserAndEnvironment retrieves the access record for a pair
func (r *AccountAccessRepository) GetByUserAndEnvironment(userID, environmentID uuid.UUID) (*models.AccountAccess, error) {
	var access models.AccountAccess
	err := r.db.First(&access, "user_id = ? AND environment_id = ?", userID, environmentID).Error
	if err != nil {
		return nil, err
	}
	return &access, nil
}

// GetByUserID retrieves all access records for a user
func (r *AccountAccessRepository) GetByUserID(userID uuid.UUID) ([]models.AccountAccess, error) {
	var access []models.AccountAccess
	err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&access).Error
	return access, err
}

// GetByEnvironmentID retrieves all access records for an environment
func (r *AccountAccessRepository) GetByEnvironmentID(environmentID uuid.UUID) ([]models.AccountAccess, error) {
	var access []models.AccountAccess
	err := r.db.Where("environment_id = ?", environmentID).Order("updated_at DESC").Find(&access).Error
	return access, err
}
