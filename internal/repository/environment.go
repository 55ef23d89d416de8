package repository

import (
	"workforce-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnvironmentRepository handles database operations for customer environments
type EnvironmentRepository struct {
	db *gorm.DB
}

// NewEnvironmentRepository creates a new environment repository
func NewEnvironmentRepository(db *gorm.DB) *EnvironmentRepository {
	return &EnvironmentRepository{db: db}
}

// Create creates a new environment
func (r *EnvironmentRepository) Create(env *models.Environment) error {
	return r.db.Create(env).Error
}

// GetByID retrieves an environment by ID
func (r *EnvironmentRepository) GetByID(id uuid.UUID) (*models.Environment, error) {
	var env models.Environment
	err := r.db.First(&env, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &env, nil
}

// GetAll retrieves all environments, optionally filtered by customer
func (r *EnvironmentRepository) GetAll(customerID *uuid.UUID) ([]models.Environment, error) {
	var envs []models.Environment
	query := r.db.Preload("Customer").Order("name ASC")
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	err := query.Find(&envs).Error
	return envs, err
}

// Update updates an environment
func (r *EnvironmentRepository) Update(env *models.Environment) error {
	return r.db.Save(env).Error
}

// Delete deletes an environment
func (r *EnvironmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Environment{}, "id = ?", id).Error
}
