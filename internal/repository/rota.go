package repository

import (
	"workforce-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// RotaRepository handles database operations for generated team rotas
type RotaRepository struct {
	db *gorm.DB
}

// NewRotaRepository creates a new rota repository
func NewRotaRepository(db *gorm.DB) *RotaRepository {
	return &RotaRepository{db: db}
}

// ReplaceYear replaces the stored rota for a year with the given sequence.
// Delete and insert run in one transaction so readers never see a partial year.
func (r *RotaRepository) ReplaceYear(year int, assignments []models.TeamShiftAssignment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("year = ?", year).Delete(&models.TeamShiftAssignment{}).Error; err != nil {
			return err
		}
		if len(assignments) == 0 {
			return nil
		}
		return tx.CreateInBatches(assignments, 200).Error
	})
}

// GetByYear retrieves the stored rota for a year in date order
func (r *RotaRepository) GetByYear(year int) ([]models.TeamShiftAssignment, error) {
	var assignments []models.TeamShiftAssignment
	err := r.db.Where("year = ?", year).Order("date ASC").Find(&assignments).Error
	return assignments, err
}

// CountByYear returns the number of stored assignments for a year
func (r *RotaRepository) CountByYear(year int) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamShiftAssignment{}).Where("year = ?", year).Count(&count).Error
	return count, err
}
