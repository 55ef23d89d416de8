package service

import (
	"errors"
	"fmt"

	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountAccessService tracks which users hold accounts on which customer
// environments. State changes are upserts keyed on (user, environment).
type AccountAccessService struct {
	repo      repository.AccountAccessRepositoryInterface
	envRepo   repository.EnvironmentRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	audit     *AuditService
	validator *validator.Validate
}

// NewAccountAccessService creates a new account access service
func NewAccountAccessService(repo repository.AccountAccessRepositoryInterface, envRepo repository.EnvironmentRepositoryInterface, userRepo repository.UserRepositoryInterface, audit *AuditService, validator *validator.Validate) *AccountAccessService {
	return &AccountAccessService{repo: repo, envRepo: envRepo, userRepo: userRepo, audit: audit, validator: validator}
}

// SetAccessRequest represents the input for recording an access state change
type SetAccessRequest struct {
	EnvironmentID string `json:"environment_id" validate:"required,uuid"`
	Status        string `json:"status" validate:"required"`
}

// AccountAccessResponse represents an access record returned to the client
type AccountAccessResponse struct {
	ID            uuid.UUID                  `json:"id"`
	UserID        uuid.UUID                  `json:"user_id"`
	EnvironmentID uuid.UUID                  `json:"environment_id"`
	Status        models.AccountAccessStatus `json:"status"`
	UpdatedAt     string                     `json:"updated_at"`
}

// Set records the state of a user's account on an environment
func (s *AccountAccessService) Set(userID uuid.UUID, req SetAccessRequest, actorID *uuid.UUID) (*AccountAccessResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	environmentID, err := uuid.Parse(req.EnvironmentID)
	if err != nil {
		return nil, apperrors.NewValidationError("environment_id", "must be a valid UUID")
	}
	status := models.AccountAccessStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown access status")
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if _, err := s.envRepo.GetByID(environmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnvironmentNotFound
		}
		return nil, fmt.Errorf("failed to get environment: %w", err)
	}

	access := &models.AccountAccess{
		UserID:        userID,
		EnvironmentID: environmentID,
		Status:        status,
	}
	if err := s.repo.Upsert(access); err != nil {
		return nil, fmt.Errorf("failed to record account access: %w", err)
	}

	stored, err := s.repo.GetByUserAndEnvironment(userID, environmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back account access: %w", err)
	}

	s.audit.Log(actorID, "ACCESS_UPDATED",
		fmt.Sprintf("Set account access to %s for user %s on environment %s", status, userID, environmentID), &stored.ID)

	return toAccessResponse(stored), nil
}

// GetForUser retrieves all access records of a user
func (s *AccountAccessService) GetForUser(userID uuid.UUID) ([]AccountAccessResponse, error) {
	records, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account access: %w", err)
	}
	return toAccessResponses(records), nil
}

// GetForEnvironment retrieves all access records on an environment
func (s *AccountAccessService) GetForEnvironment(environmentID uuid.UUID) ([]AccountAccessResponse, error) {
	if _, err := s.envRepo.GetByID(environmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnvironmentNotFound
		}
		return nil, fmt.Errorf("failed to get environment: %w", err)
	}

	records, err := s.repo.GetByEnvironmentID(environmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account access: %w", err)
	}
	return toAccessResponses(records), nil
}

func toAccessResponses(records []models.AccountAccess) []AccountAccessResponse {
	responses := make([]AccountAccessResponse, len(records))
	for i := range records {
		responses[i] = *toAccessResponse(&records[i])
	}
	return responses
}

func toAccessResponse(access *models.AccountAccess) *AccountAccessResponse {
	return &AccountAccessResponse{
		ID:            access.ID,
		UserID:        access.UserID,
		EnvironmentID: access.EnvironmentID,
		Status:        access.Status,
		UpdatedAt:     access.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
