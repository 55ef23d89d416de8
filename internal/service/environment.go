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

// EnvironmentService manages customer environments
type EnvironmentService struct {
	repo         repository.EnvironmentRepositoryInterface
	customerRepo repository.CustomerRepositoryInterface
	audit        *AuditService
	validator    *validator.Validate
}

// NewEnvironmentService creates a new environment service
func NewEnvironmentService(repo repository.EnvironmentRepositoryInterface, customerRepo repository.CustomerRepositoryInterface, audit *AuditService, validator *validator.Validate) *EnvironmentService {
	return &EnvironmentService{repo: repo, customerRepo: customerRepo, audit: audit, validator: validator}
}

// CreateEnvironmentRequest represents the input for creating an environment
type CreateEnvironmentRequest struct {
	CustomerID          string `json:"customer_id" validate:"required,uuid"`
	Name                string `json:"name" validate:"required,max=100"`
	RequestInstructions string `json:"request_instructions,omitempty"`
}

// UpdateEnvironmentRequest represents the input for updating an environment.
// Nil fields are left unchanged.
type UpdateEnvironmentRequest struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,max=100"`
	RequestInstructions *string `json:"request_instructions,omitempty"`
}

// EnvironmentResponse represents an environment returned to the client
type EnvironmentResponse struct {
	ID                  uuid.UUID `json:"id"`
	CustomerID          uuid.UUID `json:"customer_id"`
	CustomerName        string    `json:"customer_name,omitempty"`
	Name                string    `json:"name"`
	RequestInstructions string    `json:"request_instructions,omitempty"`
}

// Create adds an environment under an existing customer
func (s *EnvironmentService) Create(req CreateEnvironmentRequest, actorID *uuid.UUID) (*EnvironmentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, apperrors.NewValidationError("customer_id", "must be a valid UUID")
	}

	if _, err := s.customerRepo.GetByID(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	env := &models.Environment{
		CustomerID:          customerID,
		Name:                req.Name,
		RequestInstructions: req.RequestInstructions,
	}
	if err := s.repo.Create(env); err != nil {
		return nil, fmt.Errorf("failed to create environment: %w", err)
	}

	s.audit.Log(actorID, "ENVIRONMENT_CREATED", fmt.Sprintf("Created environment %s", env.Name), &env.ID)
	return toEnvironmentResponse(env), nil
}

// GetByID retrieves an environment
func (s *EnvironmentService) GetByID(id uuid.UUID) (*EnvironmentResponse, error) {
	env, err := s.getEnvironment(id)
	if err != nil {
		return nil, err
	}
	return toEnvironmentResponse(env), nil
}

// List retrieves environments, optionally filtered by customer
func (s *EnvironmentService) List(customerID *uuid.UUID) ([]EnvironmentResponse, error) {
	envs, err := s.repo.GetAll(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list environments: %w", err)
	}

	responses := make([]EnvironmentResponse, len(envs))
	for i := range envs {
		responses[i] = *toEnvironmentResponse(&envs[i])
	}
	return responses, nil
}

// Update modifies an environment's details
func (s *EnvironmentService) Update(id uuid.UUID, req UpdateEnvironmentRequest, actorID *uuid.UUID) (*EnvironmentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	env, err := s.getEnvironment(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		env.Name = *req.Name
	}
	if req.RequestInstructions != nil {
		env.RequestInstructions = *req.RequestInstructions
	}

	if err := s.repo.Update(env); err != nil {
		return nil, fmt.Errorf("failed to update environment: %w", err)
	}

	s.audit.Log(actorID, "ENVIRONMENT_UPDATED", fmt.Sprintf("Updated environment %s", env.Name), &id)
	return toEnvironmentResponse(env), nil
}

// Delete removes an environment
func (s *EnvironmentService) Delete(id uuid.UUID, actorID *uuid.UUID) error {
	env, err := s.getEnvironment(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete environment: %w", err)
	}

	s.audit.Log(actorID, "ENVIRONMENT_DELETED", fmt.Sprintf("Deleted environment %s", env.Name), &id)
	return nil
}

func (s *EnvironmentService) getEnvironment(id uuid.UUID) (*models.Environment, error) {
	env, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnvironmentNotFound
		}
		return nil, fmt.Errorf("failed to get environment: %w", err)
	}
	return env, nil
}

func toEnvironmentResponse(env *models.Environment) *EnvironmentResponse {
	resp := &EnvironmentResponse{
		ID:                  env.ID,
		CustomerID:          env.CustomerID,
		Name:                env.Name,
		RequestInstructions: env.RequestInstructions,
	}
	if env.Customer.Name != "" {
		resp.CustomerName = env.Customer.Name
	}
	return resp
}
