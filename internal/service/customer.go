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

// CustomerService manages the supported customer catalog
type CustomerService struct {
	repo      repository.CustomerRepositoryInterface
	audit     *AuditService
	validator *validator.Validate
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo repository.CustomerRepositoryInterface, audit *AuditService, validator *validator.Validate) *CustomerService {
	return &CustomerService{repo: repo, audit: audit, validator: validator}
}

// CreateCustomerRequest represents the input for creating a customer
type CreateCustomerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// UpdateCustomerRequest represents the input for renaming a customer
type UpdateCustomerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CustomerResponse represents a customer returned to the client
type CustomerResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Environments []EnvironmentResponse `json:"environments,omitempty"`
}

// Create adds a customer to the catalog
func (s *CustomerService) Create(req CreateCustomerRequest, actorID *uuid.UUID) (*CustomerResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	customer := &models.Customer{Name: req.Name}
	if err := s.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.audit.Log(actorID, "CUSTOMER_CREATED", fmt.Sprintf("Created customer %s", customer.Name), &customer.ID)
	return toCustomerResponse(customer), nil
}

// GetByID retrieves a customer with its environments
func (s *CustomerService) GetByID(id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.repo.GetWithEnvironments(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return toCustomerResponse(customer), nil
}

// List retrieves all customers ordered by name
func (s *CustomerService) List() ([]CustomerResponse, error) {
	customers, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = *toCustomerResponse(&customers[i])
	}
	return responses, nil
}

// Update renames a customer
func (s *CustomerService) Update(id uuid.UUID, req UpdateCustomerRequest, actorID *uuid.UUID) (*CustomerResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	customer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	customer.Name = req.Name
	if err := s.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	s.audit.Log(actorID, "CUSTOMER_UPDATED", fmt.Sprintf("Renamed customer to %s", customer.Name), &id)
	return toCustomerResponse(customer), nil
}

// Delete removes a customer and, by cascade, its environments
func (s *CustomerService) Delete(id uuid.UUID, actorID *uuid.UUID) error {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to get customer: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.audit.Log(actorID, "CUSTOMER_DELETED", fmt.Sprintf("Deleted customer %s", customer.Name), &id)
	return nil
}

func toCustomerResponse(customer *models.Customer) *CustomerResponse {
	resp := &CustomerResponse{
		ID:   customer.ID,
		Name: customer.Name,
	}
	for i := range customer.Environments {
		resp.Environments = append(resp.Environments, *toEnvironmentResponse(&customer.Environments[i]))
	}
	return resp
}
