package service

import (
	"errors"
	"fmt"
	"strings"

	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService manages employee accounts and credential verification
type UserService struct {
	repo      repository.UserRepositoryInterface
	audit     *AuditService
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, audit *AuditService, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, audit: audit, validator: validator}
}

// CreateUserRequest represents the input for creating a user
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required"`
	Team     string `json:"team,omitempty"`
}

// UpdateUserRequest represents the input for updating a user. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Role     *string `json:"role,omitempty"`
	Team     *string `json:"team,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ChangePasswordRequest represents the input for changing a password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// UserResponse represents a user returned to the client
type UserResponse struct {
	ID       uuid.UUID        `json:"id"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Role     models.UserRole  `json:"role"`
	Team     models.ShiftTeam `json:"team"`
	IsActive bool             `json:"is_active"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create registers a new user with a bcrypt-hashed password
func (s *UserService) Create(req CreateUserRequest, actorID *uuid.UUID) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	role := models.UserRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}
	team := models.TeamNone
	if req.Team != "" {
		team = models.ShiftTeam(req.Team)
		if !team.IsValid() {
			return nil, apperrors.NewValidationError("team", "unknown team")
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.repo.GetByEmail(email); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Team:         team,
		IsActive:     true,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.audit.Log(actorID, "USER_CREATED", fmt.Sprintf("Created user %s (%s)", user.Name, user.Email), &user.ID)
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user created")

	return toUserResponse(user), nil
}

// Authenticate verifies a user's credentials and returns the account when
// they match. Inactive accounts are rejected even with a correct password.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.getUser(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List retrieves users ordered by name
func (s *UserService) List(page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	users, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByTeam retrieves the members of a shift team
func (s *UserService) GetByTeam(team models.ShiftTeam) ([]UserResponse, error) {
	if !team.IsValid() {
		return nil, apperrors.NewValidationError("team", "unknown team")
	}
	users, err := s.repo.GetByTeam(team)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return responses, nil
}

// Update modifies a user's profile fields
func (s *UserService) Update(id uuid.UUID, req UpdateUserRequest, actorID *uuid.UUID) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.getUser(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", "unknown role")
		}
		user.Role = role
	}
	if req.Team != nil {
		team := models.ShiftTeam(*req.Team)
		if !team.IsValid() {
			return nil, apperrors.NewValidationError("team", "unknown team")
		}
		user.Team = team
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.audit.Log(actorID, "USER_UPDATED", fmt.Sprintf("Updated user %s", user.Email), &user.ID)
	return toUserResponse(user), nil
}

// ChangePassword replaces a user's password after verifying the current one
func (s *UserService) ChangePassword(id uuid.UUID, req ChangePasswordRequest) error {
	if err := validateStruct(s.validator, req); err != nil {
		return err
	}

	user, err := s.getUser(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.repo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.audit.Log(&id, "PASSWORD_CHANGED", "Changed own password", &id)
	return nil
}

// Delete removes a user account
func (s *UserService) Delete(id uuid.UUID, actorID *uuid.UUID) error {
	user, err := s.getUser(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.audit.Log(actorID, "USER_DELETED", fmt.Sprintf("Deleted user %s", user.Email), &id)
	return nil
}

func (s *UserService) getUser(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		Team:     user.Team,
		IsActive: user.IsActive,
	}
}
