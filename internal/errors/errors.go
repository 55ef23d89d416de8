package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// InvalidStateError represents an operation attempted against a record not in
// the required state, e.g. responding to a swap request that is no longer PENDING
type InvalidStateError struct {
	Entity  string
	Message string
}

func (e *InvalidStateError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("invalid state: %s", e.Message)
}

// Is enables errors.Is() comparison for InvalidStateError
func (e *InvalidStateError) Is(target error) bool {
	t, ok := target.(*InvalidStateError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrShiftNotFound        = &NotFoundError{Entity: "shift"}
	ErrSwapRequestNotFound  = &NotFoundError{Entity: "shift swap request"}
	ErrLeaveRequestNotFound = &NotFoundError{Entity: "leave request"}
	ErrCustomerNotFound     = &NotFoundError{Entity: "customer"}
	ErrEnvironmentNotFound  = &NotFoundError{Entity: "environment"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
	ErrRotaNotFound         = &NotFoundError{Entity: "rota"}
)

// Invalid State Errors
var (
	ErrSwapNotPending  = &InvalidStateError{Entity: "shift swap request", Message: "request is not pending"}
	ErrLeaveNotPending = &InvalidStateError{Entity: "leave request", Message: "request is not pending"}
)

// Business Logic Errors
var (
	ErrSelfSwap         = &ValidationError{Message: "requester and responder must be different users"}
	ErrShiftNotOwned    = &ValidationError{Message: "shift is not owned by the expected user"}
	ErrInvalidDateRange = &ValidationError{Message: "end date must not be before start date"}
	ErrInvalidLeaveType = &ValidationError{Field: "leave_type_id", Message: "unknown leave type"}
	ErrUserExists       = &ValidationError{Field: "email", Message: "a user with this email already exists"}
)

// Authentication and Authorization Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrUserInactive       = &AuthenticationError{Message: "user account is deactivated"}
	ErrNotResponder       = &AuthorizationError{Message: "only the designated responder may answer this swap request"}
	ErrNotRequester       = &AuthorizationError{Message: "only the requester or an admin may cancel this swap request"}
	ErrManagerRequired    = &AuthorizationError{Message: "manager or admin role required"}
	ErrNotOwner           = &AuthorizationError{Message: "not authorized to act on another user's record"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(entity, message string) error {
	return &InvalidStateError{Entity: entity, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
