package service

import (
	"workforce-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	Create(req CreateUserRequest, actorID *uuid.UUID) (*UserResponse, error)
	Authenticate(email, password string) (*models.User, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	List(page, pageSize int) (*UserListResponse, error)
	GetByTeam(team models.ShiftTeam) ([]UserResponse, error)
	Update(id uuid.UUID, req UpdateUserRequest, actorID *uuid.UUID) (*UserResponse, error)
	ChangePassword(id uuid.UUID, req ChangePasswordRequest) error
	Delete(id uuid.UUID, actorID *uuid.UUID) error
}

// RotaServiceInterface defines the interface for rota service operations
type RotaServiceInterface interface {
	Generate(req GenerateRotaRequest, actorID *uuid.UUID) (*RotaResponse, error)
	GetYear(year int) (*RotaResponse, error)
	AssignRotaToUsers(year int, actorID *uuid.UUID) (int, error)
}

// ShiftServiceInterface defines the interface for shift service operations
type ShiftServiceInterface interface {
	GetByID(id uuid.UUID) (*ShiftResponse, error)
	GetForUser(userID uuid.UUID, page, pageSize int) (*ShiftListResponse, error)
	GetSchedule(fromStr, toStr string) ([]ShiftResponse, error)
}

// ShiftSwapServiceInterface defines the interface for swap service operations
type ShiftSwapServiceInterface interface {
	Propose(requesterID uuid.UUID, req ProposeSwapRequest) (*SwapRequestResponse, error)
	Respond(swapID, callerID uuid.UUID, req RespondSwapRequest) (*SwapRequestResponse, error)
	Cancel(swapID, callerID uuid.UUID, callerRole models.UserRole) (*SwapRequestResponse, error)
	GetByID(swapID, callerID uuid.UUID, callerRole models.UserRole) (*SwapRequestResponse, error)
	GetForUser(userID uuid.UUID, page, pageSize int) (*SwapRequestListResponse, error)
}

// LeaveRequestServiceInterface defines the interface for leave service operations
type LeaveRequestServiceInterface interface {
	LeaveTypes() []models.LeaveType
	Create(userID uuid.UUID, req CreateLeaveRequest) (*LeaveRequestResponse, error)
	Review(id, managerID uuid.UUID, managerRole models.UserRole, req ReviewLeaveRequest) (*LeaveRequestResponse, error)
	Cancel(id, callerID uuid.UUID, callerRole models.UserRole) (*LeaveRequestResponse, error)
	GetByID(id, callerID uuid.UUID, callerRole models.UserRole) (*LeaveRequestResponse, error)
	List(q LeaveRequestQuery) (*LeaveRequestListResponse, error)
}

// CustomerServiceInterface defines the interface for customer service operations
type CustomerServiceInterface interface {
	Create(req CreateCustomerRequest, actorID *uuid.UUID) (*CustomerResponse, error)
	GetByID(id uuid.UUID) (*CustomerResponse, error)
	List() ([]CustomerResponse, error)
	Update(id uuid.UUID, req UpdateCustomerRequest, actorID *uuid.UUID) (*CustomerResponse, error)
	Delete(id uuid.UUID, actorID *uuid.UUID) error
}

// EnvironmentServiceInterface defines the interface for environment service operations
type EnvironmentServiceInterface interface {
	Create(req CreateEnvironmentRequest, actorID *uuid.UUID) (*EnvironmentResponse, error)
	GetByID(id uuid.UUID) (*EnvironmentResponse, error)
	List(customerID *uuid.UUID) ([]EnvironmentResponse, error)
	Update(id uuid.UUID, req UpdateEnvironmentRequest, actorID *uuid.UUID) (*EnvironmentResponse, error)
	Delete(id uuid.UUID, actorID *uuid.UUID) error
}

// AccountAccessServiceInterface defines the interface for account access service operations
type AccountAccessServiceInterface interface {
	Set(userID uuid.UUID, req SetAccessRequest, actorID *uuid.UUID) (*AccountAccessResponse, error)
	GetForUser(userID uuid.UUID) ([]AccountAccessResponse, error)
	GetForEnvironment(environmentID uuid.UUID) ([]AccountAccessResponse, error)
}

// NotificationServiceInterface defines the interface for notification service operations
type NotificationServiceInterface interface {
	Send(userID uuid.UUID, message, link string, notifType models.NotificationType)
	GetForUser(userID uuid.UUID, page, pageSize int) (*NotificationListResponse, error)
	MarkRead(id, callerID uuid.UUID) error
	MarkAllRead(callerID uuid.UUID) error
}

// AuditServiceInterface defines the interface for audit service operations
type AuditServiceInterface interface {
	Log(userID *uuid.UUID, actionType, details string, targetEntityID *uuid.UUID)
	List(q AuditLogQuery) (*AuditLogListResponse, error)
}

// ReportServiceInterface defines the interface for report service operations
type ReportServiceInterface interface {
	LeaveSummary(year int) (*LeaveSummaryReport, error)
	Availability(fromStr, toStr string) (*AvailabilityReport, error)
}
