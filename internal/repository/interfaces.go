package repository

import (
	"time"

	"workforce-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByTeam(team models.ShiftTeam) ([]models.User, error)
	GetByRole(role models.UserRole) ([]models.User, error)
	GetActiveByRole(role models.UserRole) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	CreateBatch(shifts []models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Shift, int64, error)
	GetByDateRange(from, to time.Time) ([]models.Shift, error)
	GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.Shift, error)
	Update(shift *models.Shift) error
	Delete(id uuid.UUID) error
	DeleteByYearAndTeams(year int, teams []models.ShiftTeam) error
}

// ShiftSwapRepositoryInterface defines the interface for swap request repository operations
type ShiftSwapRepositoryInterface interface {
	CreatePending(req *models.ShiftSwapRequest, shiftIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.ShiftSwapRequest, error)
	GetByParticipant(userID uuid.UUID, limit, offset int) ([]models.ShiftSwapRequest, int64, error)
	GetPendingByShiftID(shiftID uuid.UUID) (bool, error)
	AcceptAndExchange(swapID uuid.UUID) (*models.ShiftSwapRequest, error)
	Finalize(swapID uuid.UUID, status models.SwapRequestStatus) (*models.ShiftSwapRequest, error)
}

// RotaRepositoryInterface defines the interface for rota repository operations
type RotaRepositoryInterface interface {
	ReplaceYear(year int, assignments []models.TeamShiftAssignment) error
	GetByYear(year int) ([]models.TeamShiftAssignment, error)
	CountByYear(year int) (int64, error)
}

// LeaveRequestRepositoryInterface defines the interface for leave request repository operations
type LeaveRequestRepositoryInterface interface {
	Create(req *models.LeaveRequest) error
	GetByID(id uuid.UUID) (*models.LeaveRequest, error)
	GetAll(userID *uuid.UUID, status *models.LeaveRequestStatus, limit, offset int) ([]models.LeaveRequest, int64, error)
	GetApprovedInRange(from, to time.Time) ([]models.LeaveRequest, error)
	GetApprovedForUserOnDate(userID uuid.UUID, date time.Time) (bool, error)
	Update(req *models.LeaveRequest) error
	Delete(id uuid.UUID) error
}

// CustomerRepositoryInterface defines the interface for customer repository operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(id uuid.UUID) (*models.Customer, error)
	GetAll() ([]models.Customer, error)
	GetWithEnvironments(id uuid.UUID) (*models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uuid.UUID) error
}

// EnvironmentRepositoryInterface defines the interface for environment repository operations
type EnvironmentRepositoryInterface interface {
	Create(env *models.Environment) error
	GetByID(id uuid.UUID) (*models.Environment, error)
	GetAll(customerID *uuid.UUID) ([]models.Environment, error)
	Update(env *models.Environment) error
	Delete(id uuid.UUID) error
}

// AccountAccessRepositoryInterface defines the interface for account access repository operations
type AccountAccessRepositoryInterface interface {
	Upsert(access *models.AccountAccess) error
	GetByUserAndEnvironment(userID, environmentID uuid.UUID) (*models.AccountAccess, error)
	GetByUserID(userID uuid.UUID) ([]models.AccountAccess, error)
	GetByEnvironmentID(environmentID uuid.UUID) ([]models.AccountAccess, error)
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error)
	CountUnread(userID uuid.UUID) (int64, error)
	MarkRead(id uuid.UUID) error
	MarkAllRead(userID uuid.UUID) error
}

// AuditLogRepositoryInterface defines the interface for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(entry *models.AuditLogEntry) error
	GetAll(filter AuditLogFilter, limit, offset int) ([]models.AuditLogEntry, int64, error)
}
