package service

import (
	"errors"
	"fmt"
	"time"

	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LeaveRequestService manages the leave request lifecycle. The half-day flag
// and period are derived from the leave type alone; client-supplied values
// are never trusted for either field.
type LeaveRequestService struct {
	leaveRepo     repository.LeaveRequestRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	notifications *NotificationService
	audit         *AuditService
	leaveTypes    []models.LeaveType
	validator     *validator.Validate
}

// NewLeaveRequestService creates a new leave request service
func NewLeaveRequestService(leaveRepo repository.LeaveRequestRepositoryInterface, userRepo repository.UserRepositoryInterface, notifications *NotificationService, audit *AuditService, leaveTypes []models.LeaveType, validator *validator.Validate) *LeaveRequestService {
	if len(leaveTypes) == 0 {
		leaveTypes = models.DefaultLeaveTypes
	}
	return &LeaveRequestService{
		leaveRepo:     leaveRepo,
		userRepo:      userRepo,
		notifications: notifications,
		audit:         audit,
		leaveTypes:    leaveTypes,
		validator:     validator,
	}
}

// CreateLeaveRequest represents the input for requesting leave
type CreateLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Reason      string `json:"reason,omitempty" validate:"max=500"`
}

// ReviewLeaveRequest represents a manager's decision on a pending request
type ReviewLeaveRequest struct {
	Approve bool   `json:"approve"`
	Comment string `json:"comment,omitempty" validate:"max=500"`
}

// LeaveRequestResponse represents a leave request returned to the client
type LeaveRequestResponse struct {
	ID            uuid.UUID                 `json:"id"`
	UserID        uuid.UUID                 `json:"user_id"`
	UserName      string                    `json:"user_name,omitempty"`
	LeaveTypeID   models.LeaveTypeID        `json:"leave_type_id"`
	StartDate     string                    `json:"start_date"`
	EndDate       string                    `json:"end_date"`
	IsHalfDay     bool                      `json:"is_half_day"`
	HalfDayPeriod *models.ShiftPeriod       `json:"half_day_period,omitempty"`
	Reason        string                    `json:"reason,omitempty"`
	Status        models.LeaveRequestStatus `json:"status"`
	ManagerID     *uuid.UUID                `json:"manager_id,omitempty"`
	Retrospective bool                      `json:"retrospective"`
	CreatedAt     string                    `json:"created_at"`
}

// LeaveRequestListResponse represents a paginated list of leave requests
type LeaveRequestListResponse struct {
	LeaveRequests []LeaveRequestResponse `json:"leave_requests"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// LeaveTypes returns the configured leave-type catalog
func (s *LeaveRequestService) LeaveTypes() []models.LeaveType {
	return s.leaveTypes
}

// Create submits a new PENDING leave request for a user. Requests starting in
// the past are accepted and flagged retrospective. Half-day types must cover
// a single day.
func (s *LeaveRequestService) Create(userID uuid.UUID, req CreateLeaveRequest) (*LeaveRequestResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	leaveTypeID := models.LeaveTypeID(req.LeaveTypeID)
	if !s.isKnownLeaveType(leaveTypeID) {
		return nil, apperrors.ErrInvalidLeaveType
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("start_date", "must be a date in YYYY-MM-DD format")
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("end_date", "must be a date in YYYY-MM-DD format")
	}
	if endDate.Before(startDate) {
		return nil, apperrors.ErrInvalidDateRange
	}
	if leaveTypeID.IsHalfDay() && !startDate.Equal(endDate) {
		return nil, apperrors.NewValidationError("end_date", "half-day leave must start and end on the same day")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	leaveRequest := &models.LeaveRequest{
		UserID:        userID,
		LeaveTypeID:   leaveTypeID,
		StartDate:     startDate,
		EndDate:       endDate,
		IsHalfDay:     leaveTypeID.IsHalfDay(),
		HalfDayPeriod: leaveTypeID.HalfDayPeriod(),
		Reason:        req.Reason,
		Status:        models.LeaveStatusPending,
		Retrospective: startDate.Before(today),
	}

	if err := s.leaveRepo.Create(leaveRequest); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.notifyManagers(fmt.Sprintf("%s requested %s leave from %s to %s",
		s.userName(userID), leaveTypeID, req.StartDate, req.EndDate),
		"/leave/"+leaveRequest.ID.String())
	s.audit.Log(&userID, "LEAVE_REQUESTED",
		fmt.Sprintf("Requested %s leave %s to %s", leaveTypeID, req.StartDate, req.EndDate), &leaveRequest.ID)

	logrus.WithFields(logrus.Fields{
		"leave_request_id": leaveRequest.ID,
		"user_id":          userID,
		"leave_type":       leaveTypeID,
	}).Info("leave request created")

	return toLeaveResponse(leaveRequest), nil
}

// Review applies a manager's decision to a pending leave request
func (s *LeaveRequestService) Review(id, managerID uuid.UUID, managerRole models.UserRole, req ReviewLeaveRequest) (*LeaveRequestResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if managerRole != models.RoleManager && managerRole != models.RoleAdmin {
		return nil, apperrors.ErrManagerRequired
	}

	leaveRequest, err := s.getLeaveRequest(id)
	if err != nil {
		return nil, err
	}
	if leaveRequest.Status != models.LeaveStatusPending {
		return nil, apperrors.ErrLeaveNotPending
	}

	if req.Approve {
		leaveRequest.Status = models.LeaveStatusApproved
	} else {
		leaveRequest.Status = models.LeaveStatusRejected
	}
	leaveRequest.ManagerID = &managerID

	if err := s.leaveRepo.Update(leaveRequest); err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}

	if req.Approve {
		s.notifications.Send(leaveRequest.UserID,
			fmt.Sprintf("Your %s leave request was approved", leaveRequest.LeaveTypeID),
			"/leave/"+id.String(), models.NotificationSuccess)
		s.audit.Log(&managerID, "LEAVE_APPROVED",
			fmt.Sprintf("Approved leave request for user %s", leaveRequest.UserID), &id)
	} else {
		message := fmt.Sprintf("Your %s leave request was rejected", leaveRequest.LeaveTypeID)
		if req.Comment != "" {
			message = fmt.Sprintf("%s: %s", message, req.Comment)
		}
		s.notifications.Send(leaveRequest.UserID, message, "/leave/"+id.String(), models.NotificationWarning)
		s.audit.Log(&managerID, "LEAVE_REJECTED",
			fmt.Sprintf("Rejected leave request for user %s", leaveRequest.UserID), &id)
	}

	return toLeaveResponse(leaveRequest), nil
}

// Cancel withdraws a pending leave request. Only the owner or an admin may
// cancel, and only while the request is still PENDING.
func (s *LeaveRequestService) Cancel(id, callerID uuid.UUID, callerRole models.UserRole) (*LeaveRequestResponse, error) {
	leaveRequest, err := s.getLeaveRequest(id)
	if err != nil {
		return nil, err
	}
	if leaveRequest.UserID != callerID && callerRole != models.RoleAdmin {
		return nil, apperrors.ErrNotOwner
	}
	if leaveRequest.Status != models.LeaveStatusPending {
		return nil, apperrors.ErrLeaveNotPending
	}

	leaveRequest.Status = models.LeaveStatusCancelled
	if err := s.leaveRepo.Update(leaveRequest); err != nil {
		return nil, fmt.Errorf("failed to cancel leave request: %w", err)
	}

	s.audit.Log(&callerID, "LEAVE_CANCELLED",
		fmt.Sprintf("Cancelled leave request %s", id), &id)

	return toLeaveResponse(leaveRequest), nil
}

// GetByID retrieves a leave request visible to the caller
func (s *LeaveRequestService) GetByID(id, callerID uuid.UUID, callerRole models.UserRole) (*LeaveRequestResponse, error) {
	leaveRequest, err := s.getLeaveRequest(id)
	if err != nil {
		return nil, err
	}
	if leaveRequest.UserID != callerID &&
		callerRole != models.RoleAdmin && callerRole != models.RoleManager {
		return nil, apperrors.ErrNotOwner
	}
	return toLeaveResponse(leaveRequest), nil
}

// LeaveRequestQuery narrows a leave request listing
type LeaveRequestQuery struct {
	UserID   *uuid.UUID
	Status   *models.LeaveRequestStatus
	Page     int
	PageSize int
}

// List retrieves leave requests matching the query, newest first
func (s *LeaveRequestService) List(q LeaveRequestQuery) (*LeaveRequestListResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}

	offset := (q.Page - 1) * q.PageSize
	requests, total, err := s.leaveRepo.GetAll(q.UserID, q.Status, q.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]LeaveRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *toLeaveResponse(&requests[i])
	}
	return &LeaveRequestListResponse{
		LeaveRequests: responses,
		Total:         total,
		Page:          q.Page,
		PageSize:      q.PageSize,
	}, nil
}

func (s *LeaveRequestService) isKnownLeaveType(id models.LeaveTypeID) bool {
	for _, lt := range s.leaveTypes {
		if lt.ID == id {
			return true
		}
	}
	return false
}

func (s *LeaveRequestService) getLeaveRequest(id uuid.UUID) (*models.LeaveRequest, error) {
	leaveRequest, err := s.leaveRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	return leaveRequest, nil
}

// notifyManagers fans a message out to every active manager
func (s *LeaveRequestService) notifyManagers(message, link string) {
	managers, err := s.userRepo.GetActiveByRole(models.RoleManager)
	if err != nil {
		logrus.Warnf("failed to resolve managers for notification: %v", err)
		return
	}
	for _, m := range managers {
		s.notifications.Send(m.ID, message, link, models.NotificationInfo)
	}
}

func (s *LeaveRequestService) userName(id uuid.UUID) string {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return "A colleague"
	}
	return user.Name
}

func toLeaveResponse(req *models.LeaveRequest) *LeaveRequestResponse {
	resp := &LeaveRequestResponse{
		ID:            req.ID,
		UserID:        req.UserID,
		LeaveTypeID:   req.LeaveTypeID,
		StartDate:     req.StartDate.Format("2006-01-02"),
		EndDate:       req.EndDate.Format("2006-01-02"),
		IsHalfDay:     req.IsHalfDay,
		HalfDayPeriod: req.HalfDayPeriod,
		Reason:        req.Reason,
		Status:        req.Status,
		ManagerID:     req.ManagerID,
		Retrospective: req.Retrospective,
		CreatedAt:     req.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if req.User.Name != "" {
		resp.UserName = req.User.Name
	}
	return resp
}
