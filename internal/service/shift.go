package service

import (
	"errors"
	"fmt"
	"time"

	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftService serves schedule views over materialized shifts
type ShiftService struct {
	shiftRepo repository.ShiftRepositoryInterface
	leaveRepo repository.LeaveRequestRepositoryInterface
}

// NewShiftService creates a new shift service
func NewShiftService(shiftRepo repository.ShiftRepositoryInterface, leaveRepo repository.LeaveRequestRepositoryInterface) *ShiftService {
	return &ShiftService{shiftRepo: shiftRepo, leaveRepo: leaveRepo}
}

// ShiftResponse represents a shift returned to the client
type ShiftResponse struct {
	ID            uuid.UUID          `json:"id"`
	Date          string             `json:"date"`
	UserID        *uuid.UUID         `json:"user_id,omitempty"`
	UserName      string             `json:"user_name,omitempty"`
	TeamID        models.ShiftTeam   `json:"team_id"`
	ShiftPeriod   models.ShiftPeriod `json:"shift_period"`
	IsSwapPending bool               `json:"is_swap_pending"`
	OnLeave       bool               `json:"on_leave"`
}

// ShiftListResponse represents a paginated list of shifts
type ShiftListResponse struct {
	Shifts   []ShiftResponse `json:"shifts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// GetByID retrieves a single shift
func (s *ShiftService) GetByID(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return toShiftResponse(shift, false), nil
}

// GetForUser retrieves a user's shifts, oldest first
func (s *ShiftService) GetForUser(userID uuid.UUID, page, pageSize int) (*ShiftListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	shifts, total, err := s.shiftRepo.GetByUserID(userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = *toShiftResponse(&shifts[i], false)
	}
	return &ShiftListResponse{
		Shifts:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetSchedule retrieves every shift in a date range with approved leave
// overlaid, so a shift whose owner is on leave that day is flagged.
func (s *ShiftService) GetSchedule(fromStr, toStr string) ([]ShiftResponse, error) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return nil, apperrors.NewValidationError("from", "must be a date in YYYY-MM-DD format")
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return nil, apperrors.NewValidationError("to", "must be a date in YYYY-MM-DD format")
	}
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	shifts, err := s.shiftRepo.GetByDateRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	leave, err := s.leaveRepo.GetApprovedInRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved leave: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		onLeave := shifts[i].UserID != nil && coveredByLeave(leave, *shifts[i].UserID, shifts[i].Date, shifts[i].ShiftPeriod)
		responses[i] = *toShiftResponse(&shifts[i], onLeave)
	}
	return responses, nil
}

// coveredByLeave reports whether an approved leave request covers the user on
// the given date and period. Half-day leave only covers its own period.
func coveredByLeave(leave []models.LeaveRequest, userID uuid.UUID, date time.Time, period models.ShiftPeriod) bool {
	for _, l := range leave {
		if l.UserID != userID {
			continue
		}
		if date.Before(l.StartDate) || date.After(l.EndDate) {
			continue
		}
		if l.IsHalfDay && l.HalfDayPeriod != nil && *l.HalfDayPeriod != period {
			continue
		}
		return true
	}
	return false
}

func toShiftResponse(shift *models.Shift, onLeave bool) *ShiftResponse {
	resp := &ShiftResponse{
		ID:            shift.ID,
		Date:          shift.Date.Format("2006-01-02"),
		UserID:        shift.UserID,
		TeamID:        shift.TeamID,
		ShiftPeriod:   shift.ShiftPeriod,
		IsSwapPending: shift.IsSwapPending,
		OnLeave:       onLeave,
	}
	if shift.User != nil {
		resp.UserName = shift.User.Name
	}
	return resp
}
