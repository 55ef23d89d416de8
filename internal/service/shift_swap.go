package service

import (
	"errors"
	"fmt"

	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ShiftSwapService coordinates two-party shift exchanges. Validation runs
// against a plain read; the state transition itself happens inside a single
// locked transaction in the repository, so two concurrent responses to the
// same request resolve to exactly one winner.
type ShiftSwapService struct {
	swapRepo      repository.ShiftSwapRepositoryInterface
	shiftRepo     repository.ShiftRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	notifications *NotificationService
	audit         *AuditService
	validator     *validator.Validate
}

// NewShiftSwapService creates a new shift swap service
func NewShiftSwapService(swapRepo repository.ShiftSwapRepositoryInterface, shiftRepo repository.ShiftRepositoryInterface, userRepo repository.UserRepositoryInterface, notifications *NotificationService, audit *AuditService, validator *validator.Validate) *ShiftSwapService {
	return &ShiftSwapService{
		swapRepo:      swapRepo,
		shiftRepo:     shiftRepo,
		userRepo:      userRepo,
		notifications: notifications,
		audit:         audit,
		validator:     validator,
	}
}

// ProposeSwapRequest represents the input for proposing a shift swap
type ProposeSwapRequest struct {
	ResponderID      string `json:"responder_id" validate:"required,uuid"`
	RequesterShiftID string `json:"requester_shift_id" validate:"required,uuid"`
	ResponderShiftID string `json:"responder_shift_id" validate:"required,uuid"`
	Reason           string `json:"reason,omitempty" validate:"max=500"`
}

// RespondSwapRequest represents the responder's decision on a pending swap
type RespondSwapRequest struct {
	Accept bool `json:"accept"`
}

// SwapRequestResponse represents a swap request returned to the client
type SwapRequestResponse struct {
	ID               uuid.UUID                `json:"id"`
	RequesterID      uuid.UUID                `json:"requester_id"`
	ResponderID      uuid.UUID                `json:"responder_id"`
	RequesterShiftID uuid.UUID                `json:"requester_shift_id"`
	ResponderShiftID uuid.UUID                `json:"responder_shift_id"`
	Status           models.SwapRequestStatus `json:"status"`
	Reason           string                   `json:"reason,omitempty"`
	CreatedAt        string                   `json:"created_at"`
	UpdatedAt        string                   `json:"updated_at"`
}

// SwapRequestListResponse represents a paginated list of swap requests
type SwapRequestListResponse struct {
	SwapRequests []SwapRequestResponse `json:"swap_requests"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// Propose creates a PENDING swap request from the requester's shift to the
// responder's shift. Both shifts must exist and be owned by their respective
// parties, the parties must differ, and neither shift may already carry a
// pending swap.
func (s *ShiftSwapService) Propose(requesterID uuid.UUID, req ProposeSwapRequest) (*SwapRequestResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	responderID, err := uuid.Parse(req.ResponderID)
	if err != nil {
		return nil, apperrors.NewValidationError("responder_id", "must be a valid UUID")
	}
	requesterShiftID, err := uuid.Parse(req.RequesterShiftID)
	if err != nil {
		return nil, apperrors.NewValidationError("requester_shift_id", "must be a valid UUID")
	}
	responderShiftID, err := uuid.Parse(req.ResponderShiftID)
	if err != nil {
		return nil, apperrors.NewValidationError("responder_shift_id", "must be a valid UUID")
	}

	if requesterID == responderID {
		return nil, apperrors.ErrSelfSwap
	}
	if requesterShiftID == responderShiftID {
		return nil, apperrors.NewValidationError("responder_shift_id", "cannot swap a shift with itself")
	}

	requesterShift, err := s.getShift(requesterShiftID)
	if err != nil {
		return nil, err
	}
	responderShift, err := s.getShift(responderShiftID)
	if err != nil {
		return nil, err
	}

	if requesterShift.UserID == nil || *requesterShift.UserID != requesterID {
		return nil, apperrors.ErrShiftNotOwned
	}
	if responderShift.UserID == nil || *responderShift.UserID != responderID {
		return nil, apperrors.ErrShiftNotOwned
	}

	for _, shiftID := range []uuid.UUID{requesterShiftID, responderShiftID} {
		pending, err := s.swapRepo.GetPendingByShiftID(shiftID)
		if err != nil {
			return nil, fmt.Errorf("failed to check pending swaps: %w", err)
		}
		if pending {
			return nil, apperrors.NewInvalidStateError("shift", "already has a pending swap request")
		}
	}

	swap := &models.ShiftSwapRequest{
		RequesterID:      requesterID,
		ResponderID:      responderID,
		RequesterShiftID: requesterShiftID,
		ResponderShiftID: responderShiftID,
		Status:           models.SwapStatusPending,
		Reason:           req.Reason,
	}
	if err := s.swapRepo.CreatePending(swap, []uuid.UUID{requesterShiftID, responderShiftID}); err != nil {
		return nil, fmt.Errorf("failed to create swap request: %w", err)
	}

	requesterName := s.userName(requesterID)
	s.notifications.Send(responderID,
		fmt.Sprintf("%s proposed a shift swap for %s", requesterName, responderShift.Date.Format("2006-01-02")),
		"/swaps/"+swap.ID.String(), models.NotificationInfo)
	s.audit.Log(&requesterID, "SWAP_PROPOSED",
		fmt.Sprintf("Proposed swap of shift %s for shift %s", requesterShiftID, responderShiftID), &swap.ID)

	logrus.WithFields(logrus.Fields{
		"swap_id":   swap.ID,
		"requester": requesterID,
		"responder": responderID,
	}).Info("shift swap proposed")

	return toSwapResponse(swap), nil
}

// Respond applies the responder's decision to a pending swap. Acceptance
// exchanges the two shift owners atomically; rejection just closes the
// request. Either way the shifts drop their pending flag.
func (s *ShiftSwapService) Respond(swapID, callerID uuid.UUID, req RespondSwapRequest) (*SwapRequestResponse, error) {
	swap, err := s.getSwap(swapID)
	if err != nil {
		return nil, err
	}
	if swap.ResponderID != callerID {
		return nil, apperrors.ErrNotResponder
	}
	if swap.Status.IsTerminal() {
		return nil, apperrors.ErrSwapNotPending
	}

	var updated *models.ShiftSwapRequest
	if req.Accept {
		updated, err = s.swapRepo.AcceptAndExchange(swapID)
	} else {
		updated, err = s.swapRepo.Finalize(swapID, models.SwapStatusRejected)
	}
	if err != nil {
		if apperrors.IsInvalidState(err) || apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve swap request: %w", err)
	}

	responderName := s.userName(callerID)
	if req.Accept {
		s.notifications.Send(swap.RequesterID,
			fmt.Sprintf("%s accepted your shift swap request", responderName),
			"/swaps/"+swapID.String(), models.NotificationSuccess)
		s.audit.Log(&callerID, "SWAP_ACCEPTED",
			fmt.Sprintf("Accepted swap request from user %s", swap.RequesterID), &swapID)
		s.notifyManagers(
			fmt.Sprintf("Shift swap completed between %s and %s", s.userName(swap.RequesterID), responderName),
			"/swaps/"+swapID.String())
	} else {
		s.notifications.Send(swap.RequesterID,
			fmt.Sprintf("%s rejected your shift swap request", responderName),
			"/swaps/"+swapID.String(), models.NotificationWarning)
		s.audit.Log(&callerID, "SWAP_REJECTED",
			fmt.Sprintf("Rejected swap request from user %s", swap.RequesterID), &swapID)
	}

	logrus.WithFields(logrus.Fields{
		"swap_id": swapID,
		"status":  updated.Status,
	}).Info("shift swap resolved")

	return toSwapResponse(updated), nil
}

// Cancel withdraws a pending swap request. Only the requester or an admin
// may cancel; the responder is notified.
func (s *ShiftSwapService) Cancel(swapID, callerID uuid.UUID, callerRole models.UserRole) (*SwapRequestResponse, error) {
	swap, err := s.getSwap(swapID)
	if err != nil {
		return nil, err
	}
	if swap.RequesterID != callerID && callerRole != models.RoleAdmin {
		return nil, apperrors.ErrNotRequester
	}
	if swap.Status.IsTerminal() {
		return nil, apperrors.ErrSwapNotPending
	}

	updated, err := s.swapRepo.Finalize(swapID, models.SwapStatusCancelled)
	if err != nil {
		if apperrors.IsInvalidState(err) || apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to cancel swap request: %w", err)
	}

	s.notifications.Send(swap.ResponderID,
		fmt.Sprintf("%s withdrew their shift swap request", s.userName(swap.RequesterID)),
		"/swaps/"+swapID.String(), models.NotificationInfo)
	s.audit.Log(&callerID, "SWAP_CANCELLED",
		fmt.Sprintf("Cancelled swap request %s", swapID), &swapID)

	return toSwapResponse(updated), nil
}

// GetByID retrieves a swap request visible to the caller. Participants and
// privileged roles may view it.
func (s *ShiftSwapService) GetByID(swapID, callerID uuid.UUID, callerRole models.UserRole) (*SwapRequestResponse, error) {
	swap, err := s.getSwap(swapID)
	if err != nil {
		return nil, err
	}
	if swap.RequesterID != callerID && swap.ResponderID != callerID &&
		callerRole != models.RoleAdmin && callerRole != models.RoleManager {
		return nil, apperrors.ErrNotOwner
	}
	return toSwapResponse(swap), nil
}

// GetForUser lists swap requests where the user is requester or responder
func (s *ShiftSwapService) GetForUser(userID uuid.UUID, page, pageSize int) (*SwapRequestListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	swaps, total, err := s.swapRepo.GetByParticipant(userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list swap requests: %w", err)
	}

	responses := make([]SwapRequestResponse, len(swaps))
	for i := range swaps {
		responses[i] = *toSwapResponse(&swaps[i])
	}
	return &SwapRequestListResponse{
		SwapRequests: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

func (s *ShiftSwapService) getSwap(id uuid.UUID) (*models.ShiftSwapRequest, error) {
	swap, err := s.swapRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSwapRequestNotFound
		}
		return nil, fmt.Errorf("failed to get swap request: %w", err)
	}
	return swap, nil
}

func (s *ShiftSwapService) getShift(id uuid.UUID) (*models.Shift, error) {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return shift, nil
}

// notifyManagers fans a message out to every active manager
func (s *ShiftSwapService) notifyManagers(message, link string) {
	managers, err := s.userRepo.GetActiveByRole(models.RoleManager)
	if err != nil {
		logrus.Warnf("failed to resolve managers for notification: %v", err)
		return
	}
	for _, m := range managers {
		s.notifications.Send(m.ID, message, link, models.NotificationInfo)
	}
}

// userName resolves a display name for notification text, falling back to a
// neutral label when the lookup fails.
func (s *ShiftSwapService) userName(id uuid.UUID) string {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return "A colleague"
	}
	return user.Name
}

func toSwapResponse(swap *models.ShiftSwapRequest) *SwapRequestResponse {
	return &SwapRequestResponse{
		ID:               swap.ID,
		RequesterID:      swap.RequesterID,
		ResponderID:      swap.ResponderID,
		RequesterShiftID: swap.RequesterShiftID,
		ResponderShiftID: swap.ResponderShiftID,
		Status:           swap.Status,
		Reason:           swap.Reason,
		CreatedAt:        swap.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        swap.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
