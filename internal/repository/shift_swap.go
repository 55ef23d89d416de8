package repository

import (
	"errors"

	apperrors "workforce-portal-backend/internal/errors"

	"workforce-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftSwapRepository handles database operations for shift swap requests
type ShiftSwapRepository struct {
	db *gorm.DB
}

// NewShiftSwapRepository creates a new shift swap repository
func NewShiftSwapRepository(db *gorm.DB) *ShiftSwapRepository {
	return &ShiftSwapRepository{db: db}
}

// CreatePending creates a new PENDING swap request and flags both referenced
// shifts as swap pending in one transaction, so a failure part-way leaves
// neither the request nor stray flags behind.
func (r *ShiftSwapRepository) CreatePending(req *models.ShiftSwapRequest, shiftIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		return tx.Model(&models.Shift{}).
			Where("id IN ?", shiftIDs).
			Update("is_swap_pending", true).Error
	})
}

// GetByID retrieves a swap request by ID
func (r *ShiftSwapRepository) GetByID(id uuid.UUID) (*models.ShiftSwapRequest, error) {
	var req models.ShiftSwapRequest
	err := r.db.First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByParticipant retrieves swap requests where the user is requester or
// responder, newest first
func (r *ShiftSwapRepository) GetByParticipant(userID uuid.UUID, limit, offset int) ([]models.ShiftSwapRequest, int64, error) {
	var reqs []models.ShiftSwapRequest
	var total int64

	query := r.db.Model(&models.ShiftSwapRequest{}).Where("requester_id = ? OR responder_id = ?", userID, userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("requester_id = ? OR responder_id = ?", userID, userID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&reqs).Error
	return reqs, total, err
}

// GetPendingByShiftID reports whether a PENDING swap already references the shift
func (r *ShiftSwapRepository) GetPendingByShiftID(shiftID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ShiftSwapRequest{}).
		Where("(requester_shift_id = ? OR responder_shift_id = ?) AND status = ?", shiftID, shiftID, models.SwapStatusPending).
		Count(&count).Error
	return count > 0, err
}

// AcceptAndExchange atomically moves a PENDING request to ACCEPTED and
// exchanges the owners of the two referenced shifts. The swap row is locked
// for the duration of the transaction so a concurrent accept, reject or
// cancel on the same request observes either PENDING or the final state,
// never an intermediate one. Returns ErrSwapNotPending when the request has
// already left PENDING; the exchange is then not applied again.
func (r *ShiftSwapRepository) AcceptAndExchange(swapID uuid.UUID) (*models.ShiftSwapRequest, error) {
	var req models.ShiftSwapRequest

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, "id = ?", swapID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSwapRequestNotFound
			}
			return err
		}

		if req.Status != models.SwapStatusPending {
			return apperrors.ErrSwapNotPending
		}

		var requesterShift, responderShift models.Shift
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&requesterShift, "id = ?", req.RequesterShiftID).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&responderShift, "id = ?", req.ResponderShiftID).Error; err != nil {
			return err
		}

		// Exchange ownership; the combined owner set is unchanged.
		requesterShift.UserID, responderShift.UserID = responderShift.UserID, requesterShift.UserID
		requesterShift.IsSwapPending = false
		responderShift.IsSwapPending = false

		if err := tx.Save(&requesterShift).Error; err != nil {
			return err
		}
		if err := tx.Save(&responderShift).Error; err != nil {
			return err
		}

		req.Status = models.SwapStatusAccepted
		return tx.Save(&req).Error
	})
	if err != nil {
		return nil, err
	}

	return &req, nil
}

// Finalize atomically moves a PENDING request to the given terminal status
// without touching shift ownership (reject and cancel paths). Uses the same
// row lock and PENDING check as AcceptAndExchange.
func (r *ShiftSwapRepository) Finalize(swapID uuid.UUID, status models.SwapRequestStatus) (*models.ShiftSwapRequest, error) {
	var req models.ShiftSwapRequest

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, "id = ?", swapID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSwapRequestNotFound
			}
			return err
		}

		if req.Status != models.SwapStatusPending {
			return apperrors.ErrSwapNotPending
		}

		if err := tx.Model(&models.Shift{}).
			Where("id IN ?", []uuid.UUID{req.RequesterShiftID, req.ResponderShiftID}).
			Update("is_swap_pending", false).Error; err != nil {
			return err
		}

		req.Status = status
		return tx.Save(&req).Error
	})
	if err != nil {
		return nil, err
	}

	return &req, nil
}
