package models

import (
	"github.com/google/uuid"
)

// ShiftSwapRequest represents a two-party shift exchange proposal. Created
// PENDING by the requester; the responder moves it to ACCEPTED or REJECTED,
// or the requester (or an admin) cancels it first. Acceptance exchanges the
// owners of the two referenced shifts.
type ShiftSwapRequest struct {
	BaseModel
	RequesterID      uuid.UUID         `json:"requester_id" gorm:"type:uuid;not null;index" validate:"required"`
	ResponderID      uuid.UUID         `json:"responder_id" gorm:"type:uuid;not null;index" validate:"required"`
	RequesterShiftID uuid.UUID         `json:"requester_shift_id" gorm:"type:uuid;not null" validate:"required"`
	ResponderShiftID uuid.UUID         `json:"responder_shift_id" gorm:"type:uuid;not null" validate:"required"`
	Status           SwapRequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	Reason           string            `json:"reason,omitempty" gorm:"size:500"`

	// Relationships
	Requester      User  `json:"requester,omitempty" gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	Responder      User  `json:"responder,omitempty" gorm:"foreignKey:ResponderID;constraint:OnDelete:CASCADE"`
	RequesterShift Shift `json:"requester_shift,omitempty" gorm:"foreignKey:RequesterShiftID;constraint:OnDelete:CASCADE"`
	ResponderShift Shift `json:"responder_shift,omitempty" gorm:"foreignKey:ResponderShiftID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftSwapRequest
func (ShiftSwapRequest) TableName() string {
	return "shift_swap_requests"
}
