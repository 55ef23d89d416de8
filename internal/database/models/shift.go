package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift represents a single assigned working shift. A shift is owned by at
// most one user at a time; ownership may be transferred by an accepted swap.
// Team-level shifts carry a nil UserID.
type Shift struct {
	BaseModel
	Date          time.Time   `json:"date" gorm:"type:date;not null;index" validate:"required"`
	UserID        *uuid.UUID  `json:"user_id,omitempty" gorm:"type:uuid;index"`
	TeamID        ShiftTeam   `json:"team_id" gorm:"type:varchar(10);not null" validate:"required"`
	ShiftPeriod   ShiftPeriod `json:"shift_period" gorm:"type:varchar(10);not null" validate:"required"`
	IsSwapPending bool        `json:"is_swap_pending" gorm:"not null;default:false"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}
