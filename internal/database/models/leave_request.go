package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaveRequest represents a request for time off. Created PENDING by the
// owner; a manager moves it to APPROVED or REJECTED, or the owner cancels it
// while still PENDING.
type LeaveRequest struct {
	BaseModel
	UserID        uuid.UUID          `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	LeaveTypeID   LeaveTypeID        `json:"leave_type_id" gorm:"type:varchar(30);not null" validate:"required"`
	StartDate     time.Time          `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate       time.Time          `json:"end_date" gorm:"type:date;not null" validate:"required"`
	IsHalfDay     bool               `json:"is_half_day" gorm:"not null;default:false"`
	HalfDayPeriod *ShiftPeriod       `json:"half_day_period,omitempty" gorm:"type:varchar(10)"`
	Reason        string             `json:"reason,omitempty" gorm:"size:500"`
	Status        LeaveRequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	ManagerID     *uuid.UUID         `json:"manager_id,omitempty" gorm:"type:uuid"`
	Retrospective bool               `json:"retrospective" gorm:"not null;default:false"`

	// Relationships
	User    User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Manager *User `json:"manager,omitempty" gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for LeaveRequest
func (LeaveRequest) TableName() string {
	return "leave_requests"
}
