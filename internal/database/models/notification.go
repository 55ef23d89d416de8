package models

import (
	"github.com/google/uuid"
)

// Notification represents an in-app message delivered to a single user
type Notification struct {
	BaseModel
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Message string           `json:"message" gorm:"not null;size:500" validate:"required"`
	Link    string           `json:"link,omitempty" gorm:"size:200"`
	Type    NotificationType `json:"type" gorm:"type:varchar(20);not null;default:'info'"`
	IsRead  bool             `json:"is_read" gorm:"not null;default:false"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
