package models

import (
	"github.com/google/uuid"
)

// AuditLogEntry records a business action for the audit trail. UserID is nil
// for system-initiated actions.
type AuditLogEntry struct {
	BaseModel
	UserID         *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`
	ActionType     string     `json:"action_type" gorm:"not null;size:50;index" validate:"required,max=50"`
	Details        string     `json:"details" gorm:"type:text"`
	TargetEntityID *uuid.UUID `json:"target_entity_id,omitempty" gorm:"type:uuid"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for AuditLogEntry
func (AuditLogEntry) TableName() string {
	return "audit_logs"
}
