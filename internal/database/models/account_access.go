package models

import (
	"github.com/google/uuid"
)

// AccountAccess tracks the state of a user's account on a customer
// environment. One row per (user, environment) pair, upserted on change.
type AccountAccess struct {
	BaseModel
	UserID        uuid.UUID           `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_account_access_user_env" validate:"required"`
	EnvironmentID uuid.UUID           `json:"environment_id" gorm:"type:uuid;not null;uniqueIndex:idx_account_access_user_env" validate:"required"`
	Status        AccountAccessStatus `json:"status" gorm:"type:varchar(20);not null;default:'NONE'" validate:"required"`

	// Relationships
	User        User        `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Environment Environment `json:"environment,omitempty" gorm:"foreignKey:EnvironmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AccountAccess
func (AccountAccess) TableName() string {
	return "account_access"
}
