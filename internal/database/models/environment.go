package models

import (
	"github.com/google/uuid"
)

// Environment represents a single customer environment engineers may need
// account access to
type Environment struct {
	BaseModel
	CustomerID          uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name                string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	RequestInstructions string    `json:"request_instructions" gorm:"type:text"`

	// Relationships
	Customer Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Environment
func (Environment) TableName() string {
	return "environments"
}
