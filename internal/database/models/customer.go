package models

// Customer represents a customer whose environments the team supports
type Customer struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`

	// Relationships
	Environments []Environment `json:"environments,omitempty" gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
