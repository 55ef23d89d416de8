package models

// User represents an employee of the workforce portal
type User struct {
	BaseModel
	Name         string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string    `json:"-" gorm:"not null;size:100"`
	Role         UserRole  `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Team         ShiftTeam `json:"team" gorm:"type:varchar(10);not null;default:'NONE'" validate:"required"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
