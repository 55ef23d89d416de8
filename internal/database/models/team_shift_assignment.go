package models

import "time"

// TeamShiftAssignment is one day of the generated team rota: which rotating
// team covers the day shift and which the night shift. One row per calendar
// day of the generated year; regeneration replaces the whole year.
type TeamShiftAssignment struct {
	BaseModel
	Year           int        `json:"year" gorm:"not null;index" validate:"required"`
	Date           time.Time  `json:"date" gorm:"type:date;not null;uniqueIndex" validate:"required"`
	DayShiftTeam   *ShiftTeam `json:"day_shift_team" gorm:"type:varchar(10)"`
	NightShiftTeam *ShiftTeam `json:"night_shift_team" gorm:"type:varchar(10)"`
}

// TableName returns the table name for TeamShiftAssignment
func (TeamShiftAssignment) TableName() string {
	return "team_shift_assignments"
}
