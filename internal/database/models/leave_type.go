package models

// LeaveTypeID identifies a kind of leave
type LeaveTypeID string

const (
	LeaveTypeAnnual             LeaveTypeID = "ANNUAL"
	LeaveTypeSick               LeaveTypeID = "SICK"
	LeaveTypeTraining           LeaveTypeID = "TRAINING"
	LeaveTypeHalfDayAM          LeaveTypeID = "HALF_DAY_AM"
	LeaveTypeHalfDayPM          LeaveTypeID = "HALF_DAY_PM"
	LeaveTypeCompassionate      LeaveTypeID = "COMPASSIONATE"
	LeaveTypeMaternityPaternity LeaveTypeID = "MATERNITY_PATERNITY"
	LeaveTypeUnpaid             LeaveTypeID = "UNPAID"
	LeaveTypeTOIL               LeaveTypeID = "TOIL" // time off in lieu
)

// LeaveType describes one entry of the leave-type catalog
type LeaveType struct {
	ID        LeaveTypeID `json:"id" yaml:"id"`
	Name      string      `json:"name" yaml:"name"`
	ShortCode string      `json:"short_code" yaml:"short_code"`
}

// DefaultLeaveTypes is the built-in leave-type catalog, used when no
// config/leave_types.yaml overrides it.
var DefaultLeaveTypes = []LeaveType{
	{ID: LeaveTypeAnnual, Name: "Annual Leave", ShortCode: "AL"},
	{ID: LeaveTypeSick, Name: "Sick Leave", ShortCode: "SL"},
	{ID: LeaveTypeTraining, Name: "Training", ShortCode: "TR"},
	{ID: LeaveTypeHalfDayAM, Name: "Half Day (AM)", ShortCode: "HDAM"},
	{ID: LeaveTypeHalfDayPM, Name: "Half Day (PM)", ShortCode: "HDPM"},
	{ID: LeaveTypeCompassionate, Name: "Compassionate Leave", ShortCode: "CL"},
	{ID: LeaveTypeMaternityPaternity, Name: "Maternity/Paternity", ShortCode: "MP"},
	{ID: LeaveTypeUnpaid, Name: "Unpaid Leave", ShortCode: "UL"},
	{ID: LeaveTypeTOIL, Name: "Time Off In Lieu", ShortCode: "TOIL"},
}

// IsValid checks if the LeaveTypeID is valid
func (id LeaveTypeID) IsValid() bool {
	switch id {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypeTraining, LeaveTypeHalfDayAM,
		LeaveTypeHalfDayPM, LeaveTypeCompassionate, LeaveTypeMaternityPaternity,
		LeaveTypeUnpaid, LeaveTypeTOIL:
		return true
	}
	return false
}

// IsHalfDay reports whether the leave type covers half a working day. This is
// the single authority for the derivation; callers never set the flag directly.
func (id LeaveTypeID) IsHalfDay() bool {
	return id == LeaveTypeHalfDayAM || id == LeaveTypeHalfDayPM
}

// HalfDayPeriod returns the covered period for half-day types, nil otherwise
func (id LeaveTypeID) HalfDayPeriod() *ShiftPeriod {
	switch id {
	case LeaveTypeHalfDayAM:
		p := ShiftPeriodAM
		return &p
	case LeaveTypeHalfDayPM:
		p := ShiftPeriodPM
		return &p
	}
	return nil
}
