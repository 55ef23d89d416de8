package models

// UserRole defines the application roles
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleManager  UserRole = "MANAGER"
	RolePAS      UserRole = "PAS"       // coordinator
	RoleVARShift UserRole = "VAR_SHIFT" // shift engineer
	RoleVARBAU   UserRole = "VAR_BAU"   // business-as-usual engineer
)

// ShiftTeam defines the rotating shift teams. BAU and NONE never appear in
// generated rota output.
type ShiftTeam string

const (
	TeamA    ShiftTeam = "A"
	TeamB    ShiftTeam = "B"
	TeamC    ShiftTeam = "C"
	TeamD    ShiftTeam = "D"
	TeamBAU  ShiftTeam = "BAU"
	TeamNone ShiftTeam = "NONE"
)

// ShiftPeriod defines the period a shift covers
type ShiftPeriod string

const (
	ShiftPeriodAM  ShiftPeriod = "AM" // day shift
	ShiftPeriodPM  ShiftPeriod = "PM" // night shift
	ShiftPeriodOff ShiftPeriod = "OFF"
)

// LeaveRequestStatus defines the lifecycle of a leave request
type LeaveRequestStatus string

const (
	LeaveStatusPending   LeaveRequestStatus = "PENDING"
	LeaveStatusApproved  LeaveRequestStatus = "APPROVED"
	LeaveStatusRejected  LeaveRequestStatus = "REJECTED"
	LeaveStatusCancelled LeaveRequestStatus = "CANCELLED"
)

// SwapRequestStatus defines the lifecycle of a shift swap request.
// ACCEPTED, REJECTED and CANCELLED are terminal.
type SwapRequestStatus string

const (
	SwapStatusPending   SwapRequestStatus = "PENDING"
	SwapStatusAccepted  SwapRequestStatus = "ACCEPTED"
	SwapStatusRejected  SwapRequestStatus = "REJECTED"
	SwapStatusCancelled SwapRequestStatus = "CANCELLED"
)

// AccountAccessStatus defines the state of a user's account on a customer environment
type AccountAccessStatus string

const (
	AccessStatusNone      AccountAccessStatus = "NONE"
	AccessStatusRequested AccountAccessStatus = "REQUESTED"
	AccessStatusGranted   AccountAccessStatus = "GRANTED"
	AccessStatusRevoked   AccountAccessStatus = "REVOKED"
)

// NotificationType defines the display category of a notification
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RolePAS, RoleVARShift, RoleVARBAU:
		return true
	}
	return false
}

// IsValid checks if the ShiftTeam is valid
func (t ShiftTeam) IsValid() bool {
	switch t {
	case TeamA, TeamB, TeamC, TeamD, TeamBAU, TeamNone:
		return true
	}
	return false
}

// IsRotating reports whether the team takes part in the 4-on/4-off rota
func (t ShiftTeam) IsRotating() bool {
	switch t {
	case TeamA, TeamB, TeamC, TeamD:
		return true
	}
	return false
}

// IsValid checks if the ShiftPeriod is valid
func (p ShiftPeriod) IsValid() bool {
	switch p {
	case ShiftPeriodAM, ShiftPeriodPM, ShiftPeriodOff:
		return true
	}
	return false
}

// IsValid checks if the LeaveRequestStatus is valid
func (s LeaveRequestStatus) IsValid() bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected, LeaveStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the SwapRequestStatus is valid
func (s SwapRequestStatus) IsValid() bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from the status
func (s SwapRequestStatus) IsTerminal() bool {
	switch s {
	case SwapStatusAccepted, SwapStatusRejected, SwapStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the AccountAccessStatus is valid
func (s AccountAccessStatus) IsValid() bool {
	switch s {
	case AccessStatusNone, AccessStatusRequested, AccessStatusGranted, AccessStatusRevoked:
		return true
	}
	return false
}

// IsValid checks if the NotificationType is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationInfo, NotificationSuccess, NotificationWarning, NotificationError:
		return true
	}
	return false
}
