package testutils

import (
	"fmt"
	"time"

	"workforce-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The email embeds part of
// the UUID so repeated calls never collide on the unique index.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Jane Doe",
		Email: fmt.Sprintf("jane.doe+%s@test.com", id.String()[:8]),
		// bcrypt hash of "password123"
		PasswordHash: "$2a$10$AtDvKXRBuZkyL8WvxU3zmOQN5TRN8gBmCrYKxPwGOB1z6nUy05c1K",
		Role:         models.RoleVARShift,
		Team:         models.TeamA,
		IsActive:     true,
	}
}

// WithTeam sets the shift team for the user
func (f *UserFactory) WithTeam(team models.ShiftTeam) *models.User {
	user := f.Create()
	user.Team = team
	return user
}

// WithRole sets the role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Inactive creates a deactivated user
func (f *UserFactory) Inactive() *models.User {
	user := f.Create()
	user.IsActive = false
	return user
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test Shift with default values
func (f *ShiftFactory) Create() *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date:        time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		TeamID:      models.TeamA,
		ShiftPeriod: models.ShiftPeriodAM,
	}
}

// ForUser assigns the shift to a user
func (f *ShiftFactory) ForUser(userID uuid.UUID) *models.Shift {
	shift := f.Create()
	shift.UserID = &userID
	return shift
}

// OnDate sets the shift date
func (f *ShiftFactory) OnDate(date time.Time) *models.Shift {
	shift := f.Create()
	shift.Date = date
	return shift
}

// ForUserOnDate assigns the shift to a user on a specific date
func (f *ShiftFactory) ForUserOnDate(userID uuid.UUID, date time.Time) *models.Shift {
	shift := f.Create()
	shift.UserID = &userID
	shift.Date = date
	return shift
}

// SwapRequestFactory provides methods to create test ShiftSwapRequest data
type SwapRequestFactory struct{}

// NewSwapRequestFactory creates a new SwapRequestFactory
func NewSwapRequestFactory() *SwapRequestFactory {
	return &SwapRequestFactory{}
}

// Create creates a PENDING swap request between the given parties and shifts
func (f *SwapRequestFactory) Create(requesterID, responderID, requesterShiftID, responderShiftID uuid.UUID) *models.ShiftSwapRequest {
	return &models.ShiftSwapRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RequesterID:      requesterID,
		ResponderID:      responderID,
		RequesterShiftID: requesterShiftID,
		ResponderShiftID: responderShiftID,
		Status:           models.SwapStatusPending,
		Reason:           "family commitment",
	}
}

// LeaveRequestFactory provides methods to create test LeaveRequest data
type LeaveRequestFactory struct{}

// NewLeaveRequestFactory creates a new LeaveRequestFactory
func NewLeaveRequestFactory() *LeaveRequestFactory {
	return &LeaveRequestFactory{}
}

// Create creates a PENDING annual leave request for the user
func (f *LeaveRequestFactory) Create(userID uuid.UUID) *models.LeaveRequest {
	return &models.LeaveRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:      userID,
		LeaveTypeID: models.LeaveTypeAnnual,
		StartDate:   time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, time.July, 11, 0, 0, 0, 0, time.UTC),
		Status:      models.LeaveStatusPending,
	}
}

// Approved creates an approved leave request covering the given range
func (f *LeaveRequestFactory) Approved(userID uuid.UUID, start, end time.Time) *models.LeaveRequest {
	req := f.Create(userID)
	req.StartDate = start
	req.EndDate = end
	req.Status = models.LeaveStatusApproved
	return req
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Shift        *ShiftFactory
	SwapRequest  *SwapRequestFactory
	LeaveRequest *LeaveRequestFactory
	Customer     *CustomerFactory
	Environment  *EnvironmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Shift:        NewShiftFactory(),
		SwapRequest:  NewSwapRequestFactory(),
		LeaveRequest: NewLeaveRequestFactory(),
		Customer:     NewCustomerFactory(),
		Environment:  NewEnvironmentFactory(),
	}
}

// CustomerFactory provides methods to create test Customer data
type CustomerFactory struct{}

// NewCustomerFactory creates a new CustomerFactory
func NewCustomerFactory() *CustomerFactory {
	return &CustomerFactory{}
}

// Create creates a test Customer with a unique name
func (f *CustomerFactory) Create() *models.Customer {
	id := uuid.New()
	return &models.Customer{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: fmt.Sprintf("Customer %s", id.String()[:8]),
	}
}

// EnvironmentFactory provides methods to create test Environment data
type EnvironmentFactory struct{}

// NewEnvironmentFactory creates a new EnvironmentFactory
func NewEnvironmentFactory() *EnvironmentFactory {
	return &EnvironmentFactory{}
}

// Create creates a test Environment under the given customer
func (f *EnvironmentFactory) Create(customerID uuid.UUID) *models.Environment {
	return &models.Environment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CustomerID:          customerID,
		Name:                "Production",
		RequestInstructions: "Raise a ticket with the platform team",
	}
}
