package service_test

import (
	"testing"
	"time"

	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/mocks"
	"workforce-portal-backend/internal/service"
	"workforce-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ShiftServiceTestSuite defines the test suite for ShiftService
type ShiftServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockShiftRepo *mocks.MockShiftRepositoryInterface
	mockLeaveRepo *mocks.MockLeaveRequestRepositoryInterface
	shiftService  *service.ShiftService
	factories     *testutils.FactorySet
}

// SetupTest sets up the test suite
func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockLeaveRepo = mocks.NewMockLeaveRequestRepositoryInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()

	suite.shiftService = service.NewShiftService(suite.mockShiftRepo, suite.mockLeaveRepo)
}

// TearDownTest cleans up after each test
func (suite *ShiftServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetByID tests retrieving a single shift
func (suite *ShiftServiceTestSuite) TestGetByID() {
	user := suite.factories.User.Create()
	shift := suite.factories.Shift.ForUser(user.ID)

	suite.mockShiftRepo.EXPECT().GetByID(shift.ID).Return(shift, nil).Times(1)

	response, err := suite.shiftService.GetByID(shift.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), shift.ID, response.ID)
	assert.Equal(suite.T(), "2025-06-01", response.Date)
	assert.Equal(suite.T(), user.ID, *response.UserID)
}

// TestGetByIDNotFound tests retrieving a missing shift
func (suite *ShiftServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockShiftRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.shiftService.GetByID(id)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftNotFound)
}

// TestGetForUser tests listing a user's shifts with pagination defaults
func (suite *ShiftServiceTestSuite) TestGetForUser() {
	user := suite.factories.User.Create()
	shifts := []models.Shift{*suite.factories.Shift.ForUser(user.ID), *suite.factories.Shift.ForUser(user.ID)}

	suite.mockShiftRepo.EXPECT().GetByUserID(user.ID, 50, 0).Return(shifts, int64(2), nil).Times(1)

	response, err := suite.shiftService.GetForUser(user.ID, 0, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Shifts, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Equal(suite.T(), 50, response.PageSize)
}

// TestGetSchedule tests the schedule view with approved leave overlaid
func (suite *ShiftServiceTestSuite) TestGetSchedule() {
	onLeaveUser := suite.factories.User.Create()
	workingUser := suite.factories.User.Create()

	date := time.Date(2025, time.July, 8, 0, 0, 0, 0, time.UTC)
	shiftOnLeave := suite.factories.Shift.ForUserOnDate(onLeaveUser.ID, date)
	shiftWorking := suite.factories.Shift.ForUserOnDate(workingUser.ID, date)

	from := time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.July, 11, 0, 0, 0, 0, time.UTC)

	leave := suite.factories.LeaveRequest.Approved(onLeaveUser.ID, from, to)

	suite.mockShiftRepo.EXPECT().
		GetByDateRange(from, to).
		Return([]models.Shift{*shiftOnLeave, *shiftWorking}, nil).
		Times(1)
	suite.mockLeaveRepo.EXPECT().
		GetApprovedInRange(from, to).
		Return([]models.LeaveRequest{*leave}, nil).
		Times(1)

	responses, err := suite.shiftService.GetSchedule("2025-07-07", "2025-07-11")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.True(suite.T(), responses[0].OnLeave)
	assert.False(suite.T(), responses[1].OnLeave)
}

// TestGetScheduleHalfDayLeave tests that half-day leave only covers its own
// period of the day
func (suite *ShiftServiceTestSuite) TestGetScheduleHalfDayLeave() {
	user := suite.factories.User.Create()
	date := time.Date(2025, time.July, 8, 0, 0, 0, 0, time.UTC)

	amShift := suite.factories.Shift.ForUserOnDate(user.ID, date)
	pmShift := suite.factories.Shift.ForUserOnDate(user.ID, date)
	pmShift.ShiftPeriod = models.ShiftPeriodPM

	halfDay := suite.factories.LeaveRequest.Approved(user.ID, date, date)
	halfDay.LeaveTypeID = models.LeaveTypeHalfDayAM
	halfDay.IsHalfDay = true
	period := models.ShiftPeriodAM
	halfDay.HalfDayPeriod = &period

	suite.mockShiftRepo.EXPECT().
		GetByDateRange(date, date).
		Return([]models.Shift{*amShift, *pmShift}, nil).
		Times(1)
	suite.mockLeaveRepo.EXPECT().
		GetApprovedInRange(date, date).
		Return([]models.LeaveRequest{*halfDay}, nil).
		Times(1)

	responses, err := suite.shiftService.GetSchedule("2025-07-08", "2025-07-08")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.True(suite.T(), responses[0].OnLeave, "AM shift is covered by AM half-day leave")
	assert.False(suite.T(), responses[1].OnLeave, "PM shift is not covered by AM half-day leave")
}

// TestGetScheduleInvalidRange tests rejecting an inverted range
func (suite *ShiftServiceTestSuite) TestGetScheduleInvalidRange() {
	responses, err := suite.shiftService.GetSchedule("2025-07-11", "2025-07-07")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), responses)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDateRange)
}

// TestGetScheduleMalformedDate tests rejecting a malformed date
func (suite *ShiftServiceTestSuite) TestGetScheduleMalformedDate() {
	responses, err := suite.shiftService.GetSchedule("07/07/2025", "2025-07-11")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), responses)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// Run the test suite
func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
