package service_test

import (
	"strings"
	"testing"

	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/mocks"
	"workforce-portal-backend/internal/service"
	"workforce-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ShiftSwapServiceTestSuite defines the test suite for ShiftSwapService
type ShiftSwapServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSwapRepo  *mocks.MockShiftSwapRepositoryInterface
	mockShiftRepo *mocks.MockShiftRepositoryInterface
	mockUserRepo  *mocks.MockUserRepositoryInterface
	mockNotifRepo *mocks.MockNotificationRepositoryInterface
	mockAuditRepo *mocks.MockAuditLogRepositoryInterface
	swapService   *service.ShiftSwapService
	factories     *testutils.FactorySet

	requester *models.User
	responder *models.User
}

// SetupTest sets up the test suite
func (suite *ShiftSwapServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSwapRepo = mocks.NewMockShiftSwapRepositoryInterface(suite.ctrl)
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockNotifRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()

	notifications := service.NewNotificationService(suite.mockNotifRepo)
	audit := service.NewAuditService(suite.mockAuditRepo)
	suite.swapService = service.NewShiftSwapService(suite.mockSwapRepo, suite.mockShiftRepo, suite.mockUserRepo, notifications, audit, validator.New())

	suite.requester = suite.factories.User.WithTeam(models.TeamA)
	suite.responder = suite.factories.User.WithTeam(models.TeamC)
}

// TearDownTest cleans up after each test
func (suite *ShiftSwapServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftSwapServiceTestSuite) proposeRequest(requesterShiftID, responderShiftID uuid.UUID) service.ProposeSwapRequest {
	return service.ProposeSwapRequest{
		ResponderID:      suite.responder.ID.String(),
		RequesterShiftID: requesterShiftID.String(),
		ResponderShiftID: responderShiftID.String(),
		Reason:           "family commitment",
	}
}

// TestPropose tests the happy path of proposing a swap
func (suite *ShiftSwapServiceTestSuite) TestPropose() {
	requesterShift := suite.factories.Shift.ForUser(suite.requester.ID)
	responderShift := suite.factories.Shift.ForUser(suite.responder.ID)

	suite.mockShiftRepo.EXPECT().GetByID(requesterShift.ID).Return(requesterShift, nil).Times(1)
	suite.mockShiftRepo.EXPECT().GetByID(responderShift.ID).Return(responderShift, nil).Times(1)
	suite.mockSwapRepo.EXPECT().GetPendingByShiftID(requesterShift.ID).Return(false, nil).Times(1)
	suite.mockSwapRepo.EXPECT().GetPendingByShiftID(responderShift.ID).Return(false, nil).Times(1)

	suite.mockSwapRepo.EXPECT().
		CreatePending(gomock.Any(), []uuid.UUID{requesterShift.ID, responderShift.ID}).
		DoAndReturn(func(swap *models.ShiftSwapRequest, shiftIDs []uuid.UUID) error {
			swap.ID = uuid.New()
			return nil
		}).
		Times(1)

	suite.mockUserRepo.EXPECT().GetByID(suite.requester.ID).Return(suite.requester, nil).Times(1)
	suite.mockNotifRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(n *models.Notification) error {
			assert.Equal(suite.T(), suite.responder.ID, n.UserID)
			assert.Contains(suite.T(), n.Message, suite.requester.Name)
			return nil
		}).
		Times(1)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.swapService.Propose(suite.requester.ID, suite.proposeRequest(requesterShift.ID, responderShift.ID))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.SwapStatusPending, response.Status)
	assert.Equal(suite.T(), suite.requester.ID, response.RequesterID)
	assert.Equal(suite.T(), suite.responder.ID, response.ResponderID)
}

// TestProposeSelfSwap tests rejecting a swap with oneself
func (suite *ShiftSwapServiceTestSuite) TestProposeSelfSwap() {
	req := service.ProposeSwapRequest{
		ResponderID:      suite.requester.ID.String(),
		RequesterShiftID: uuid.New().String(),
		ResponderShiftID: uuid.New().String(),
	}

	response, err := suite.swapService.Propose(suite.requester.ID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSelfSwap)
}

// TestProposeSameShift tests rejecting a swap of a shift with itself
func (suite *ShiftSwapServiceTestSuite) TestProposeSameShift() {
	shiftID := uuid.New()
	response, err := suite.swapService.Propose(suite.requester.ID, suite.proposeRequest(shiftID, shiftID))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestProposeInvalidResponderID tests rejecting a malformed responder ID
func (suite *ShiftSwapServiceTestSuite) TestProposeInvalidResponderID() {
	req := service.ProposeSwapRequest{
		ResponderID:      "not-a-uuid",
		RequesterShiftID: uuid.New().String(),
		ResponderShiftID: uuid.New().String(),
	}

	response, err := suite.swapService.Propose(suite.requester.ID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestProposeReasonTooLong tests rejecting a reason above the length cap
func (suite *ShiftSwapServiceTestSuite) TestProposeReasonTooLong() {
	req := suite.proposeRequest(uuid.New(), uuid.New())
	req.Reason = strings.Repeat("x", 501)

	response, err := suite.swapService.Propose(suite.requester.ID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestProposeShiftNotFound tests proposing against a missing shift
func (suite *ShiftSwapServiceTestSuite) TestProposeShiftNotFound() {
	requesterShiftID := uuid.New()
	responderShiftID := uuid.New()

	suite.mockShiftRepo.EXPECT().GetByID(requesterShiftID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.swapService.Propose(suite.requester.ID, suite.proposeRequest(requesterShiftID, responderShiftID))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftNotFound)
}

// TestProposeShiftNotOwned tests proposing with a shift the requester does not own
func (suite *ShiftSwapServiceTestSuite) TestProposeShiftNotOwned() {
	otherUser := suite.factories.User.WithTeam(models.TeamB)
	requesterShift := suite.factories.Shift.ForUser(otherUser.ID)
	responderShift := suite.factories.Shift.ForUser(suite.responder.ID)

	suite.mockShiftRepo.EXPECT().GetByID(requesterShift.ID).Return(requesterShift, nil).Times(1)
	suite.mockShiftRepo.EXPECT().GetByID(responderShift.ID).Return(responderShift, nil).Times(1)

	response, err := suite.swapService.Propose(suite.requester.ID, suite.proposeRequest(requesterShift.ID, responderShift.ID))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftNotOwned)
}

// TestProposeUnassignedShift tests proposing with an open, unowned shift
func (suite *ShiftSwapServiceTestSuite) TestProposeUnassignedShift() {
	requesterShift := suite.factories.Shift.Create() // no owner
	responderShift := suite.factories.Shift.ForUser(suite.responder.ID)

	suite.mockShiftRepo.EXPECT().GetByID(requesterShift.ID).Return(requesterShift, nil).Times(1)
	suite.mockShiftRepo.EXPECT().GetByID(responderShift.ID).Return(responderShift, nil).Times(1)

	response, err := suite.swapService.Propose(suite.requester.ID, suite.proposeRequest(requesterShift.ID, responderShift.ID))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftNotOwned)
}

// TestProposeShiftAlreadyPending tests that a shift may carry only one pending swap
func (suite *ShiftSwapServiceTestSuite) TestProposeShiftAlreadyPending() {
	requesterShift := suite.factories.Shift.ForUser(suite.requester.ID)
	responderShift := suite.factories.Shift.ForUser(suite.responder.ID)

	suite.mockShiftRepo.EXPECT().GetByID(requesterShift.ID).Return(requesterShift, nil).Times(1)
	suite.mockShiftRepo.EXPECT().GetByID(responderShift.ID).Return(responderShift, nil).Times(1)
	suite.mockSwapRepo.EXPECT().GetPendingByShiftID(requesterShift.ID).Return(true, nil).Times(1)

	response, err := suite.swapService.Propose(suite.requester.ID, suite.proposeRequest(requesterShift.ID, responderShift.ID))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidState(err))
}

// TestRespondAccept tests accepting a pending swap
func (suite *ShiftSwapServiceTestSuite) TestRespondAccept() {
	swap := suite.factories.SwapRequest.Create(suite.requester.ID, suite.responder.ID, uuid.New(), uuid.New())

	accepted := *swap
	accepted.Status = models.SwapStatusAccepted

	manager := suite.factories.User.WithRole(models.RoleManager)

	suite.mockSwapRepo.EXPECT().GetByID(swap.ID).Return(swap, nil).Times(1)
	suite.mockSwapRepo.EXPECT().AcceptAndExchange(swap.ID).Return(&accepted, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(suite.responder.ID).Return(suite.responder, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(suite.requester.ID).Return(suite.requester, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetActiveByRole(models.RoleManager).Return([]models.User{*manager}, nil).Times(1)
	suite.mockNotifRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(n *models.Notification) error {
			assert.Equal(suite.T(), suite.requester.ID, n.UserID)
			assert.Equal(suite.T(), models.NotificationSuccess, n.Type)
			return nil
		}).
		Times(1)
	suite.mockNotifRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(n *models.Notification) error {
			assert.Equal(suite.T(), manager.ID, n.UserID)
			assert.Equal(suite.T(), models.NotificationInfo, n.Type)
			return nil
		}).
		Times(1)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.swapService.Respond(swap.ID, suite.responder.ID, service.RespondSwapRequest{Accept: true})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SwapStatusAccepted, response.Status)
}

// TestRespondReject tests rejecting a pending swap
func (suite *ShiftSwapServiceTestSuite) TestRespondReject() {
	swap := suite.factories.SwapRequest.Create(suite.requester.ID, suite.responder.ID, uuid.New(), uuid.New())

	rejected := *swap
	rejected.Status = models.SwapStatusRejected

	suite.mockSwapRepo.EXPECT().GetByID(swap.ID).Return(swap, nil).Times(1)
	suite.mockSwapRepo.EXPECT().Finalize(swap.ID, models.SwapStatusRejected).Return(&rejected, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(suite.responder.ID).Return(suite.responder, nil).Times(1)
	suite.mockNotifRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.swapService.Respond(swap.ID, suite.responder.ID, service.RespondSwapRequest{Accept: false})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SwapStatusRejected, response.Status)
}

// TestRespondNotResponder tests that only the designated responder may answer
func (suite *ShiftSwapServiceTestSuite) TestRespondNotResponder() {
	swap := suite.factories.SwapRequest.Create(suite.requester.ID, suite.responder.ID, uuid.New(), uuid.New())

	suite.mockSwapRepo.EXPECT().GetByID(swap.ID).Return(swap, nil).Times(1)

	response, err := suite.swapService.Respond(swap.ID, suite.requester.ID, service.RespondSwapRequest{Accept: true})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotResponder)
}

// TestRespondAlreadyResolved tests answering a swap that is no longer pending
func (suite *ShiftSwapServiceTestSuite) TestRespondAlreadyResolved() {
	swap := suite.factories.SwapRequest.Create(suite.requester.ID, suite.responder.ID, uuid.New(), uuid.New())
	swap.Status = models.SwapStatusAccepted

	suite.mockSwapRepo.EXPECT().GetByID(swap.ID).Return(swap, nil).Times(1)

	response, err := suite.swapService.Respond(swap.ID, suite.responder.ID, service.RespondSwapRequest{Accept: true})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSwapNotPending)
}

// TestRespondNotFound tests answering a swap that does not exist
func (suite *ShiftSwapServiceTestSuite) TestRespondNotFound() {
	swapID := uuid.New()
	suite.mockSwapRepo.EXPECT().GetByID(swapID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.swapService.Respond(swapID, suite.responder.ID, service.RespondSwapRequest{Accept: true})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSwapRequestNotFound)
}

// TestRespondLostRace tests the losing side of two concurrent responses. The
// repository reports the request already resolved and the error passes
// through untouched.
func (suite *ShiftSwapServiceTestSuite) TestRespondLostRace() {
	swap := suite.factories.SwapRequest.Create(suite.requester.ID, suite.responder.ID, uuid.New(), uuid.New())

	suite.mockSwapRepo.EXPECT().GetByID(swap.ID).Return(swap, nil).Times(1)
	suite.mockSwapRepo.EXPECT().AcceptAndExchange(swap.ID).Return(nil, apperrors.ErrSwapNotPending).Times(1)

	response, err := suite.swapService.Respond(swap.ID, suite.responder.ID, service.RespondSwapRequest{Accept: true})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSwapNotPending)
}

// TestCancelByRequester tests the requester withdrawing a pending swap
func (suite *ShiftSwapServiceTestSuite) TestCancelByRequester() {
	swap := suite.factories.SwapRequest.Create(suite.requester.ID, suite.responder.ID, uuid.New(), uuid.New())

	cancelled := *swap
	cancelled.Status = models.SwapStatusCancelled

	suite.mockSwapRepo.EXPECT().GetByID(swap.ID).Return(swap, nil).Times(1)
	suite.mockSwapRepo.EXPECT().Finalize(swap.ID, models.SwapStatusCancelled).Return(&cancelled, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(suite.requester.ID).Return(suite.requester, nil).Times(1)
	suite.mockNotifRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(n *models.Notification) error {
			assert.Equal(suite.T(), suite.responder.ID, n.UserID)
			return nil
		}).
		Times(1)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.swapService.Cancel(swap.ID, suite.requester.ID, models.RoleVARShift)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SwapStatusCancelled, response.Status)
}

// TestCancelByAdmin tests an admin withdrawing someone else's swap
func (suite *ShiftSwapServiceTestSuite) TestCancelByAdmin() {
	admin := suite.factories.User.WithRole(models.RoleAdmin)
	swap := suite.factories.SwapRequest.Create(suite.requester.ID, suite.responder.ID, uuid.New(), uuid.New())

	cancelled := *swap
	cancelled.Status = models.SwapStatusCancelled

	suite.mockSwapRepo.EXPECT().GetByID(swap.ID).Return(swap, nil).Times(1)
	suite.mockSwapRepo.EXPECT().Finalize(swap.ID, models.SwapStatusCancelled).Return(&cancelled, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(suite.requester.ID).Return(suite.requester, nil).Times(1)
	suite.mockNotifRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.swapService.Cancel(swap.ID, admin.ID, models.RoleAdmin)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SwapStatusCancelled, response.Status)
}

// TestCancelNotRequester tests that an unrelated user cannot withdraw a swap
func (suite *ShiftSwapServiceTestSuite) TestCancelNotRequester() {
	swap := suite.factories.SwapRequest.Create(suite.requester.ID, suite.responder.ID, uuid.New(), uuid.New())

	suite.mockSwapRepo.EXPECT().GetByID(swap.ID).Return(swap, nil).Times(1)

	response, err := suite.swapService.Cancel(swap.ID, suite.responder.ID, models.RoleVARShift)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotRequester)
}

// TestGetByIDParticipant tests that participants may view a swap
func (suite *ShiftSwapServiceTestSuite) TestGetByIDParticipant() {
	swap := suite.factories.SwapRequest.Create(suite.requester.ID, suite.responder.ID, uuid.New(), uuid.New())

	suite.mockSwapRepo.EXPECT().GetByID(swap.ID).Return(swap, nil).Times(1)

	response, err := suite.swapService.GetByID(swap.ID, suite.responder.ID, models.RoleVARShift)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), swap.ID, response.ID)
}

// TestGetByIDUnrelatedUser tests that a non-participant without a privileged
// role cannot view a swap
func (suite *ShiftSwapServiceTestSuite) TestGetByIDUnrelatedUser() {
	swap := suite.factories.SwapRequest.Create(suite.requester.ID, suite.responder.ID, uuid.New(), uuid.New())

	suite.mockSwapRepo.EXPECT().GetByID(swap.ID).Return(swap, nil).Times(1)

	response, err := suite.swapService.GetByID(swap.ID, uuid.New(), models.RoleVARShift)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOwner)
}

// TestGetByIDManager tests that a manager may view any swap
func (suite *ShiftSwapServiceTestSuite) TestGetByIDManager() {
	swap := suite.factories.SwapRequest.Create(suite.requester.ID, suite.responder.ID, uuid.New(), uuid.New())

	suite.mockSwapRepo.EXPECT().GetByID(swap.ID).Return(swap, nil).Times(1)

	response, err := suite.swapService.GetByID(swap.ID, uuid.New(), models.RoleManager)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), swap.ID, response.ID)
}

// TestGetForUser tests listing a user's swaps with pagination defaults
func (suite *ShiftSwapServiceTestSuite) TestGetForUser() {
	swap := suite.factories.SwapRequest.Create(suite.requester.ID, suite.responder.ID, uuid.New(), uuid.New())

	suite.mockSwapRepo.EXPECT().
		GetByParticipant(suite.requester.ID, 20, 0).
		Return([]models.ShiftSwapRequest{*swap}, int64(1), nil).
		Times(1)

	response, err := suite.swapService.GetForUser(suite.requester.ID, 0, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.SwapRequests, 1)
	assert.Equal(suite.T(), int64(1), response.Total)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 20, response.PageSize)
}

// Run the test suite
func TestShiftSwapServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftSwapServiceTestSuite))
}
