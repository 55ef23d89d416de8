package service_test

import (
	"errors"
	"testing"

	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/mocks"
	"workforce-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// NotificationServiceTestSuite defines the test suite for NotificationService
type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockRepo            *mocks.MockNotificationRepositoryInterface
	notificationService *service.NotificationService
}

// SetupTest sets up the test suite
func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.notificationService = service.NewNotificationService(suite.mockRepo)
}

// TearDownTest cleans up after each test
func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSend tests delivering a notification
func (suite *NotificationServiceTestSuite) TestSend() {
	userID := uuid.New()

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(n *models.Notification) error {
			assert.Equal(suite.T(), userID, n.UserID)
			assert.Equal(suite.T(), "your swap was accepted", n.Message)
			assert.Equal(suite.T(), models.NotificationSuccess, n.Type)
			return nil
		}).
		Times(1)

	suite.notificationService.Send(userID, "your swap was accepted", "/swaps", models.NotificationSuccess)
}

// TestSendUnknownTypeFallsBackToInfo tests the type fallback
func (suite *NotificationServiceTestSuite) TestSendUnknownTypeFallsBackToInfo() {
	userID := uuid.New()

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(n *models.Notification) error {
			assert.Equal(suite.T(), models.NotificationInfo, n.Type)
			return nil
		}).
		Times(1)

	suite.notificationService.Send(userID, "hello", "", models.NotificationType("SHOUT"))
}

// TestSendDeliveryFailureIsSwallowed tests that Send never panics or
// propagates repository errors
func (suite *NotificationServiceTestSuite) TestSendDeliveryFailureIsSwallowed() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("db down")).Times(1)

	suite.notificationService.Send(uuid.New(), "hello", "", models.NotificationInfo)
}

// TestGetForUser tests listing notifications with the unread count
func (suite *NotificationServiceTestSuite) TestGetForUser() {
	userID := uuid.New()
	notifications := []models.Notification{
		{UserID: userID, Message: "one", Type: models.NotificationInfo},
		{UserID: userID, Message: "two", Type: models.NotificationWarning, IsRead: true},
	}

	suite.mockRepo.EXPECT().GetByUserID(userID, 20, 0).Return(notifications, int64(2), nil).Times(1)
	suite.mockRepo.EXPECT().CountUnread(userID).Return(int64(1), nil).Times(1)

	response, err := suite.notificationService.GetForUser(userID, 0, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Notifications, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Equal(suite.T(), int64(1), response.Unread)
	assert.Equal(suite.T(), 20, response.PageSize)
}

// TestMarkRead tests the recipient marking a notification read
func (suite *NotificationServiceTestSuite) TestMarkRead() {
	userID := uuid.New()
	notification := &models.Notification{UserID: userID, Message: "one"}
	notification.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByID(notification.ID).Return(notification, nil).Times(1)
	suite.mockRepo.EXPECT().MarkRead(notification.ID).Return(nil).Times(1)

	err := suite.notificationService.MarkRead(notification.ID, userID)

	assert.NoError(suite.T(), err)
}

// TestMarkReadNotRecipient tests that only the recipient may mark it read
func (suite *NotificationServiceTestSuite) TestMarkReadNotRecipient() {
	notification := &models.Notification{UserID: uuid.New(), Message: "one"}
	notification.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByID(notification.ID).Return(notification, nil).Times(1)

	err := suite.notificationService.MarkRead(notification.ID, uuid.New())

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOwner)
}

// TestMarkReadNotFound tests marking a missing notification
func (suite *NotificationServiceTestSuite) TestMarkReadNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.notificationService.MarkRead(id, uuid.New())

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotificationNotFound)
}

// TestMarkAllRead tests marking everything read
func (suite *NotificationServiceTestSuite) TestMarkAllRead() {
	userID := uuid.New()

	suite.mockRepo.EXPECT().MarkAllRead(userID).Return(nil).Times(1)

	err := suite.notificationService.MarkAllRead(userID)

	assert.NoError(suite.T(), err)
}

// Run the test suite
func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
