package service_test

import (
	"testing"

	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/mocks"
	"workforce-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// EnvironmentServiceTestSuite defines the test suite for EnvironmentService
type EnvironmentServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockEnvironmentRepositoryInterface
	mockCustomerRepo   *mocks.MockCustomerRepositoryInterface
	mockAuditRepo      *mocks.MockAuditLogRepositoryInterface
	environmentService *service.EnvironmentService
}

// SetupTest sets up the test suite
func (suite *EnvironmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEnvironmentRepositoryInterface(suite.ctrl)
	suite.mockCustomerRepo = mocks.NewMockCustomerRepositoryInterface(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)

	audit := service.NewAuditService(suite.mockAuditRepo)
	suite.environmentService = service.NewEnvironmentService(suite.mockRepo, suite.mockCustomerRepo, audit, validator.New())
}

// TearDownTest cleans up after each test
func (suite *EnvironmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests adding an environment under a customer
func (suite *EnvironmentServiceTestSuite) TestCreate() {
	customer := &models.Customer{Name: "Contoso Retail"}
	customer.ID = uuid.New()
	req := service.CreateEnvironmentRequest{
		CustomerID:          customer.ID.String(),
		Name:                "Production",
		RequestInstructions: "Raise a ticket with the service desk",
	}

	suite.mockCustomerRepo.EXPECT().GetByID(customer.ID).Return(customer, nil).Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(env *models.Environment) error {
			env.ID = uuid.New()
			assert.Equal(suite.T(), customer.ID, env.CustomerID)
			assert.Equal(suite.T(), "Production", env.Name)
			return nil
		}).
		Times(1)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.environmentService.Create(req, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Production", response.Name)
	assert.Equal(suite.T(), "Raise a ticket with the service desk", response.RequestInstructions)
}

// TestCreateInvalidCustomerID tests rejecting a malformed customer ID
func (suite *EnvironmentServiceTestSuite) TestCreateInvalidCustomerID() {
	req := service.CreateEnvironmentRequest{CustomerID: "not-a-uuid", Name: "Production"}

	response, err := suite.environmentService.Create(req, nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateCustomerNotFound tests creating under a missing customer
func (suite *EnvironmentServiceTestSuite) TestCreateCustomerNotFound() {
	customerID := uuid.New()
	req := service.CreateEnvironmentRequest{CustomerID: customerID.String(), Name: "Production"}

	suite.mockCustomerRepo.EXPECT().GetByID(customerID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.environmentService.Create(req, nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCustomerNotFound)
}

// TestList tests listing environments filtered by customer
func (suite *EnvironmentServiceTestSuite) TestList() {
	customerID := uuid.New()
	envs := []models.Environment{
		{CustomerID: customerID, Name: "Production"},
		{CustomerID: customerID, Name: "Staging"},
	}

	suite.mockRepo.EXPECT().GetAll(&customerID).Return(envs, nil).Times(1)

	responses, err := suite.environmentService.List(&customerID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
}

// TestUpdate tests a partial update leaving unset fields unchanged
func (suite *EnvironmentServiceTestSuite) TestUpdate() {
	env := &models.Environment{
		CustomerID:          uuid.New(),
		Name:                "Production",
		RequestInstructions: "old instructions",
	}
	env.ID = uuid.New()
	instructions := "email the platform team"
	req := service.UpdateEnvironmentRequest{RequestInstructions: &instructions}

	suite.mockRepo.EXPECT().GetByID(env.ID).Return(env, nil).Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Environment) error {
			assert.Equal(suite.T(), "Production", updated.Name)
			assert.Equal(suite.T(), instructions, updated.RequestInstructions)
			return nil
		}).
		Times(1)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.environmentService.Update(env.ID, req, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), instructions, response.RequestInstructions)
}

// TestDeleteNotFound tests removing a missing environment
func (suite *EnvironmentServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.environmentService.Delete(id, nil)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEnvironmentNotFound)
}

// Run the test suite
func TestEnvironmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EnvironmentServiceTestSuite))
}
