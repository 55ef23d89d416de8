package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"workforce-portal-backend/internal/api/handlers"
	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/mocks"
	"workforce-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	handler     *handlers.UserHandler
	router      *gin.Engine
	callerID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockService)

	suite.callerID = uuid.New()

	suite.router = gin.New()
	authed := suite.router.Group("", func(c *gin.Context) {
		c.Set("user_id", suite.callerID)
		c.Set("role", models.RoleAdmin)
	})
	authed.POST("/api/users", suite.handler.CreateUser)
	authed.GET("/api/users", suite.handler.ListUsers)
	authed.GET("/api/users/:id", suite.handler.GetUser)
	authed.PUT("/api/users/:id", suite.handler.UpdateUser)
	authed.DELETE("/api/users/:id", suite.handler.DeleteUser)
	authed.POST("/api/users/me/password", suite.handler.ChangePassword)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) makeJSONRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// TestCreateUser tests creating a user
func (suite *UserHandlerTestSuite) TestCreateUser() {
	req := service.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane.doe@example.com",
		Password: "password123",
		Role:     "VAR_SHIFT",
		Team:     "A",
	}
	expected := &service.UserResponse{
		ID:       uuid.New(),
		Name:     "Jane Doe",
		Email:    "jane.doe@example.com",
		Role:     models.RoleVARShift,
		Team:     models.TeamA,
		IsActive: true,
	}

	suite.mockService.EXPECT().Create(req, gomock.Any()).Return(expected, nil).Times(1)

	recorder := suite.makeJSONRequest(http.MethodPost, "/api/users", req)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.UserResponse
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(suite.T(), expected.ID, response.ID)
	assert.Equal(suite.T(), models.TeamA, response.Team)
}

// TestCreateUserDuplicateEmail tests mapping a duplicate email to 409
func (suite *UserHandlerTestSuite) TestCreateUserDuplicateEmail() {
	req := service.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane.doe@example.com",
		Password: "password123",
		Role:     "VAR_SHIFT",
	}

	suite.mockService.EXPECT().Create(req, gomock.Any()).Return(nil, apperrors.ErrUserExists).Times(1)

	recorder := suite.makeJSONRequest(http.MethodPost, "/api/users", req)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestGetUser tests retrieving a user by ID
func (suite *UserHandlerTestSuite) TestGetUser() {
	expected := &service.UserResponse{ID: uuid.New(), Name: "Jane Doe"}

	suite.mockService.EXPECT().GetByID(expected.ID).Return(expected, nil).Times(1)

	recorder := suite.makeJSONRequest(http.MethodGet, "/api/users/"+expected.ID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetUserNotFound tests mapping a missing user to 404
func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrUserNotFound).Times(1)

	recorder := suite.makeJSONRequest(http.MethodGet, "/api/users/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestListUsers tests listing users with pagination
func (suite *UserHandlerTestSuite) TestListUsers() {
	expected := &service.UserListResponse{
		Users:    []service.UserResponse{{ID: uuid.New()}},
		Total:    1,
		Page:     1,
		PageSize: 50,
	}

	suite.mockService.EXPECT().List(1, 20).Return(expected, nil).Times(1)

	recorder := suite.makeJSONRequest(http.MethodGet, "/api/users", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestListUsersByTeam tests the team filter path
func (suite *UserHandlerTestSuite) TestListUsersByTeam() {
	members := []service.UserResponse{{ID: uuid.New(), Team: models.TeamB}}

	suite.mockService.EXPECT().GetByTeam(models.TeamB).Return(members, nil).Times(1)

	recorder := suite.makeJSONRequest(http.MethodGet, "/api/users?team=B", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]json.RawMessage
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Contains(suite.T(), response, "users")
}

// TestUpdateUser tests a partial update
func (suite *UserHandlerTestSuite) TestUpdateUser() {
	id := uuid.New()
	team := "D"
	req := service.UpdateUserRequest{Team: &team}
	expected := &service.UserResponse{ID: id, Team: models.TeamD}

	suite.mockService.EXPECT().Update(id, req, gomock.Any()).Return(expected, nil).Times(1)

	recorder := suite.makeJSONRequest(http.MethodPut, "/api/users/"+id.String(), req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(suite.T(), models.TeamD, response.Team)
}

// TestChangePassword tests changing the caller's own password
func (suite *UserHandlerTestSuite) TestChangePassword() {
	req := service.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "longer-and-better",
	}

	suite.mockService.EXPECT().ChangePassword(suite.callerID, req).Return(nil).Times(1)

	recorder := suite.makeJSONRequest(http.MethodPost, "/api/users/me/password", req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestChangePasswordWrongCurrent tests mapping a wrong current password to 401
func (suite *UserHandlerTestSuite) TestChangePasswordWrongCurrent() {
	req := service.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "longer-and-better",
	}

	suite.mockService.EXPECT().ChangePassword(suite.callerID, req).Return(apperrors.ErrInvalidCredentials).Times(1)

	recorder := suite.makeJSONRequest(http.MethodPost, "/api/users/me/password", req)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestDeleteUser tests deleting a user
func (suite *UserHandlerTestSuite) TestDeleteUser() {
	id := uuid.New()

	suite.mockService.EXPECT().Delete(id, gomock.Any()).Return(nil).Times(1)

	recorder := suite.makeJSONRequest(http.MethodDelete, "/api/users/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteUserInvalidID tests rejecting a non-UUID path parameter
func (suite *UserHandlerTestSuite) TestDeleteUserInvalidID() {
	recorder := suite.makeJSONRequest(http.MethodDelete, "/api/users/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// Run the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
