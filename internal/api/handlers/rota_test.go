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

// RotaHandlerTestSuite defines the test suite for RotaHandler
type RotaHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRotaServiceInterface
	handler     *handlers.RotaHandler
	router      *gin.Engine
	callerID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *RotaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRotaServiceInterface(suite.ctrl)
	suite.handler = handlers.NewRotaHandler(suite.mockService)

	suite.callerID = uuid.New()

	suite.router = gin.New()
	authed := suite.router.Group("", func(c *gin.Context) {
		c.Set("user_id", suite.callerID)
		c.Set("role", models.RoleManager)
	})
	authed.POST("/api/rota/generate", suite.handler.GenerateRota)
	authed.GET("/api/rota/:year", suite.handler.GetRota)
	authed.POST("/api/rota/:year/assign", suite.handler.AssignRota)
}

// TearDownTest cleans up after each test
func (suite *RotaHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RotaHandlerTestSuite) makeJSONRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
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

// TestGenerateRota tests generating a rota for a year
func (suite *RotaHandlerTestSuite) TestGenerateRota() {
	req := service.GenerateRotaRequest{Year: 2025}
	expected := &service.RotaResponse{Year: 2025, Days: 365}

	suite.mockService.EXPECT().
		Generate(req, gomock.Any()).
		DoAndReturn(func(_ service.GenerateRotaRequest, actorID *uuid.UUID) (*service.RotaResponse, error) {
			assert.NotNil(suite.T(), actorID)
			assert.Equal(suite.T(), suite.callerID, *actorID)
			return expected, nil
		}).
		Times(1)

	recorder := suite.makeJSONRequest(http.MethodPost, "/api/rota/generate", req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.RotaResponse
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(suite.T(), 2025, response.Year)
	assert.Equal(suite.T(), 365, response.Days)
}

// TestGenerateRotaYearOutOfRange tests rejecting an implausible year
func (suite *RotaHandlerTestSuite) TestGenerateRotaYearOutOfRange() {
	recorder := suite.makeJSONRequest(http.MethodPost, "/api/rota/generate", service.GenerateRotaRequest{Year: 1999})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGenerateRotaBadAnchor tests mapping an anchor validation error to 400
func (suite *RotaHandlerTestSuite) TestGenerateRotaBadAnchor() {
	req := service.GenerateRotaRequest{Year: 2025, Anchor: "01/01/2025"}

	suite.mockService.EXPECT().
		Generate(req, gomock.Any()).
		Return(nil, apperrors.NewValidationError("anchor", "must be formatted YYYY-MM-DD")).
		Times(1)

	recorder := suite.makeJSONRequest(http.MethodPost, "/api/rota/generate", req)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetRota tests retrieving the stored rota for a year
func (suite *RotaHandlerTestSuite) TestGetRota() {
	dayTeam := models.TeamA
	nightTeam := models.TeamB
	expected := &service.RotaResponse{
		Year: 2025,
		Days: 1,
		Assignments: []service.TeamShiftAssignmentResponse{
			{Year: 2025, Date: "2025-01-01", DayShiftTeam: &dayTeam, NightShiftTeam: &nightTeam},
		},
	}

	suite.mockService.EXPECT().GetYear(2025).Return(expected, nil).Times(1)

	recorder := suite.makeJSONRequest(http.MethodGet, "/api/rota/2025", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.RotaResponse
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Len(suite.T(), response.Assignments, 1)
	assert.Equal(suite.T(), models.TeamA, *response.Assignments[0].DayShiftTeam)
}

// TestGetRotaNotFound tests mapping a missing rota to 404
func (suite *RotaHandlerTestSuite) TestGetRotaNotFound() {
	suite.mockService.EXPECT().GetYear(2030).Return(nil, apperrors.ErrRotaNotFound).Times(1)

	recorder := suite.makeJSONRequest(http.MethodGet, "/api/rota/2030", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetRotaInvalidYear tests rejecting a non-numeric year
func (suite *RotaHandlerTestSuite) TestGetRotaInvalidYear() {
	recorder := suite.makeJSONRequest(http.MethodGet, "/api/rota/soon", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestAssignRota tests materializing per-user shifts from the rota
func (suite *RotaHandlerTestSuite) TestAssignRota() {
	suite.mockService.EXPECT().AssignRotaToUsers(2025, gomock.Any()).Return(730, nil).Times(1)

	recorder := suite.makeJSONRequest(http.MethodPost, "/api/rota/2025/assign", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(suite.T(), float64(730), response["shifts_created"])
	assert.Equal(suite.T(), float64(2025), response["year"])
}

// TestAssignRotaWithoutRota tests mapping a missing rota to 404
func (suite *RotaHandlerTestSuite) TestAssignRotaWithoutRota() {
	suite.mockService.EXPECT().AssignRotaToUsers(2030, gomock.Any()).Return(0, apperrors.ErrRotaNotFound).Times(1)

	recorder := suite.makeJSONRequest(http.MethodPost, "/api/rota/2030/assign", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// Run the test suite
func TestRotaHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RotaHandlerTestSuite))
}
