package service_test

import (
	"testing"
	"time"

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
)

// TestGenerateFourOnFourOffRotaDayCount tests that every calendar day of the
// year gets exactly one assignment
func TestGenerateFourOnFourOffRotaDayCount(t *testing.T) {
	assignments := service.GenerateFourOnFourOffRota(2025, service.DefaultRotaAnchor)
	assert.Len(t, assignments, 365)

	// 2024 is a leap year
	assignments = service.GenerateFourOnFourOffRota(2024, service.DefaultRotaAnchor)
	assert.Len(t, assignments, 366)

	first := assignments[0]
	last := assignments[len(assignments)-1]
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), last.Date)
	for _, a := range assignments {
		assert.Equal(t, 2024, a.Year)
	}
}

// TestGenerateFourOnFourOffRotaCycle tests the 8-day on/off cycle from the anchor
func TestGenerateFourOnFourOffRotaCycle(t *testing.T) {
	// Anchor is 2024-01-01, so days 1-4 of January are A/B and days 5-8 are C/D
	assignments := service.GenerateFourOnFourOffRota(2024, service.DefaultRotaAnchor)

	for i := 0; i < 16; i++ {
		a := assignments[i]
		if i%8 < 4 {
			assert.Equal(t, models.TeamA, *a.DayShiftTeam, "day %d", i)
			assert.Equal(t, models.TeamB, *a.NightShiftTeam, "day %d", i)
		} else {
			assert.Equal(t, models.TeamC, *a.DayShiftTeam, "day %d", i)
			assert.Equal(t, models.TeamD, *a.NightShiftTeam, "day %d", i)
		}
	}
}

// TestGenerateFourOnFourOffRotaPairing tests that day and night teams always
// move together: A days pair with B nights, C days with D nights
func TestGenerateFourOnFourOffRotaPairing(t *testing.T) {
	assignments := service.GenerateFourOnFourOffRota(2025, service.DefaultRotaAnchor)

	for _, a := range assignments {
		switch *a.DayShiftTeam {
		case models.TeamA:
			assert.Equal(t, models.TeamB, *a.NightShiftTeam)
		case models.TeamC:
			assert.Equal(t, models.TeamD, *a.NightShiftTeam)
		default:
			t.Fatalf("unexpected day shift team %s on %s", *a.DayShiftTeam, a.Date)
		}
	}
}

// TestGenerateFourOnFourOffRotaPeriodicity tests that the pattern repeats
// every 8 days
func TestGenerateFourOnFourOffRotaPeriodicity(t *testing.T) {
	assignments := service.GenerateFourOnFourOffRota(2025, service.DefaultRotaAnchor)

	for i := 0; i+8 < len(assignments); i++ {
		assert.Equal(t, *assignments[i].DayShiftTeam, *assignments[i+8].DayShiftTeam)
		assert.Equal(t, *assignments[i].NightShiftTeam, *assignments[i+8].NightShiftTeam)
	}
}

// TestGenerateFourOnFourOffRotaBeforeAnchor tests that years before the anchor
// wrap correctly instead of breaking on negative day offsets
func TestGenerateFourOnFourOffRotaBeforeAnchor(t *testing.T) {
	assignments := service.GenerateFourOnFourOffRota(2023, service.DefaultRotaAnchor)
	assert.Len(t, assignments, 365)

	byDate := make(map[string]models.TeamShiftAssignment)
	for _, a := range assignments {
		byDate[a.Date.Format("2006-01-02")] = a
	}

	// 2023-12-31 is one day before the anchor, cycle position 7
	assert.Equal(t, models.TeamC, *byDate["2023-12-31"].DayShiftTeam)
	assert.Equal(t, models.TeamD, *byDate["2023-12-31"].NightShiftTeam)

	// 2023-12-28 is four days before the anchor, cycle position 4
	assert.Equal(t, models.TeamC, *byDate["2023-12-28"].DayShiftTeam)

	// 2023-12-24 is eight days before the anchor, same position as the anchor itself
	assert.Equal(t, models.TeamA, *byDate["2023-12-24"].DayShiftTeam)
	assert.Equal(t, models.TeamB, *byDate["2023-12-24"].NightShiftTeam)
}

// TestGenerateFourOnFourOffRotaAnchorNormalization tests that the time of day
// on the anchor never shifts the cycle
func TestGenerateFourOnFourOffRotaAnchorNormalization(t *testing.T) {
	midnight := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.January, 1, 23, 45, 12, 0, time.UTC)

	a := service.GenerateFourOnFourOffRota(2025, midnight)
	b := service.GenerateFourOnFourOffRota(2025, evening)

	for i := range a {
		assert.Equal(t, *a[i].DayShiftTeam, *b[i].DayShiftTeam, "day %d", i)
		assert.Equal(t, *a[i].NightShiftTeam, *b[i].NightShiftTeam, "day %d", i)
	}
}

// TestGenerateFourOnFourOffRotaContinuity tests that the cycle runs unbroken
// across a year boundary
func TestGenerateFourOnFourOffRotaContinuity(t *testing.T) {
	prev := service.GenerateFourOnFourOffRota(2024, service.DefaultRotaAnchor)
	next := service.GenerateFourOnFourOffRota(2025, service.DefaultRotaAnchor)

	lastOf2024 := prev[len(prev)-1]
	firstOf2025 := next[0]

	// 2024-12-31 is 365 days after the anchor (position 5), 2025-01-01 is
	// position 6. Both fall in the C/D half of the cycle.
	assert.Equal(t, models.TeamC, *lastOf2024.DayShiftTeam)
	assert.Equal(t, models.TeamC, *firstOf2025.DayShiftTeam)
	assert.Equal(t, models.TeamD, *firstOf2025.NightShiftTeam)
}

// RotaServiceTestSuite defines the test suite for RotaService
type RotaServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRotaRepo  *mocks.MockRotaRepositoryInterface
	mockShiftRepo *mocks.MockShiftRepositoryInterface
	mockUserRepo  *mocks.MockUserRepositoryInterface
	mockAuditRepo *mocks.MockAuditLogRepositoryInterface
	rotaService   *service.RotaService
	factories     *testutils.FactorySet
}

// SetupTest sets up the test suite
func (suite *RotaServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRotaRepo = mocks.NewMockRotaRepositoryInterface(suite.ctrl)
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()

	audit := service.NewAuditService(suite.mockAuditRepo)
	suite.rotaService = service.NewRotaService(suite.mockRotaRepo, suite.mockShiftRepo, suite.mockUserRepo, audit, validator.New())
}

// TearDownTest cleans up after each test
func (suite *RotaServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGenerate tests generating and storing a year's rota
func (suite *RotaServiceTestSuite) TestGenerate() {
	var stored []models.TeamShiftAssignment

	suite.mockRotaRepo.EXPECT().
		ReplaceYear(2025, gomock.Any()).
		DoAndReturn(func(year int, assignments []models.TeamShiftAssignment) error {
			stored = assignments
			return nil
		}).
		Times(1)

	suite.mockAuditRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockRotaRepo.EXPECT().
		GetByYear(2025).
		DoAndReturn(func(year int) ([]models.TeamShiftAssignment, error) {
			return stored, nil
		}).
		Times(1)

	actorID := uuid.New()
	response, err := suite.rotaService.Generate(service.GenerateRotaRequest{Year: 2025}, &actorID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), 2025, response.Year)
	assert.Equal(suite.T(), 365, response.Days)
	assert.Len(suite.T(), response.Assignments, 365)
	assert.Equal(suite.T(), "2025-01-01", response.Assignments[0].Date)
}

// TestGenerateWithCustomAnchor tests generating against a caller-supplied anchor
func (suite *RotaServiceTestSuite) TestGenerateWithCustomAnchor() {
	var stored []models.TeamShiftAssignment

	suite.mockRotaRepo.EXPECT().
		ReplaceYear(2025, gomock.Any()).
		DoAndReturn(func(year int, assignments []models.TeamShiftAssignment) error {
			stored = assignments
			return nil
		}).
		Times(1)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockRotaRepo.EXPECT().
		GetByYear(2025).
		DoAndReturn(func(year int) ([]models.TeamShiftAssignment, error) {
			return stored, nil
		}).
		Times(1)

	// Anchoring on Jan 1 2025 puts A/B on the first four days of the year
	response, err := suite.rotaService.Generate(service.GenerateRotaRequest{Year: 2025, Anchor: "2025-01-01"}, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TeamA, *response.Assignments[0].DayShiftTeam)
	assert.Equal(suite.T(), models.TeamC, *response.Assignments[4].DayShiftTeam)
}

// TestGenerateYearOutOfRange tests rejecting years outside the supported window
func (suite *RotaServiceTestSuite) TestGenerateYearOutOfRange() {
	for _, year := range []int{0, 1999, 2101} {
		response, err := suite.rotaService.Generate(service.GenerateRotaRequest{Year: year}, nil)

		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), response)
		assert.True(suite.T(), apperrors.IsValidation(err))
	}
}

// TestGenerateInvalidAnchor tests rejecting a malformed anchor date
func (suite *RotaServiceTestSuite) TestGenerateInvalidAnchor() {
	response, err := suite.rotaService.Generate(service.GenerateRotaRequest{Year: 2025, Anchor: "January 1st"}, nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetYear tests retrieving a stored rota
func (suite *RotaServiceTestSuite) TestGetYear() {
	day := models.TeamA
	night := models.TeamB
	suite.mockRotaRepo.EXPECT().
		GetByYear(2025).
		Return([]models.TeamShiftAssignment{
			{
				Year:           2025,
				Date:           time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
				DayShiftTeam:   &day,
				NightShiftTeam: &night,
			},
		}, nil).
		Times(1)

	response, err := suite.rotaService.GetYear(2025)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2025, response.Year)
	assert.Equal(suite.T(), 1, response.Days)
	assert.Equal(suite.T(), "2025-01-01", response.Assignments[0].Date)
}

// TestGetYearNotFound tests retrieving a year that was never generated
func (suite *RotaServiceTestSuite) TestGetYearNotFound() {
	suite.mockRotaRepo.EXPECT().
		GetByYear(2030).
		Return([]models.TeamShiftAssignment{}, nil).
		Times(1)

	response, err := suite.rotaService.GetYear(2030)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRotaNotFound)
}

// TestAssignRotaToUsers tests materializing per-user shifts from the team rota
func (suite *RotaServiceTestSuite) TestAssignRotaToUsers() {
	dayA := models.TeamA
	nightB := models.TeamB
	assignments := []models.TeamShiftAssignment{
		{Year: 2025, Date: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), DayShiftTeam: &dayA, NightShiftTeam: &nightB},
		{Year: 2025, Date: time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), DayShiftTeam: &dayA, NightShiftTeam: &nightB},
	}

	activeA := suite.factories.User.WithTeam(models.TeamA)
	inactiveA := suite.factories.User.WithTeam(models.TeamA)
	inactiveA.IsActive = false
	activeB := suite.factories.User.WithTeam(models.TeamB)

	suite.mockRotaRepo.EXPECT().GetByYear(2025).Return(assignments, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByTeam(models.TeamA).Return([]models.User{*activeA, *inactiveA}, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByTeam(models.TeamB).Return([]models.User{*activeB}, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByTeam(models.TeamC).Return([]models.User{}, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByTeam(models.TeamD).Return([]models.User{}, nil).Times(1)

	suite.mockShiftRepo.EXPECT().
		DeleteByYearAndTeams(2025, []models.ShiftTeam{models.TeamA, models.TeamB, models.TeamC, models.TeamD}).
		Return(nil).
		Times(1)

	var created []models.Shift
	suite.mockShiftRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(shifts []models.Shift) error {
			created = shifts
			return nil
		}).
		Times(1)

	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	actorID := uuid.New()
	count, err := suite.rotaService.AssignRotaToUsers(2025, &actorID)

	assert.NoError(suite.T(), err)
	// One day shift and one night shift per rota day, inactive user excluded
	assert.Equal(suite.T(), 4, count)
	assert.Len(suite.T(), created, 4)

	for _, shift := range created {
		assert.NotNil(suite.T(), shift.UserID)
		switch shift.TeamID {
		case models.TeamA:
			assert.Equal(suite.T(), activeA.ID, *shift.UserID)
			assert.Equal(suite.T(), models.ShiftPeriodAM, shift.ShiftPeriod)
		case models.TeamB:
			assert.Equal(suite.T(), activeB.ID, *shift.UserID)
			assert.Equal(suite.T(), models.ShiftPeriodPM, shift.ShiftPeriod)
		default:
			suite.T().Fatalf("unexpected team %s in materialized shifts", shift.TeamID)
		}
	}
}

// TestAssignRotaToUsersWithoutRota tests materializing before the rota exists
func (suite *RotaServiceTestSuite) TestAssignRotaToUsersWithoutRota() {
	suite.mockRotaRepo.EXPECT().GetByYear(2031).Return(nil, nil).Times(1)

	count, err := suite.rotaService.AssignRotaToUsers(2031, nil)

	assert.Error(suite.T(), err)
	assert.Zero(suite.T(), count)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRotaNotFound)
}

// Run the test suite
func TestRotaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RotaServiceTestSuite))
}
