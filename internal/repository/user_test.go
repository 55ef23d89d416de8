//go:build integration
// +build integration

package repository

import (
	"testing"

	"workforce-portal-backend/internal/database/models"
	"workforce-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests creating a user and retrieving it by ID
func (suite *UserRepositoryTestSuite) TestCreateAndGetByID() {
	user := suite.factories.User.WithTeam(models.TeamB)

	err := suite.repo.Create(user)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(user.Email, retrieved.Email)
	suite.Equal(models.TeamB, retrieved.Team)
	suite.True(retrieved.IsActive)
}

// TestGetByIDNotFound tests retrieving a non-existent user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	user, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(user)
}

// TestGetByEmail tests looking a user up by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("lookup@test.com")
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByEmail("lookup@test.com")
	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)

	_, err = suite.repo.GetByEmail("missing@test.com")
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetAll tests listing users with pagination
func (suite *UserRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.User.Create()))
	}

	users, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Len(users, 2)
	suite.Equal(int64(3), total)

	users, total, err = suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Len(users, 1)
	suite.Equal(int64(3), total)
}

// TestGetByTeam tests listing the members of one team
func (suite *UserRepositoryTestSuite) TestGetByTeam() {
	teamA := suite.factories.User.WithTeam(models.TeamA)
	teamC := suite.factories.User.WithTeam(models.TeamC)
	suite.NoError(suite.repo.Create(teamA))
	suite.NoError(suite.repo.Create(teamC))

	members, err := suite.repo.GetByTeam(models.TeamA)
	suite.NoError(err)
	suite.Len(members, 1)
	suite.Equal(teamA.ID, members[0].ID)
}

// TestGetActiveByRole tests that inactive users are excluded
func (suite *UserRepositoryTestSuite) TestGetActiveByRole() {
	active := suite.factories.User.WithRole(models.RoleManager)
	inactive := suite.factories.User.WithRole(models.RoleManager)
	inactive.IsActive = false
	suite.NoError(suite.repo.Create(active))
	suite.NoError(suite.repo.Create(inactive))

	managers, err := suite.repo.GetActiveByRole(models.RoleManager)
	suite.NoError(err)
	suite.Len(managers, 1)
	suite.Equal(active.ID, managers[0].ID)
}

// TestUpdate tests updating a user
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.WithTeam(models.TeamA)
	suite.NoError(suite.repo.Create(user))

	user.Team = models.TeamD
	user.Name = "Renamed User"
	suite.NoError(suite.repo.Update(user))

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(models.TeamD, retrieved.Team)
	suite.Equal("Renamed User", retrieved.Name)
}

// TestDelete tests deleting a user
func (suite *UserRepositoryTestSuite) TestDelete() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	suite.NoError(suite.repo.Delete(user.ID))

	_, err := suite.repo.GetByID(user.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
