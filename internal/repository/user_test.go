//go:build integration
// +build integration

package repository

import (
	"testing"

	"notes-saas-backend/internal/database/models"
	"notes-saas-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	tenantRepo    *TenantRepository
	factories     *testutils.FactorySet
}

func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.tenantRepo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) createTenant(slug string) *models.Tenant {
	tenant := suite.factories.Tenant.WithSlug(slug)
	suite.Require().NoError(suite.tenantRepo.Create(tenant))
	return tenant
}

func (suite *UserRepositoryTestSuite) TestCreate() {
	tenant := suite.createTenant("acme")
	user := suite.factories.User.Create(tenant.ID)

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
}

func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmailAcrossTenants() {
	acme := suite.createTenant("acme")
	globex := suite.createTenant("globex")

	user1 := suite.factories.User.WithEmail(acme.ID, "dup@test.com")
	suite.NoError(suite.repo.Create(user1))

	// Emails are unique across all tenants
	user2 := suite.factories.User.WithEmail(globex.ID, "dup@test.com")
	suite.Error(suite.repo.Create(user2))
}

func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	tenant := suite.createTenant("acme")
	user := suite.factories.User.WithEmail(tenant.ID, "admin@acme.test")
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("admin@acme.test")

	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

func (suite *UserRepositoryTestSuite) TestGetActiveByEmailPreloadsTenant() {
	tenant := suite.createTenant("acme")
	user := suite.factories.User.WithEmail(tenant.ID, "admin@acme.test")
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetActiveByEmail("admin@acme.test")

	suite.NoError(err)
	suite.Require().NotNil(found.Tenant)
	suite.Equal("acme", found.Tenant.Slug)
}

func (suite *UserRepositoryTestSuite) TestGetActiveByEmailSkipsInactive() {
	tenant := suite.createTenant("acme")
	user := suite.factories.User.Inactive(tenant.ID)
	user.Email = "gone@acme.test"
	suite.NoError(suite.repo.Create(user))

	_, err := suite.repo.GetActiveByEmail("gone@acme.test")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryTestSuite) TestGetWithTenant() {
	tenant := suite.createTenant("acme")
	user := suite.factories.User.Create(tenant.ID)
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetWithTenant(user.ID)

	suite.NoError(err)
	suite.Require().NotNil(found.Tenant)
	suite.Equal(tenant.ID, found.Tenant.ID)
}

func (suite *UserRepositoryTestSuite) TestUpdate() {
	tenant := suite.createTenant("acme")
	user := suite.factories.User.Create(tenant.ID)
	suite.NoError(suite.repo.Create(user))

	user.FirstName = "Jane"
	user.LastName = "Doe"
	suite.NoError(suite.repo.Update(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("Jane", found.FirstName)
	suite.Equal("Doe", found.LastName)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
