package service_test

import (
	"testing"

	"notes-saas-backend/internal/auth"
	"notes-saas-backend/internal/database/models"
	apperrors "notes-saas-backend/internal/errors"
	"notes-saas-backend/internal/mocks"
	"notes-saas-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	tokens       *auth.TokenManager
	authService  *service.AuthService
	validator    *validator.Validate
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.tokens = auth.NewTokenManager("test-secret")
	suite.validator = validator.New()

	suite.authService = service.NewAuthService(suite.mockUserRepo, suite.tokens, suite.validator)
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func hashPassword(t assert.TestingT, plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func (suite *AuthServiceTestSuite) activeUser(password string) *models.User {
	tenant := &models.Tenant{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "Acme Corp",
		Slug:         "acme",
		Subscription: models.SubscriptionFree,
		IsActive:     true,
	}
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "admin@acme.test",
		Password:  hashPassword(suite.T(), password),
		Role:      models.RoleAdmin,
		TenantID:  tenant.ID,
		Tenant:    tenant,
		IsActive:  true,
	}
}

func (suite *AuthServiceTestSuite) TestLogin() {
	user := suite.activeUser("password")

	suite.mockUserRepo.EXPECT().
		GetActiveByEmail("admin@acme.test").
		Return(user, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	result, err := suite.authService.Login(&service.LoginRequest{
		Email:    "admin@acme.test",
		Password: "password",
	})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), result.Token)
	assert.Equal(suite.T(), user.Email, result.User.Email)
	assert.Equal(suite.T(), "acme", result.User.Tenant.Slug)
	assert.NotNil(suite.T(), user.LastLogin)

	// Issued token round-trips through the token manager
	claims, err := suite.tokens.Validate(result.Token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID.String(), claims.UserID)
}

func (suite *AuthServiceTestSuite) TestLoginNormalizesEmail() {
	user := suite.activeUser("password")

	suite.mockUserRepo.EXPECT().
		GetActiveByEmail("admin@acme.test").
		Return(user, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	_, err := suite.authService.Login(&service.LoginRequest{
		Email:    "  Admin@Acme.Test ",
		Password: "password",
	})
	assert.NoError(suite.T(), err)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetActiveByEmail("nobody@acme.test").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.authService.Login(&service.LoginRequest{
		Email:    "nobody@acme.test",
		Password: "password",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	user := suite.activeUser("password")

	suite.mockUserRepo.EXPECT().
		GetActiveByEmail("admin@acme.test").
		Return(user, nil).
		Times(1)

	_, err := suite.authService.Login(&service.LoginRequest{
		Email:    "admin@acme.test",
		Password: "wrong-password",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLoginSuspendedTenant() {
	user := suite.activeUser("password")
	user.Tenant.IsActive = false

	suite.mockUserRepo.EXPECT().
		GetActiveByEmail("admin@acme.test").
		Return(user, nil).
		Times(1)

	_, err := suite.authService.Login(&service.LoginRequest{
		Email:    "admin@acme.test",
		Password: "password",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAccountSuspended)
}

func (suite *AuthServiceTestSuite) TestLoginValidation() {
	_, err := suite.authService.Login(&service.LoginRequest{
		Email:    "not-an-email",
		Password: "password",
	})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AuthServiceTestSuite) TestInvite() {
	tenant := &models.Tenant{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Acme Corp",
		Slug:      "acme",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail("new@acme.test").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	var created *models.User
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			created = u
			return nil
		}).
		Times(1)

	user, err := suite.authService.Invite(tenant, &service.InviteRequest{
		Email: "new@acme.test",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new@acme.test", user.Email)
	assert.Equal(suite.T(), models.RoleMember, user.Role)
	assert.Equal(suite.T(), "acme", user.Tenant.Slug)

	// Invited users start with the default password
	assert.NoError(suite.T(), bcrypt.CompareHashAndPassword(
		[]byte(created.Password), []byte(service.DefaultInvitePassword)))
	assert.Equal(suite.T(), tenant.ID, created.TenantID)
}

func (suite *AuthServiceTestSuite) TestInviteAdminRole() {
	tenant := &models.Tenant{BaseModel: models.BaseModel{ID: uuid.New()}, Slug: "acme"}

	suite.mockUserRepo.EXPECT().
		GetByEmail("boss@acme.test").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	user, err := suite.authService.Invite(tenant, &service.InviteRequest{
		Email: "boss@acme.test",
		Role:  "admin",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleAdmin, user.Role)
}

func (suite *AuthServiceTestSuite) TestInviteDuplicateEmail() {
	tenant := &models.Tenant{BaseModel: models.BaseModel{ID: uuid.New()}, Slug: "acme"}

	suite.mockUserRepo.EXPECT().
		GetByEmail("taken@acme.test").
		Return(&models.User{}, nil).
		Times(1)

	_, err := suite.authService.Invite(tenant, &service.InviteRequest{
		Email: "taken@acme.test",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

func (suite *AuthServiceTestSuite) TestUpdateProfile() {
	user := suite.activeUser("password")
	tenant := user.Tenant
	first := "Jane"

	suite.mockUserRepo.EXPECT().Update(user).Return(nil).Times(1)

	resp, err := suite.authService.UpdateProfile(user, tenant, &service.UpdateProfileRequest{
		FirstName: &first,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Jane", resp.Profile.FirstName)
	assert.Equal(suite.T(), "Jane", user.FirstName)
}

func (suite *AuthServiceTestSuite) TestUpdateProfileRequiresAField() {
	user := suite.activeUser("password")

	_, err := suite.authService.UpdateProfile(user, user.Tenant, &service.UpdateProfileRequest{})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AuthServiceTestSuite) TestChangePassword() {
	user := suite.activeUser("old-password")

	suite.mockUserRepo.EXPECT().Update(user).Return(nil).Times(1)

	err := suite.authService.ChangePassword(user, &service.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})

	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), bcrypt.CompareHashAndPassword(
		[]byte(user.Password), []byte("new-password")))
}

func (suite *AuthServiceTestSuite) TestChangePasswordWrongCurrent() {
	user := suite.activeUser("old-password")

	err := suite.authService.ChangePassword(user, &service.ChangePasswordRequest{
		CurrentPassword: "not-it",
		NewPassword:     "new-password",
	})

	assert.True(suite.T(), apperrors.IsConflict(err))
	assert.Equal(suite.T(), "Current password is incorrect", err.Error())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
