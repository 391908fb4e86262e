package service

import (
	"errors"
	"strings"
	"time"

	"notes-saas-backend/internal/auth"
	"notes-saas-backend/internal/database/models"
	apperrors "notes-saas-backend/internal/errors"
	"notes-saas-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost matches the cost used for seeded and invited accounts
const bcryptCost = 12

// DefaultInvitePassword is the initial password assigned to invited users
const DefaultInvitePassword = "password"

// AuthService handles login, invitations and account maintenance
type AuthService struct {
	users     repository.UserRepositoryInterface
	tokens    *auth.TokenManager
	validator *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepositoryInterface, tokens *auth.TokenManager, validator *validator.Validate) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		validator: validator,
	}
}

// LoginRequest represents the credentials for a login attempt
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// InviteRequest represents the data needed to invite a user into a tenant
type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=admin member"`
}

// UpdateProfileRequest represents a partial profile update. At least one
// field must be present.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,max=50"`
}

// ChangePasswordRequest represents a password change for the acting user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=100"`
}

// TenantSummary is the tenant block embedded in user payloads
type TenantSummary struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	Slug         string              `json:"slug"`
	Subscription models.Subscription `json:"subscription,omitempty"`
}

// Profile is the serializable profile block of a user
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID        uuid.UUID      `json:"id"`
	Email     string         `json:"email"`
	Role      models.Role    `json:"role"`
	Profile   *Profile       `json:"profile,omitempty"`
	LastLogin *time.Time     `json:"lastLogin,omitempty"`
	Tenant    *TenantSummary `json:"tenant,omitempty"`
}

// LoginResult carries the issued token and the authenticated user
type LoginResult struct {
	Token string
	User  *UserResponse
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login authenticates a user by email and password and issues an access
// token. Unknown emails and wrong passwords are indistinguishable to the
// caller; a deactivated tenant is reported as a suspended account.
func (s *AuthService) Login(req *LoginRequest) (*LoginResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.users.GetActiveByEmail(NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Tenant == nil || !user.Tenant.IsActive {
		return nil, apperrors.ErrAccountSuspended
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User: &UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
			Tenant: &TenantSummary{
				ID:           user.Tenant.ID,
				Name:         user.Tenant.Name,
				Slug:         user.Tenant.Slug,
				Subscription: user.Tenant.Subscription,
			},
		},
	}, nil
}

// Invite creates a new member of the given tenant with the default password.
// Emails are unique across all tenants.
func (s *AuthService) Invite(tenant *models.Tenant, req *InviteRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	email := NormalizeEmail(req.Email)
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := models.RoleMember
	if req.Role == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultInvitePassword), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Role:     role,
		TenantID: tenant.ID,
		IsActive: true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return &UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		Tenant: &TenantSummary{
			ID:   tenant.ID,
			Name: tenant.Name,
			Slug: tenant.Slug,
		},
	}, nil
}

// UpdateProfile applies the provided profile fields to the acting user
func (s *AuthService) UpdateProfile(user *models.User, tenant *models.Tenant, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.FirstName == nil && req.LastName == nil {
		return nil, apperrors.NewValidationError("", "At least one field is required")
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	return &UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		Profile: &Profile{
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		Tenant: &TenantSummary{
			ID:   tenant.ID,
			Name: tenant.Name,
			Slug: tenant.Slug,
		},
	}, nil
}

// ChangePassword verifies the current password and stores a new hash
func (s *AuthService) ChangePassword(user *models.User, req *ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return apperrors.ErrCurrentPasswordIncorrect
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	return s.users.Update(user)
}

// CurrentProfile maps the authenticated user and tenant to the payload
// returned by the "me" endpoint.
func CurrentProfile(user *models.User, tenant *models.Tenant) *UserResponse {
	return &UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		Profile: &Profile{
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		LastLogin: user.LastLogin,
		Tenant: &TenantSummary{
			ID:           tenant.ID,
			Name:         tenant.Name,
			Slug:         tenant.Slug,
			Subscription: tenant.Subscription,
		},
	}
}
