package handlers

import (
	"net/http"

	"notes-saas-backend/internal/auth"
	apperrors "notes-saas-backend/internal/errors"
	"notes-saas-backend/internal/metrics"
	"notes-saas-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler handles HTTP requests for authentication and account management
type AuthHandler struct {
	authService service.AuthServiceInterface
	validator   *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthServiceInterface, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

// Login authenticates a user and issues an access token
// @Summary Login
// @Description Authenticate with email and password, returning a bearer token valid for 24 hours
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Invalid credentials or suspended account"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		respondServiceError(c, err)
		return
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    result.User,
		"token":   result.Token,
	})
}

// Me returns the authenticated user's profile
// @Summary Current user
// @Description Get the authenticated user with its tenant summary
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Current user"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}
	tenant, err := auth.CurrentTenant(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}

	respondData(c, http.StatusOK, gin.H{"user": service.CurrentProfile(user, tenant)})
}

// Invite creates a new user in the acting tenant
// @Summary Invite user
// @Description Invite a user into the acting tenant with the default password. Admin only.
// @Tags auth
// @Accept json
// @Produce json
// @Param invitation body service.InviteRequest true "Invitation"
// @Success 201 {object} map[string]interface{} "User invited successfully"
// @Failure 400 {object} ErrorResponse "Validation error or duplicate email"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /api/auth/invite [post]
func (h *AuthHandler) Invite(c *gin.Context) {
	tenant, err := auth.CurrentTenant(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}

	var req service.InviteRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	user, err := h.authService.Invite(tenant, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessageData(c, http.StatusCreated, "User invited successfully", gin.H{"user": user})
}

// UpdateProfile updates the acting user's profile fields
// @Summary Update profile
// @Description Update first and/or last name of the authenticated user
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}
	tenant, err := auth.CurrentTenant(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}

	var req service.UpdateProfileRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	updated, err := h.authService.UpdateProfile(user, tenant, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessageData(c, http.StatusOK, "Profile updated successfully", gin.H{"user": updated})
}

// ChangePassword changes the acting user's password
// @Summary Change password
// @Description Verify the current password and set a new one
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body service.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResponse "Password changed successfully"
// @Failure 400 {object} ErrorResponse "Validation error or wrong current password"
// @Security BearerAuth
// @Router /api/auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}

	var req service.ChangePasswordRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	if err := h.authService.ChangePassword(user, &req); err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Password changed successfully")
}
