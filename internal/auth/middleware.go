package auth

import (
	"errors"
	"net/http"
	"strings"

	"notes-saas-backend/internal/database/models"
	apperrors "notes-saas-backend/internal/errors"
	"notes-saas-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextUserKey   = "current_user"
	contextTenantKey = "current_tenant"
)

// Middleware resolves bearer tokens into the acting user and tenant
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepositoryInterface
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(tokens *TokenManager, users repository.UserRepositoryInterface) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}

// RequireAuth validates the bearer token, loads the user and its tenant, and
// stores both in the request context. Requests from deactivated users or
// tenants are rejected even when the token itself is still valid.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, apperrors.ErrTokenRequired.Error())
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			abortUnauthorized(c, apperrors.ErrTokenRequired.Error())
			return
		}

		claims, err := m.tokens.Validate(tokenString)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			abortUnauthorized(c, apperrors.ErrInvalidToken.Error())
			return
		}

		user, err := m.users.GetWithTenant(userID)
		if err != nil {
			abortUnauthorized(c, apperrors.ErrInactiveUserOrTenant.Error())
			return
		}
		if !user.IsActive || user.Tenant == nil || !user.Tenant.IsActive {
			abortUnauthorized(c, apperrors.ErrInactiveUserOrTenant.Error())
			return
		}

		c.Set(contextUserKey, user)
		c.Set(contextTenantKey, user.Tenant)
		c.Next()
	}
}

// RequireAdmin rejects requests from non-admin users. Must run after
// RequireAuth.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := CurrentUser(c)
		if err != nil {
			abortUnauthorized(c, apperrors.ErrTokenRequired.Error())
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": apperrors.ErrAdminRequired.Error(),
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored in the request context
func CurrentUser(c *gin.Context) (*models.User, error) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, errors.New("no authenticated user in context")
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil, errors.New("invalid user in context")
	}
	return user, nil
}

// CurrentTenant returns the authenticated user's tenant stored in the request context
func CurrentTenant(c *gin.Context) (*models.Tenant, error) {
	value, exists := c.Get(contextTenantKey)
	if !exists {
		return nil, errors.New("no authenticated tenant in context")
	}
	tenant, ok := value.(*models.Tenant)
	if !ok {
		return nil, errors.New("invalid tenant in context")
	}
	return tenant, nil
}

// SetCurrentUser stores a user and tenant in the request context. Exposed for
// handler tests that bypass the middleware.
func SetCurrentUser(c *gin.Context, user *models.User, tenant *models.Tenant) {
	c.Set(contextUserKey, user)
	c.Set(contextTenantKey, tenant)
}
