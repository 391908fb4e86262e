package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors (401)
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors (403)
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConflictError represents a business-rule conflict reported to the caller
// as a bad request, e.g. upgrading a tenant that is already on the pro plan.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTenantNotFound = &NotFoundError{Entity: "Tenant"}
	ErrUserNotFound   = &NotFoundError{Entity: "User"}
	ErrNoteNotFound   = &NotFoundError{Entity: "Note"}
)

// Already Exists Errors
var (
	ErrUserExists = &AlreadyExistsError{Entity: "User"}
)

// Authentication Errors
var (
	ErrInvalidCredentials   = &AuthenticationError{Message: "Invalid credentials"}
	ErrAccountSuspended     = &AuthenticationError{Message: "Account suspended"}
	ErrTokenRequired        = &AuthenticationError{Message: "Access token required"}
	ErrInvalidToken         = &AuthenticationError{Message: "Invalid token"}
	ErrTokenExpired         = &AuthenticationError{Message: "Token expired"}
	ErrInactiveUserOrTenant = &AuthenticationError{Message: "Invalid or inactive user/tenant"}
)

// Authorization Errors
var (
	ErrAdminRequired    = &AuthorizationError{Message: "Admin access required"}
	ErrMemberRequired   = &AuthorizationError{Message: "Member access required"}
	ErrAccessDenied     = &AuthorizationError{Message: "Access denied"}
	ErrNoteLimitReached = &AuthorizationError{Message: "Note limit reached. Upgrade to Pro for unlimited notes."}
)

// Business Logic Errors
var (
	ErrTenantAlreadyPro         = &ConflictError{Message: "Tenant is already on Pro plan"}
	ErrCurrentPasswordIncorrect = &ConflictError{Message: "Current password is incorrect"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}
