package testutils

import (
	"fmt"
	"time"

	"notes-saas-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext password every factory-built user accepts
const TestPassword = "password"

// testPasswordHash is computed once per test process. MinCost keeps the
// suites fast; production code hashes at cost 12.
var testPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

// FactorySet bundles all model factories for a test suite
type FactorySet struct {
	Tenant *TenantFactory
	User   *UserFactory
	Note   *NoteFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant: NewTenantFactory(),
		User:   NewUserFactory(),
		Note:   NewNoteFactory(),
	}
}

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Tenant",
		Slug:         "tenant-" + id.String()[:8],
		Subscription: models.SubscriptionFree,
		IsActive:     true,
	}
}

// WithSlug sets a custom slug for the tenant
func (f *TenantFactory) WithSlug(slug string) *models.Tenant {
	tenant := f.Create()
	tenant.Slug = slug
	tenant.Name = slug
	return tenant
}

// Pro creates a tenant on the pro plan
func (f *TenantFactory) Pro() *models.Tenant {
	tenant := f.Create()
	tenant.Subscription = models.SubscriptionPro
	return tenant
}

// Inactive creates a deactivated tenant
func (f *TenantFactory) Inactive() *models.Tenant {
	tenant := f.Create()
	tenant.IsActive = false
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test member User with default values. The password is
// TestPassword.
func (f *UserFactory) Create(tenantID uuid.UUID) *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:    fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		Password: testPasswordHash,
		Role:     models.RoleMember,
		TenantID: tenantID,
		IsActive: true,
	}
}

// Admin creates a test admin User
func (f *UserFactory) Admin(tenantID uuid.UUID) *models.User {
	user := f.Create(tenantID)
	user.Role = models.RoleAdmin
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(tenantID uuid.UUID, email string) *models.User {
	user := f.Create(tenantID)
	user.Email = email
	return user
}

// Inactive creates a deactivated user
func (f *UserFactory) Inactive(tenantID uuid.UUID) *models.User {
	user := f.Create(tenantID)
	user.IsActive = false
	return user
}

// NoteFactory provides methods to create test Note data
type NoteFactory struct{}

// NewNoteFactory creates a new NoteFactory
func NewNoteFactory() *NoteFactory {
	return &NoteFactory{}
}

// Create creates a test Note with default values
func (f *NoteFactory) Create(tenantID, createdByID uuid.UUID) *models.Note {
	id := uuid.New()
	return &models.Note{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Test Note " + id.String()[:8],
		Content:     "Test note content",
		Tags:        models.StringList{},
		Priority:    models.PriorityMedium,
		Category:    "",
		IsArchived:  false,
		TenantID:    tenantID,
		CreatedByID: createdByID,
	}
}

// WithTitle sets a custom title for the note
func (f *NoteFactory) WithTitle(tenantID, createdByID uuid.UUID, title string) *models.Note {
	note := f.Create(tenantID, createdByID)
	note.Title = title
	return note
}

// Archived creates an archived note
func (f *NoteFactory) Archived(tenantID, createdByID uuid.UUID) *models.Note {
	note := f.Create(tenantID, createdByID)
	note.IsArchived = true
	return note
}
