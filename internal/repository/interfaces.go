package repository

import (
	"notes-saas-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetBySlug(slug string) (*models.Tenant, error)
	Update(tenant *models.Tenant) error
	Count() (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetWithTenant(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetActiveByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// NoteRepositoryInterface defines the interface for note repository operations
type NoteRepositoryInterface interface {
	Create(note *models.Note) error
	GetByTenantAndID(tenantID, noteID uuid.UUID) (*models.Note, error)
	List(tenantID uuid.UUID, query *NoteQuery) ([]models.Note, int64, error)
	Update(note *models.Note) error
	Delete(tenantID, noteID uuid.UUID) error
	CountByTenant(tenantID uuid.UUID) (int64, error)
	CountArchivedByTenant(tenantID uuid.UUID) (int64, error)
	CountByPriority(tenantID uuid.UUID) (map[models.Priority]int64, error)
	TopCategories(tenantID uuid.UUID, limit int) ([]CategoryCount, error)
}
