package service

import (
	"errors"

	"notes-saas-backend/internal/database/models"
	apperrors "notes-saas-backend/internal/errors"
	"notes-saas-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// topCategoryLimit caps the category breakdown in tenant stats
const topCategoryLimit = 10

// TenantService handles business logic for tenants
type TenantService struct {
	tenants repository.TenantRepositoryInterface
	notes   repository.NoteRepositoryInterface
}

// NewTenantService creates a new tenant service
func NewTenantService(tenants repository.TenantRepositoryInterface, notes repository.NoteRepositoryInterface) *TenantService {
	return &TenantService{
		tenants: tenants,
		notes:   notes,
	}
}

// TenantInfo represents a tenant with its derived quota state
type TenantInfo struct {
	ID            uuid.UUID           `json:"id"`
	Name          string              `json:"name"`
	Slug          string              `json:"slug"`
	Subscription  models.Subscription `json:"subscription"`
	NoteCount     int64               `json:"noteCount"`
	NoteLimit     interface{}         `json:"noteLimit" swaggertype:"string"`
	CanCreateNote bool                `json:"canCreateNote"`
}

// TenantStats represents usage statistics for a tenant
type TenantStats struct {
	TotalNotes      int64                      `json:"totalNotes"`
	ArchivedNotes   int64                      `json:"archivedNotes"`
	NotesByPriority map[models.Priority]int64  `json:"notesByPriority"`
	NotesByCategory []repository.CategoryCount `json:"notesByCategory"`
	Subscription    models.Subscription        `json:"subscription"`
	NoteLimit       interface{}                `json:"noteLimit" swaggertype:"string"`
	CanCreateNote   bool                       `json:"canCreateNote"`
}

func (s *TenantService) findBySlug(slug string) (*models.Tenant, error) {
	tenant, err := s.tenants.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) buildInfo(tenant *models.Tenant) (*TenantInfo, error) {
	count, err := s.notes.CountByTenant(tenant.ID)
	if err != nil {
		return nil, err
	}
	return &TenantInfo{
		ID:            tenant.ID,
		Name:          tenant.Name,
		Slug:          tenant.Slug,
		Subscription:  tenant.Subscription,
		NoteCount:     count,
		NoteLimit:     tenant.NoteLimit(),
		CanCreateNote: tenant.CanCreateNote(count),
	}, nil
}

// GetInfo returns a tenant's public information by slug
func (s *TenantService) GetInfo(slug string) (*TenantInfo, error) {
	tenant, err := s.findBySlug(slug)
	if err != nil {
		return nil, err
	}
	return s.buildInfo(tenant)
}

// Upgrade moves a tenant from the free plan to pro. Only the tenant's own
// admins may upgrade it, and the transition is one-way.
func (s *TenantService) Upgrade(acting *models.Tenant, slug string) (*TenantInfo, error) {
	tenant, err := s.findBySlug(slug)
	if err != nil {
		return nil, err
	}
	if acting.ID != tenant.ID {
		return nil, apperrors.ErrAccessDenied
	}
	if tenant.IsPro() {
		return nil, apperrors.ErrTenantAlreadyPro
	}

	tenant.Subscription = models.SubscriptionPro
	if err := s.tenants.Update(tenant); err != nil {
		return nil, err
	}
	return s.buildInfo(tenant)
}

// Stats returns usage statistics for a tenant. Only the tenant's own admins
// may read them.
func (s *TenantService) Stats(acting *models.Tenant, slug string) (*TenantStats, error) {
	tenant, err := s.findBySlug(slug)
	if err != nil {
		return nil, err
	}
	if acting.ID != tenant.ID {
		return nil, apperrors.ErrAccessDenied
	}

	count, err := s.notes.CountByTenant(tenant.ID)
	if err != nil {
		return nil, err
	}
	archived, err := s.notes.CountArchivedByTenant(tenant.ID)
	if err != nil {
		return nil, err
	}
	byPriority, err := s.notes.CountByPriority(tenant.ID)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.notes.TopCategories(tenant.ID, topCategoryLimit)
	if err != nil {
		return nil, err
	}

	return &TenantStats{
		TotalNotes:      count,
		ArchivedNotes:   archived,
		NotesByPriority: byPriority,
		NotesByCategory: byCategory,
		Subscription:    tenant.Subscription,
		NoteLimit:       tenant.NoteLimit(),
		CanCreateNote:   tenant.CanCreateNote(count),
	}, nil
}
