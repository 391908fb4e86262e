package service

import (
	"notes-saas-backend/internal/database/models"
	"notes-saas-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for authentication operations
type AuthServiceInterface interface {
	Login(req *LoginRequest) (*LoginResult, error)
	Invite(tenant *models.Tenant, req *InviteRequest) (*UserResponse, error)
	UpdateProfile(user *models.User, tenant *models.Tenant, req *UpdateProfileRequest) (*UserResponse, error)
	ChangePassword(user *models.User, req *ChangePasswordRequest) error
}

// NoteServiceInterface defines the interface for note operations
type NoteServiceInterface interface {
	Create(tenant *models.Tenant, user *models.User, req *CreateNoteRequest) (*NoteResponse, error)
	List(tenantID uuid.UUID, query *repository.NoteQuery) ([]NoteResponse, *Pagination, error)
	Get(tenantID, noteID uuid.UUID) (*NoteResponse, error)
	Update(tenantID, noteID uuid.UUID, req *UpdateNoteRequest) (*NoteResponse, error)
	Delete(tenantID, noteID uuid.UUID) error
	ToggleArchive(tenantID, noteID uuid.UUID) (*NoteResponse, error)
}

// TenantServiceInterface defines the interface for tenant operations
type TenantServiceInterface interface {
	GetInfo(slug string) (*TenantInfo, error)
	Upgrade(acting *models.Tenant, slug string) (*TenantInfo, error)
	Stats(acting *models.Tenant, slug string) (*TenantStats, error)
}
