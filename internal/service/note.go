package service

import (
	"errors"
	"time"

	"notes-saas-backend/internal/database/models"
	apperrors "notes-saas-backend/internal/errors"
	"notes-saas-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteService handles business logic for notes
type NoteService struct {
	notes     repository.NoteRepositoryInterface
	validator *validator.Validate
}

// NewNoteService creates a new note service
func NewNoteService(notes repository.NoteRepositoryInterface, validator *validator.Validate) *NoteService {
	return &NoteService{
		notes:     notes,
		validator: validator,
	}
}

// CreateNoteRequest represents the data needed to create a note
type CreateNoteRequest struct {
	Title    string   `json:"title" validate:"required,min=1,max=200"`
	Content  string   `json:"content" validate:"required,min=1,max=10000"`
	Tags     []string `json:"tags" validate:"omitempty,max=10,dive,max=50"`
	Priority string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category string   `json:"category" validate:"omitempty,max=100"`
}

// UpdateNoteRequest represents a partial note update. At least one field must
// be present; tenant ownership is never updatable.
type UpdateNoteRequest struct {
	Title      *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Content    *string  `json:"content" validate:"omitempty,min=1,max=10000"`
	Tags       []string `json:"tags" validate:"omitempty,max=10,dive,max=50"`
	Priority   *string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category   *string  `json:"category" validate:"omitempty,max=100"`
	IsArchived *bool    `json:"isArchived"`
}

// AuthorSummary is the author block embedded in note payloads
type AuthorSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
}

// NoteResponse represents the response data for a note
type NoteResponse struct {
	ID         uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Tags       []string        `json:"tags"`
	Priority   models.Priority `json:"priority"`
	Category   string          `json:"category"`
	IsArchived bool            `json:"isArchived"`
	TenantID   uuid.UUID       `json:"tenantId"`
	CreatedBy  *AuthorSummary  `json:"createdBy,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Pagination describes the page window of a list response
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func toNoteResponse(note *models.Note) *NoteResponse {
	tags := []string(note.Tags)
	if tags == nil {
		tags = []string{}
	}
	resp := &NoteResponse{
		ID:         note.ID,
		Title:      note.Title,
		Content:    note.Content,
		Tags:       tags,
		Priority:   note.Priority,
		Category:   note.Category,
		IsArchived: note.IsArchived,
		TenantID:   note.TenantID,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}
	if note.Author != nil {
		resp.CreatedBy = &AuthorSummary{
			ID:        note.Author.ID,
			Email:     note.Author.Email,
			FirstName: note.Author.FirstName,
			LastName:  note.Author.LastName,
		}
	}
	return resp
}

// Create creates a note for the tenant after checking the subscription
// policy. The count and the insert are separate statements, so two
// simultaneous creates on a full free tenant can both pass the check.
func (s *NoteService) Create(tenant *models.Tenant, user *models.User, req *CreateNoteRequest) (*NoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	count, err := s.notes.CountByTenant(tenant.ID)
	if err != nil {
		return nil, err
	}
	if !tenant.CanCreateNote(count) {
		return nil, apperrors.ErrNoteLimitReached
	}

	priority := models.PriorityMedium
	if req.Priority != "" {
		priority = models.Priority(req.Priority)
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	note := &models.Note{
		Title:       req.Title,
		Content:     req.Content,
		Tags:        models.StringList(tags),
		Priority:    priority,
		Category:    req.Category,
		TenantID:    tenant.ID,
		CreatedByID: user.ID,
	}
	if err := s.notes.Create(note); err != nil {
		return nil, err
	}

	note.Author = user
	return toNoteResponse(note), nil
}

// List returns the tenant's notes matching the query with pagination metadata
func (s *NoteService) List(tenantID uuid.UUID, query *repository.NoteQuery) ([]NoteResponse, *Pagination, error) {
	notes, total, err := s.notes.List(tenantID, query)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, *toNoteResponse(&notes[i]))
	}

	pages := int((total + int64(query.Limit) - 1) / int64(query.Limit))
	return responses, &Pagination{
		Page:  query.Page,
		Limit: query.Limit,
		Total: total,
		Pages: pages,
	}, nil
}

// Get retrieves a single note scoped to the tenant
func (s *NoteService) Get(tenantID, noteID uuid.UUID) (*NoteResponse, error) {
	note, err := s.notes.GetByTenantAndID(tenantID, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, err
	}
	return toNoteResponse(note), nil
}

// Update applies the provided fields to a note scoped to the tenant
func (s *NoteService) Update(tenantID, noteID uuid.UUID, req *UpdateNoteRequest) (*NoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Title == nil && req.Content == nil && req.Tags == nil &&
		req.Priority == nil && req.Category == nil && req.IsArchived == nil {
		return nil, apperrors.NewValidationError("", "At least one field is required")
	}

	note, err := s.notes.GetByTenantAndID(tenantID, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Tags != nil {
		note.Tags = models.StringList(req.Tags)
	}
	if req.Priority != nil {
		note.Priority = models.Priority(*req.Priority)
	}
	if req.Category != nil {
		note.Category = *req.Category
	}
	if req.IsArchived != nil {
		note.IsArchived = *req.IsArchived
	}

	if err := s.notes.Update(note); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

// Delete removes a note scoped to the tenant
func (s *NoteService) Delete(tenantID, noteID uuid.UUID) error {
	err := s.notes.Delete(tenantID, noteID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNoteNotFound
	}
	return err
}

// ToggleArchive flips a note's archived flag
func (s *NoteService) ToggleArchive(tenantID, noteID uuid.UUID) (*NoteResponse, error) {
	note, err := s.notes.GetByTenantAndID(tenantID, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, err
	}

	note.IsArchived = !note.IsArchived
	if err := s.notes.Update(note); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}
