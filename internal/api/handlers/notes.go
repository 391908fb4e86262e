package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"notes-saas-backend/internal/auth"
	apperrors "notes-saas-backend/internal/errors"
	"notes-saas-backend/internal/metrics"
	"notes-saas-backend/internal/repository"
	"notes-saas-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// NoteHandler handles HTTP requests for notes
type NoteHandler struct {
	noteService service.NoteServiceInterface
	validator   *validator.Validate
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService service.NoteServiceInterface, validator *validator.Validate) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		validator:   validator,
	}
}

// parseNoteQuery validates the list query parameters and applies defaults,
// writing the validation error envelope when a parameter is out of range.
func parseNoteQuery(c *gin.Context) (*repository.NoteQuery, bool) {
	query := &repository.NoteQuery{
		Page:      1,
		Limit:     10,
		SortBy:    "createdAt",
		SortOrder: "desc",
	}
	var errs []string

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			errs = append(errs, "Page must be a positive integer")
		} else {
			query.Page = page
		}
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 100 {
			errs = append(errs, "Limit must be between 1 and 100")
		} else {
			query.Limit = limit
		}
	}
	if raw := c.Query("sortBy"); raw != "" {
		switch raw {
		case "createdAt", "updatedAt", "title", "priority":
			query.SortBy = raw
		default:
			errs = append(errs, "SortBy must be one of: createdAt, updatedAt, title, priority")
		}
	}
	if raw := c.Query("sortOrder"); raw != "" {
		switch raw {
		case "asc", "desc":
			query.SortOrder = raw
		default:
			errs = append(errs, "SortOrder must be one of: asc, desc")
		}
	}
	if raw := c.Query("includeArchived"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, "IncludeArchived must be a boolean")
		} else {
			query.IncludeArchived = include
		}
	}
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				query.Tags = append(query.Tags, tag)
			}
		}
	}
	if raw := c.Query("priority"); raw != "" {
		switch raw {
		case "low", "medium", "high":
			query.Priority = raw
		default:
			errs = append(errs, "Priority must be one of: low, medium, high")
		}
	}
	if raw := c.Query("search"); raw != "" {
		if len(raw) > 100 {
			errs = append(errs, "Search cannot exceed 100 characters")
		} else {
			query.Search = raw
		}
	}
	if raw := c.Query("category"); raw != "" {
		if len(raw) > 100 {
			errs = append(errs, "Category cannot exceed 100 characters")
		} else {
			query.Category = raw
		}
	}

	if len(errs) > 0 {
		respondValidationErrors(c, errs)
		return nil, false
	}
	return query, true
}

// Create creates a new note for the acting tenant
// @Summary Create note
// @Description Create a note. Free tenants are limited to 3 notes.
// @Tags notes
// @Accept json
// @Produce json
// @Param note body service.CreateNoteRequest true "Note data"
// @Success 201 {object} map[string]interface{} "Note created successfully"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "Note limit reached"
// @Security BearerAuth
// @Router /api/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
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

	var req service.CreateNoteRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	note, err := h.noteService.Create(tenant, user, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	metrics.NotesCreatedTotal.WithLabelValues(tenant.Slug).Inc()
	respondMessageData(c, http.StatusCreated, "Note created successfully", gin.H{"note": note})
}

// List returns the acting tenant's notes matching the query
// @Summary List notes
// @Description List notes with filtering, search, sorting and pagination
// @Tags notes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (1-100)" default(10)
// @Param sortBy query string false "Sort key: createdAt, updatedAt, title, priority" default(createdAt)
// @Param sortOrder query string false "Sort direction: asc, desc" default(desc)
// @Param includeArchived query bool false "Include archived notes" default(false)
// @Param tags query string false "Comma-separated tags, matches any"
// @Param priority query string false "Exact priority: low, medium, high"
// @Param search query string false "Search over title, content, category and tags"
// @Param category query string false "Exact category"
// @Success 200 {object} map[string]interface{} "Notes with pagination"
// @Failure 400 {object} ErrorResponse "Invalid query parameter"
// @Security BearerAuth
// @Router /api/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	tenant, err := auth.CurrentTenant(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}

	query, ok := parseNoteQuery(c)
	if !ok {
		return
	}

	notes, pagination, err := h.noteService.List(tenant.ID, query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"notes":      notes,
		"pagination": pagination,
	})
}

// Get returns a single note
// @Summary Get note
// @Description Get a note by id. Notes of other tenants are reported as not found.
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} map[string]interface{} "Note"
// @Failure 400 {object} ErrorResponse "Invalid note ID"
// @Failure 404 {object} ErrorResponse "Note not found"
// @Security BearerAuth
// @Router /api/notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	tenant, err := auth.CurrentTenant(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	note, err := h.noteService.Get(tenant.ID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"note": note})
}

// Update applies a partial update to a note
// @Summary Update note
// @Description Update note fields. Tenant ownership is immutable.
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Param note body service.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Note updated successfully"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Note not found"
// @Security BearerAuth
// @Router /api/notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	tenant, err := auth.CurrentTenant(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateNoteRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	note, err := h.noteService.Update(tenant.ID, id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessageData(c, http.StatusOK, "Note updated successfully", gin.H{"note": note})
}

// Delete removes a note
// @Summary Delete note
// @Description Delete a note by id
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} MessageResponse "Note deleted successfully"
// @Failure 404 {object} ErrorResponse "Note not found"
// @Security BearerAuth
// @Router /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	tenant, err := auth.CurrentTenant(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.noteService.Delete(tenant.ID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Note deleted successfully")
}

// ToggleArchive flips a note's archived flag
// @Summary Archive or unarchive note
// @Description Toggle the archived flag of a note
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} map[string]interface{} "Note archived/unarchived successfully"
// @Failure 404 {object} ErrorResponse "Note not found"
// @Security BearerAuth
// @Router /api/notes/{id}/archive [patch]
func (h *NoteHandler) ToggleArchive(c *gin.Context) {
	tenant, err := auth.CurrentTenant(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	note, err := h.noteService.ToggleArchive(tenant.ID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "Note unarchived successfully"
	if note.IsArchived {
		message = "Note archived successfully"
	}
	respondMessageData(c, http.StatusOK, message, gin.H{"note": note})
}
