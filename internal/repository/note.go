package repository

import (
	"strings"

	"notes-saas-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteQuery captures the list filters, search, sort and pagination options
// for a tenant's notes.
type NoteQuery struct {
	Search          string
	Category        string
	Priority        string
	Tags            []string
	IncludeArchived bool
	SortBy          string
	SortOrder       string
	Page            int
	Limit           int
}

// sortColumns whitelists the sortable fields and maps them to columns.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"priority":  "priority",
}

// OrderClause resolves the query's sort key and direction into a SQL order
// clause. Unknown keys fall back to created_at, unknown directions to DESC.
func (q *NoteQuery) OrderClause() string {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(q.SortOrder, "asc") {
		direction = "ASC"
	}
	return column + " " + direction
}

// Offset returns the row offset for the query's page and limit.
func (q *NoteQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// CategoryCount pairs a category name with its note count
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// NoteRepository handles database operations for notes
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create creates a new note
func (r *NoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// GetByTenantAndID retrieves a note by ID scoped to the owning tenant
func (r *NoteRepository) GetByTenantAndID(tenantID, noteID uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.Preload("Author").First(&note, "id = ? AND tenant_id = ?", noteID, tenantID).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// List retrieves a tenant's notes matching the query, with the total count of
// matching rows before pagination.
func (r *NoteRepository) List(tenantID uuid.UUID, query *NoteQuery) ([]models.Note, int64, error) {
	var notes []models.Note
	var total int64

	q := r.db.Model(&models.Note{}).Where("tenant_id = ?", tenantID)

	if !query.IncludeArchived {
		q = q.Where("is_archived = ?", false)
	}
	if query.Category != "" {
		q = q.Where("category = ?", query.Category)
	}
	if query.Priority != "" {
		q = q.Where("priority = ?", query.Priority)
	}
	if len(query.Tags) > 0 {
		// Match notes carrying at least one of the requested tags
		q = q.Where(
			"EXISTS (SELECT 1 FROM jsonb_array_elements_text(notes.tags) AS t(tag) WHERE t.tag IN ?)",
			query.Tags,
		)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		q = q.Where(
			"title ILIKE ? OR content ILIKE ? OR category ILIKE ? OR tags::text ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	// Get total count
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := q.Preload("Author").
		Order(query.OrderClause()).
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&notes).Error
	if err != nil {
		return nil, 0, err
	}

	return notes, total, nil
}

// Update updates a note
func (r *NoteRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

// Delete deletes a note scoped to the owning tenant. Returns
// gorm.ErrRecordNotFound when no row matched.
func (r *NoteRepository) Delete(tenantID, noteID uuid.UUID) error {
	result := r.db.Delete(&models.Note{}, "id = ? AND tenant_id = ?", noteID, tenantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByTenant returns the number of notes a tenant holds, archived
// included. This is the free-tier quota basis; archiving does not free quota.
func (r *NoteRepository) CountByTenant(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Note{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

// CountArchivedByTenant returns the number of archived notes a tenant holds
func (r *NoteRepository) CountArchivedByTenant(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Note{}).
		Where("tenant_id = ? AND is_archived = ?", tenantID, true).
		Count(&count).Error
	return count, err
}

// CountByPriority returns note counts grouped by priority for a tenant
func (r *NoteRepository) CountByPriority(tenantID uuid.UUID) (map[models.Priority]int64, error) {
	type row struct {
		Priority models.Priority
		Count    int64
	}
	var rows []row
	err := r.db.Model(&models.Note{}).
		Select("priority, COUNT(*) AS count").
		Where("tenant_id = ?", tenantID).
		Group("priority").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[models.Priority]int64{
		models.PriorityLow:    0,
		models.PriorityMedium: 0,
		models.PriorityHigh:   0,
	}
	for _, r := range rows {
		counts[r.Priority] = r.Count
	}
	return counts, nil
}

// TopCategories returns the most used non-empty categories for a tenant
func (r *NoteRepository) TopCategories(tenantID uuid.UUID, limit int) ([]CategoryCount, error) {
	var categories []CategoryCount
	err := r.db.Model(&models.Note{}).
		Select("category, COUNT(*) AS count").
		Where("tenant_id = ? AND category <> ''", tenantID).
		Group("category").
		Order("count DESC, category ASC").
		Limit(limit).
		Scan(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
