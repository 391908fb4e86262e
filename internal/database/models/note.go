package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Priority represents a note's priority level
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// StringList is a []string stored as a jsonb array column
type StringList []string

// Value implements driver.Valuer for jsonb storage
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for jsonb storage
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// Note represents a short text note owned by a tenant and authored by a user.
// TenantID is immutable after creation; a note is never visible outside its
// owning tenant.
type Note struct {
	BaseModel
	Title       string     `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Content     string     `json:"content" gorm:"type:text;not null" validate:"required,min=1,max=10000"`
	Tags        StringList `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	Priority    Priority   `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	Category    string     `json:"category" gorm:"size:100;not null;default:''" validate:"max=100"`
	IsArchived  bool       `json:"isArchived" gorm:"not null;default:false;index:idx_notes_tenant_archived,priority:2"`
	TenantID    uuid.UUID  `json:"tenantId" gorm:"type:uuid;not null;index;index:idx_notes_tenant_archived,priority:1"`
	CreatedByID uuid.UUID  `json:"-" gorm:"type:uuid;not null;index"`
	Author      *User      `json:"-" gorm:"foreignKey:CreatedByID"`
}

// TableName returns the table name for Note
func (Note) TableName() string {
	return "notes"
}

// BelongsToTenant reports whether the note is owned by the given tenant
func (n *Note) BelongsToTenant(tenantID uuid.UUID) bool {
	return n.TenantID == tenantID
}
