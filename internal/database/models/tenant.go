package models

// Subscription represents a tenant's subscription tier
type Subscription string

const (
	SubscriptionFree Subscription = "free"
	SubscriptionPro  Subscription = "pro"
)

// FreeNoteLimit is the maximum number of notes a free-tier tenant may hold.
const FreeNoteLimit = 3

// Tenant represents an organization; all users and notes are scoped to one tenant
type Tenant struct {
	BaseModel
	Name         string       `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Slug         string       `json:"slug" gorm:"size:50;uniqueIndex;not null" validate:"required,min=2,max=50"`
	Subscription Subscription `json:"subscription" gorm:"type:varchar(10);not null;default:'free'"`
	IsActive     bool         `json:"isActive" gorm:"not null;default:true"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// IsPro reports whether the tenant is on the pro plan
func (t *Tenant) IsPro() bool {
	return t.Subscription == SubscriptionPro
}

// CanCreateNote decides whether the tenant may create another note given its
// current note count, archived notes included. Free tenants are capped at
// FreeNoteLimit; pro tenants are unbounded.
func (t *Tenant) CanCreateNote(noteCount int64) bool {
	if t.IsPro() {
		return true
	}
	return noteCount < FreeNoteLimit
}

// NoteLimit returns the serializable note limit: the numeric cap for free
// tenants, the string "unlimited" for pro tenants.
func (t *Tenant) NoteLimit() interface{} {
	if t.IsPro() {
		return "unlimited"
	}
	return FreeNoteLimit
}
