package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role represents a user's role within its tenant
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User represents an account scoped to a single tenant. The password column
// holds a bcrypt hash and is never serialized.
type User struct {
	BaseModel
	Email     string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password  string     `json:"-" gorm:"not null;size:100"`
	Role      Role       `json:"role" gorm:"type:varchar(10);not null;default:'member'"`
	TenantID  uuid.UUID  `json:"tenantId" gorm:"type:uuid;index;not null"`
	Tenant    *Tenant    `json:"-" gorm:"foreignKey:TenantID"`
	IsActive  bool       `json:"isActive" gorm:"not null;default:true"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	FirstName string     `json:"firstName" gorm:"size:50" validate:"max=50"`
	LastName  string     `json:"lastName" gorm:"size:50" validate:"max=50"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsMemberOrAdmin reports whether the user holds any recognized role
func (u *User) IsMemberOrAdmin() bool {
	return u.Role == RoleMember || u.Role == RoleAdmin
}

// FullName returns the profile name, falling back to the email local part
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	return strings.SplitN(u.Email, "@", 2)[0]
}
