package database

import (
	"fmt"
	"os"

	"notes-saas-backend/internal/database/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedData describes the initial tenants and users created on first startup.
type SeedData struct {
	Tenants []SeedTenant `yaml:"tenants"`
}

type SeedTenant struct {
	Name         string     `yaml:"name"`
	Slug         string     `yaml:"slug"`
	Subscription string     `yaml:"subscription"`
	Users        []SeedUser `yaml:"users"`
}

type SeedUser struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Role      string `yaml:"role"`
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
}

// defaultSeed mirrors the two demo tenants the service has always shipped with.
func defaultSeed() *SeedData {
	return &SeedData{
		Tenants: []SeedTenant{
			{
				Name: "Acme Corp", Slug: "acme", Subscription: "free",
				Users: []SeedUser{
					{Email: "admin@acme.test", Password: "password", Role: "admin"},
					{Email: "user@acme.test", Password: "password", Role: "member"},
				},
			},
			{
				Name: "Globex Inc", Slug: "globex", Subscription: "free",
				Users: []SeedUser{
					{Email: "admin@globex.test", Password: "password", Role: "admin"},
					{Email: "user@globex.test", Password: "password", Role: "member"},
				},
			},
		},
	}
}

// LoadSeedFile parses a YAML seed file
func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(data.Tenants) == 0 {
		return nil, fmt.Errorf("seed file %s contains no tenants", path)
	}
	return &data, nil
}

// Seed creates the initial tenants and users when the tenant table is empty.
// An existing tenant row means the store is already populated and seeding is
// skipped entirely.
func Seed(db *gorm.DB, seedFile string) error {
	var count int64
	if err := db.Model(&models.Tenant{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count tenants: %w", err)
	}
	if count > 0 {
		logrus.Info("Data already exists, skipping seed")
		return nil
	}

	data := defaultSeed()
	if seedFile != "" {
		loaded, err := LoadSeedFile(seedFile)
		if err != nil {
			return err
		}
		data = loaded
	}

	logrus.Info("Seeding initial data...")
	for _, st := range data.Tenants {
		subscription := models.SubscriptionFree
		if st.Subscription == string(models.SubscriptionPro) {
			subscription = models.SubscriptionPro
		}
		tenant := &models.Tenant{
			Name:         st.Name,
			Slug:         st.Slug,
			Subscription: subscription,
			IsActive:     true,
		}
		if err := db.Create(tenant).Error; err != nil {
			return fmt.Errorf("seed tenant %s: %w", st.Slug, err)
		}

		for _, su := range st.Users {
			hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), 12)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", su.Email, err)
			}
			role := models.RoleMember
			if su.Role == string(models.RoleAdmin) {
				role = models.RoleAdmin
			}
			user := &models.User{
				Email:     su.Email,
				Password:  string(hash),
				Role:      role,
				TenantID:  tenant.ID,
				IsActive:  true,
				FirstName: su.FirstName,
				LastName:  su.LastName,
			}
			if err := db.Create(user).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", su.Email, err)
			}
			logrus.Infof("Seeded user %s (%s) in tenant %s", user.Email, user.Role, tenant.Slug)
		}
	}

	logrus.Infof("Seed data created: %d tenants", len(data.Tenants))
	return nil
}
