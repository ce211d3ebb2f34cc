package models

import "time"

// Portal roles.
const (
	RolePsychologist = "psychologist"
	RoleCompany      = "company"
	RoleAdmin        = "admin"
)

// PortalUser is an account on the portal. Company accounts carry the tenant
// id that scopes every questionnaire and metrics query.
type PortalUser struct {
	ID        int    `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex"`
	Password  string
	Name      string
	Role      string `gorm:"default:company"`
	CompanyID string `gorm:"index"`

	EmailNotificationsEnabled bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
