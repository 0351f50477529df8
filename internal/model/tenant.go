package model

import (
	"time"

	"gorm.io/gorm"
)

// Tenant represents the tenant (admin account) that owns all clients,
// projects, members and settings. Every query is scoped by tenant ID.
type Tenant struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"type:varchar(100);uniqueIndex"`
	OwnerEmail string         `json:"owner_email" gorm:"type:varchar(100)"`
	Active     bool           `json:"active" gorm:"default:true"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
