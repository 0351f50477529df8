package model

import (
	"time"

	"gorm.io/gorm"
)

// Client represents a customer of the tenant. Projects reference exactly
// one client.
type Client struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	TenantID  uint           `json:"tenant_id" gorm:"index;not null"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null"`
	LinkCode  string         `json:"link_code" gorm:"type:varchar(64);index"`
	Active    bool           `json:"active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
