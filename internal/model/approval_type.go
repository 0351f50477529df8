package model

import "time"

// ApprovalType is a tenant-defined classification label. Projects and
// tasks reference an approval type by ID; the display value is resolved
// by lookup, never embedded.
type ApprovalType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TenantID  uint      `json:"tenant_id" gorm:"index;not null"`
	Value     string    `json:"value" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
