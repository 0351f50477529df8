package model

import (
	"time"

	"gorm.io/gorm"
)

// Member represents a team member of a tenant. TargetHours is the
// member's expected capacity in hours and is the denominator for
// utilization figures. Members are soft-deleted so historical time logs
// keep their attribution.
type Member struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	TenantID          uint           `json:"tenant_id" gorm:"index;not null"`
	FirstName         string         `json:"first_name" gorm:"type:varchar(100);not null"`
	Surname           string         `json:"surname" gorm:"type:varchar(100)"`
	TimeSheetInitials string         `json:"time_sheet_initials" gorm:"type:varchar(10)"`
	Team              string         `json:"team" gorm:"type:varchar(100);index"`
	TargetHours       int            `json:"target_hours" gorm:"default:0"`
	Active            bool           `json:"active" gorm:"default:true"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// FullName returns the display name used in team member listings.
func (m *Member) FullName() string {
	if m.Surname == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.Surname
}

// IsDeleted reports whether the member has been soft-deleted.
func (m *Member) IsDeleted() bool {
	return m.DeletedAt.Valid
}
