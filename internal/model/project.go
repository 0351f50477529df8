package model

import (
	"time"

	"gorm.io/gorm"
)

// Project types.
const (
	ProjectTypeSingle    = "single"
	ProjectTypeRepeating = "repeating"
)

// Project represents a client project. TeamMembers must belong to the
// same tenant as the project. AddTasks gates whether non-admin creators
// may add tasks and time logs.
type Project struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	TenantID          uint           `json:"tenant_id" gorm:"index;not null"`
	ClientID          uint           `json:"client_id" gorm:"index;not null"`
	Title             string         `json:"title" gorm:"type:varchar(200);not null"`
	ProjectType       string         `json:"project_type" gorm:"type:varchar(20);default:'single'"`
	ApprovalTypeID    *uint          `json:"approval_type_id,omitempty" gorm:"index"`
	Estimate          float64        `json:"estimate" gorm:"default:0"`
	Invoice           float64        `json:"invoice" gorm:"default:0"`
	DefaultHourlyRate float64        `json:"default_hourly_rate" gorm:"default:0"`
	AddTasks          bool           `json:"add_tasks" gorm:"default:false"`
	ClientView        bool           `json:"client_view" gorm:"default:false"`
	Active            bool           `json:"active" gorm:"default:true"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Client      Client   `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	TeamMembers []Member `json:"team_members,omitempty" gorm:"many2many:project_team_members"`
}
