package model

import (
	"time"

	"gorm.io/gorm"
)

// Task statuses.
const (
	TaskStatusOpen       = "open"
	TaskStatusInProgress = "in_progress"
	TaskStatusClosed     = "closed"
)

// Creator types for tasks and time logs.
const (
	CreatorTypeAdmin  = "admin"
	CreatorTypeMember = "member"
)

// Task represents a unit of work under a project. BillableMinutes is
// the billable cap for the task; the sum of its time logs' billable
// minutes must not exceed it at insert time.
type Task struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	TenantID        uint           `json:"tenant_id" gorm:"index;not null"`
	ProjectID       uint           `json:"project_id" gorm:"index;not null"`
	CreatorID       uint           `json:"creator_id" gorm:"index"`
	CreatorType     string         `json:"creator_type" gorm:"type:varchar(20);default:'admin'"`
	Description     string         `json:"description" gorm:"type:text"`
	ApprovalTypeID  *uint          `json:"approval_type_id,omitempty" gorm:"index"`
	BillableMinutes int            `json:"billable_minutes" gorm:"default:0"`
	Status          string         `json:"status" gorm:"type:varchar(20);default:'open';index"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Assignees []Member  `json:"assignees,omitempty" gorm:"many2many:task_assignees"`
	TimeLogs  []TimeLog `json:"time_logs,omitempty" gorm:"foreignKey:TaskID"`
}

// HasAssignee reports whether the member is assigned to the task.
func (t *Task) HasAssignee(memberID uint) bool {
	for _, m := range t.Assignees {
		if m.ID == memberID {
			return true
		}
	}
	return false
}

// LoggedBillableMinutes sums the billable minutes already recorded
// against the task.
func (t *Task) LoggedBillableMinutes() int {
	total := 0
	for _, l := range t.TimeLogs {
		total += l.BillableMinutes
	}
	return total
}
