package model

import "time"

// TimeLog is a single recorded work entry against a task. Time logs
// have no independent soft delete; they live and die with their task.
type TimeLog struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	TaskID          uint      `json:"task_id" gorm:"index;not null"`
	Date            time.Time `json:"date" gorm:"index;not null"`
	ActualMinutes   int       `json:"actual_minutes" gorm:"default:0"`
	BillableMinutes int       `json:"billable_minutes" gorm:"default:0"`
	Note            string    `json:"note" gorm:"type:text"`
	LoggedBy        string    `json:"logged_by" gorm:"type:varchar(20);default:'member'"`
	CreatorID       uint      `json:"creator_id" gorm:"index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
