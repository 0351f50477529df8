package model

import "time"

// Punctuality statuses for attendance records.
const (
	PunctualStatusOnTime = "On-Time"
	PunctualStatusLate   = "Late"
)

// Attendance is a daily punch record for a member. One record per
// member per punch date.
type Attendance struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	TenantID       uint      `json:"tenant_id" gorm:"index;not null"`
	MemberID       uint      `json:"member_id" gorm:"index;not null"`
	PunchDate      string    `json:"punch_date" gorm:"type:varchar(10);index;not null"`
	PunchInTime    string    `json:"punch_in_time" gorm:"type:varchar(8)"`
	PunchOutTime   string    `json:"punch_out_time" gorm:"type:varchar(8)"`
	WorkingHours   string    `json:"working_hours" gorm:"type:varchar(16)"`
	PunctualStatus string    `json:"punctual_status" gorm:"type:varchar(16);index"`
	PunchType      string    `json:"punch_type" gorm:"type:varchar(16);default:'WEB'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}
