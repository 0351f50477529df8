package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"timesheet-service/internal/model"
	"timesheet-service/internal/timesheet"
	"timesheet-service/prometheus"
)

// Attendance listings page by 5, independent of the timesheet default.
const AttendancePageSize = 5

// FindPunch returns the member's punch record for one date, or
// (nil, nil) when the member has not punched in that day.
func (s *TenantStore) FindPunch(ctx context.Context, memberID uint, punchDate string) (*model.Attendance, error) {
	defer prometheus.TrackDBOperation("find_punch")(time.Now())

	var attendance model.Attendance
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND member_id = ? AND punch_date = ?", s.tenantID, memberID, punchDate).
		First(&attendance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// CreatePunch inserts a new punch-in record.
func (s *TenantStore) CreatePunch(ctx context.Context, attendance *model.Attendance) error {
	defer prometheus.TrackDBOperation("create_punch")(time.Now())

	attendance.TenantID = s.tenantID
	return s.db.WithContext(ctx).Create(attendance).Error
}

// SavePunch persists an updated punch record (punch-out).
func (s *TenantStore) SavePunch(ctx context.Context, attendance *model.Attendance) error {
	defer prometheus.TrackDBOperation("save_punch")(time.Now())

	return s.db.WithContext(ctx).Save(attendance).Error
}

// ListAttendance returns one page of punch records, newest date first,
// plus the total match count. Filters narrow by member, member name
// search, team, punctual status and an inclusive punch date range. The
// members join is raw, so soft-deleted members' records stay listed.
func (s *TenantStore) ListAttendance(ctx context.Context, opts timesheet.ListOptions) ([]model.Attendance, int64, error) {
	defer prometheus.TrackDBOperation("list_attendance")(time.Now())

	filtered := func(db *gorm.DB) *gorm.DB {
		query := db.Model(&model.Attendance{}).
			Joins("JOIN members ON members.id = attendances.member_id").
			Where("attendances.tenant_id = ?", s.tenantID)
		if opts.MemberID != 0 {
			query = query.Where("attendances.member_id = ?", opts.MemberID)
		}
		if opts.Search != "" {
			pattern := "%" + opts.Search + "%"
			query = query.Where("members.first_name ILIKE ? OR members.surname ILIKE ?", pattern, pattern)
		}
		if opts.Team != "" {
			query = query.Where("members.team = ?", opts.Team)
		}
		if opts.Status != "" {
			query = query.Where("punctual_status = ?", opts.Status)
		}
		if !opts.From.IsZero() {
			query = query.Where("punch_date >= ?", opts.From.Format("2006-01-02"))
		}
		if !opts.To.IsZero() {
			query = query.Where("punch_date <= ?", opts.To.Format("2006-01-02"))
		}
		return query
	}

	var total int64
	if err := filtered(s.db.WithContext(ctx)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.Attendance
	err := filtered(s.db.WithContext(ctx)).
		Preload("Member", unscopedMembers).
		Order("attendances.punch_date DESC, attendances.id DESC").
		Limit(opts.Limit()).
		Offset(opts.Offset()).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
