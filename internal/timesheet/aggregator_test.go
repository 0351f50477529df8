package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"timesheet-service/internal/model"
)

// fakeStore is an in-memory Store for aggregator tests.
type fakeStore struct {
	members   []model.Member
	projects  []model.Project
	tasks     []model.Task
	approvals []model.ApprovalType
}

func (s *fakeStore) FindMember(_ context.Context, memberID uint) (*model.Member, error) {
	for i := range s.members {
		if s.members[i].ID == memberID && !s.members[i].IsDeleted() {
			member := s.members[i]
			return &member, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) FindProjectByID(_ context.Context, projectID uint) (*model.Project, error) {
	for i := range s.projects {
		if s.projects[i].ID == projectID {
			project := s.projects[i]
			return &project, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) FindProjectsByMember(_ context.Context, memberID uint) ([]model.Project, error) {
	var out []model.Project
	for _, p := range s.projects {
		for _, m := range p.TeamMembers {
			if m.ID == memberID {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (s *fakeStore) FindTasksByProject(_ context.Context, projectID uint, status string) ([]model.Task, error) {
	var out []model.Task
	for _, task := range s.tasks {
		if task.ProjectID != projectID {
			continue
		}
		if status != "" && task.Status != status {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func (s *fakeStore) FindTasksByTenant(_ context.Context, tenantID uint) ([]model.Task, error) {
	var out []model.Task
	for _, task := range s.tasks {
		if task.TenantID == tenantID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (s *fakeStore) FindMembersByIDs(_ context.Context, memberIDs []uint) ([]model.Member, error) {
	var out []model.Member
	for _, id := range memberIDs {
		for i := range s.members {
			if s.members[i].ID == id {
				out = append(out, s.members[i])
			}
		}
	}
	return out, nil
}

func (s *fakeStore) FindApprovalTypes(_ context.Context, tenantID uint) ([]model.ApprovalType, error) {
	var out []model.ApprovalType
	for _, a := range s.approvals {
		if a.TenantID == tenantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func feb(day int) time.Time {
	return time.Date(2024, 2, day, 12, 0, 0, 0, time.UTC)
}

// newTestStore builds the shared fixture: one tenant, an active member
// Jane (target 100h), a soft-deleted member Bob (target 150h), two
// clients and two projects, tasks with logs in and out of February 2024.
func newTestStore() *fakeStore {
	approvalID := uint(1)

	jane := model.Member{ID: 1, TenantID: 1, FirstName: "Jane", Surname: "Doe", TimeSheetInitials: "JD", TargetHours: 100, Active: true}
	bob := model.Member{ID: 2, TenantID: 1, FirstName: "Bob", Surname: "Ray", TimeSheetInitials: "BR", TargetHours: 150,
		DeletedAt: gorm.DeletedAt{Time: feb(1), Valid: true}}
	idle := model.Member{ID: 3, TenantID: 1, FirstName: "Ida", Surname: "Lee", TimeSheetInitials: "IL", TargetHours: 0, Active: true}

	return &fakeStore{
		members: []model.Member{jane, bob, idle},
		projects: []model.Project{
			{
				ID: 100, TenantID: 1, ClientID: 11, Title: "Website", ProjectType: model.ProjectTypeSingle,
				ApprovalTypeID: &approvalID, Estimate: 5000, Invoice: 2500, DefaultHourlyRate: 80,
				AddTasks: true, Active: true,
				Client:      model.Client{ID: 11, TenantID: 1, Name: "Acme", LinkCode: "acme-xyz"},
				TeamMembers: []model.Member{jane, bob},
			},
			{
				ID: 101, TenantID: 1, ClientID: 10, Title: "API", ProjectType: model.ProjectTypeRepeating,
				AddTasks: false, Active: true,
				Client:      model.Client{ID: 10, TenantID: 1, Name: "beta corp"},
				TeamMembers: []model.Member{jane},
			},
		},
		tasks: []model.Task{
			{
				ID: 1000, TenantID: 1, ProjectID: 100, CreatorID: 1, CreatorType: model.CreatorTypeMember,
				Description: "Build landing page", BillableMinutes: 120, Status: model.TaskStatusInProgress,
				Assignees: []model.Member{jane},
				TimeLogs: []model.TimeLog{
					{ID: 1, TaskID: 1000, Date: feb(5), ActualMinutes: 30, BillableMinutes: 30, Note: "wireframes", LoggedBy: model.CreatorTypeMember, CreatorID: 1},
					{ID: 2, TaskID: 1000, Date: feb(10), ActualMinutes: 30, BillableMinutes: 30, LoggedBy: model.CreatorTypeMember, CreatorID: 2},
					{ID: 3, TaskID: 1000, Date: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), ActualMinutes: 60, BillableMinutes: 60, LoggedBy: model.CreatorTypeMember, CreatorID: 1},
				},
			},
			{
				ID: 1001, TenantID: 1, ProjectID: 100, CreatorID: 99, CreatorType: model.CreatorTypeAdmin,
				Description: "Invoice review", BillableMinutes: 60, Status: model.TaskStatusClosed,
				Assignees: []model.Member{bob},
			},
			{
				ID: 1002, TenantID: 1, ProjectID: 101, CreatorID: 1, CreatorType: model.CreatorTypeMember,
				Description: "Rate limiting", BillableMinutes: 60, Status: model.TaskStatusOpen,
				Assignees: []model.Member{jane},
			},
		},
		approvals: []model.ApprovalType{
			{ID: 1, TenantID: 1, Value: "Standard"},
		},
	}
}

func newTestAggregator(store Store) *Aggregator {
	conv := Converter{}
	return NewAggregator(store, conv, NewCalculator(conv))
}

func TestMemberHeader(t *testing.T) {
	agg := newTestAggregator(newTestStore())

	header, err := agg.MemberHeader(context.Background(), 1, "2024-02", "")
	require.NoError(t, err)

	// Target is taken once for the member, not once per project.
	require.Equal(t, "100:00", header.TotalTargetHours)
	// Only the two February logs count; the March log is outside the window.
	require.Equal(t, "01:00", header.TotalLoggedHours)
	require.Equal(t, "01:00", header.TotalMemberBillableHours)
	// Caps of the member's assigned tasks only (1000 and 1002).
	require.Equal(t, "03:00", header.TotalTaskBillableHours)
	require.Equal(t, 2, header.ProjectsCount)
	require.Equal(t, 2, header.TasksCount)
	require.Equal(t, "99:00", header.UnderOver)
	require.Equal(t, "1.00", header.BillableHoursPercentage)
	require.Equal(t, "100.00", header.LoggedHoursPercentage)
}

func TestMemberHeaderUnknownMember(t *testing.T) {
	agg := newTestAggregator(newTestStore())

	_, err := agg.MemberHeader(context.Background(), 42, "2024-02", "")
	require.ErrorIs(t, err, ErrInvalidMemberID)

	// Soft-deleted members are not addressable either.
	_, err = agg.MemberHeader(context.Background(), 2, "2024-02", "")
	require.ErrorIs(t, err, ErrInvalidMemberID)
}

func TestMemberHeaderBadMonth(t *testing.T) {
	agg := newTestAggregator(newTestStore())

	_, err := agg.MemberHeader(context.Background(), 1, "2024-13", "")
	require.ErrorIs(t, err, ErrInvalidMonthYearFormat)

	_, err = agg.MemberHeader(context.Background(), 1, "", "")
	require.ErrorIs(t, err, ErrInvalidMonthYearFormat)
}

// A member with no projects gets a fully shaped zero header.
func TestMemberHeaderEmpty(t *testing.T) {
	agg := newTestAggregator(newTestStore())

	header, err := agg.MemberHeader(context.Background(), 3, "2024-02", "")
	require.NoError(t, err)

	require.Equal(t, "00:00", header.TotalTargetHours)
	require.Equal(t, "00:00", header.TotalLoggedHours)
	require.Equal(t, 0, header.ProjectsCount)
	require.Equal(t, 0, header.TasksCount)
	require.Equal(t, "0.00", header.BillableHoursPercentage)
	require.Equal(t, "0.00", header.LoggedHoursPercentage)
}

func TestMemberTimesheet(t *testing.T) {
	agg := newTestAggregator(newTestStore())

	sheet, err := agg.MemberTimesheet(context.Background(), 1, "2024-02", 1, "")
	require.NoError(t, err)

	require.Equal(t, "Jane", sheet.FirstName)
	require.Equal(t, "Doe", sheet.Surname)

	// Client groups sort case-insensitively: "Acme" before "beta corp".
	require.Len(t, sheet.ProjectsList, 2)
	require.Equal(t, "Acme", sheet.ProjectsList[0].ClientName)
	require.Equal(t, "beta corp", sheet.ProjectsList[1].ClientName)

	acme := sheet.ProjectsList[0].Projects
	require.Len(t, acme, 1)
	require.Equal(t, "Website", acme[0].ProjectTitle)
	require.Equal(t, "Standard", acme[0].ApprovalTypeName)
	require.Len(t, acme[0].TeamMembers, 2)

	// Only tasks assigned to the member appear; task 1001 belongs to Bob.
	require.Len(t, acme[0].Tasks, 1)
	task := acme[0].Tasks[0]
	require.Equal(t, uint(1000), task.TaskID)
	require.Equal(t, "JD", task.TimeSheetInitials)
	require.Equal(t, "01:00", task.TaskLogged)
	require.Equal(t, "02:00", task.TaskBillable)
	require.Equal(t, "01:00", task.Variance)
	// The March log is filtered out.
	require.Len(t, task.TimeLogs, 2)

	// The deleted member's log keeps its attribution and is flagged.
	require.Equal(t, "BR", task.TimeLogs[1].TimeSheetInitials)
	require.True(t, task.TimeLogs[1].IsMemberDeleted)
	require.False(t, task.TimeLogs[0].IsMemberDeleted)

	beta := sheet.ProjectsList[1].Projects
	require.Len(t, beta, 1)
	require.Equal(t, "API", beta[0].ProjectTitle)
	require.Len(t, beta[0].Tasks, 1)
	require.Equal(t, "00:00", beta[0].Tasks[0].TaskLogged)
}

// Grouping follows client identity, not the display name: two clients
// sharing a name stay separate, while one client's projects merge.
func TestMemberTimesheetClientGrouping(t *testing.T) {
	store := newTestStore()
	jane := store.members[0]
	store.projects = append(store.projects,
		model.Project{
			ID: 102, TenantID: 1, ClientID: 12, Title: "Rebrand", Active: true,
			Client:      model.Client{ID: 12, TenantID: 1, Name: "Acme"},
			TeamMembers: []model.Member{jane},
		},
		model.Project{
			ID: 103, TenantID: 1, ClientID: 11, Title: "App", Active: true,
			Client:      model.Client{ID: 11, TenantID: 1, Name: "Acme"},
			TeamMembers: []model.Member{jane},
		},
	)

	agg := newTestAggregator(store)
	sheet, err := agg.MemberTimesheet(context.Background(), 1, "2024-02", 1, "")
	require.NoError(t, err)

	require.Len(t, sheet.ProjectsList, 3)

	// Client 11 carries both of its projects in one group, titles ascending.
	require.Equal(t, "Acme", sheet.ProjectsList[0].ClientName)
	require.Len(t, sheet.ProjectsList[0].Projects, 2)
	require.Equal(t, "App", sheet.ProjectsList[0].Projects[0].ProjectTitle)
	require.Equal(t, "Website", sheet.ProjectsList[0].Projects[1].ProjectTitle)

	// Client 12's identically named group does not merge into client 11's.
	require.Equal(t, "Acme", sheet.ProjectsList[1].ClientName)
	require.Len(t, sheet.ProjectsList[1].Projects, 1)
	require.Equal(t, "Rebrand", sheet.ProjectsList[1].Projects[0].ProjectTitle)

	require.Equal(t, "beta corp", sheet.ProjectsList[2].ClientName)
}

func TestMemberTimesheetPagination(t *testing.T) {
	agg := newTestAggregator(newTestStore())

	sheet, err := agg.MemberTimesheet(context.Background(), 1, "2024-02", 2, "")
	require.NoError(t, err)

	require.NotNil(t, sheet.ProjectsList)
	require.Empty(t, sheet.ProjectsList)
}

func TestProjectHeader(t *testing.T) {
	agg := newTestAggregator(newTestStore())

	header, err := agg.ProjectHeader(context.Background(), 100, "", "2024-02")
	require.NoError(t, err)

	// Targets sum over the team, soft-deleted members included.
	require.Equal(t, "250:00", header.TotalTargetHours)
	require.Equal(t, 2, header.TeamMembersCount)
	require.Equal(t, "01:00", header.TotalLoggedHours)
	require.Equal(t, "01:00", header.TotalMemberBillableHours)
	require.Equal(t, "03:00", header.TotalTaskBillableHours)
	require.Equal(t, "249:00", header.UnderOver)
}

// Without a month token the project header runs over all logs.
func TestProjectHeaderUnwindowed(t *testing.T) {
	agg := newTestAggregator(newTestStore())

	header, err := agg.ProjectHeader(context.Background(), 100, "", "")
	require.NoError(t, err)

	require.Equal(t, "02:00", header.TotalLoggedHours)
	require.Equal(t, "02:00", header.TotalMemberBillableHours)
}

func TestProjectHeaderUnknownProject(t *testing.T) {
	agg := newTestAggregator(newTestStore())

	_, err := agg.ProjectHeader(context.Background(), 999, "", "")
	require.ErrorIs(t, err, ErrInvalidProjectID)
}

func TestProjectTimesheet(t *testing.T) {
	agg := newTestAggregator(newTestStore())

	sheet, err := agg.ProjectTimesheet(context.Background(), 100, ProjectOptions{})
	require.NoError(t, err)

	require.Equal(t, uint(11), sheet.ClientID)
	require.Equal(t, "Acme", sheet.ClientName)
	require.Equal(t, "acme-xyz", sheet.ClientLinkCode)
	require.Equal(t, "Website", sheet.ProjectTitle)
	require.Equal(t, "Standard", sheet.ApprovalTypeName)
	require.Equal(t, 80.0, sheet.DefaultHourlyRate)
	require.Len(t, sheet.TeamMembers, 2)
	require.True(t, sheet.TeamMembers[1].IsDeleted)

	// Tasks come back in ascending ID order.
	require.Len(t, sheet.Tasks, 2)
	require.Equal(t, uint(1000), sheet.Tasks[0].TaskID)
	require.Equal(t, uint(1001), sheet.Tasks[1].TaskID)

	// Unwindowed: all three logs of task 1000 count.
	require.Equal(t, "02:00", sheet.Tasks[0].TaskLogged)
	require.Equal(t, "02:00", sheet.Tasks[0].TotalLogBillable)
	require.Equal(t, "00:00", sheet.Tasks[0].Variance)
	require.Len(t, sheet.Tasks[0].TimeLogs, 3)

	// Admin-created tasks fall back to the placeholder initials.
	require.Equal(t, fallbackInitials, sheet.Tasks[1].TimeSheetInitials)
}

func TestProjectTimesheetWindowed(t *testing.T) {
	agg := newTestAggregator(newTestStore())

	sheet, err := agg.ProjectTimesheet(context.Background(), 100, ProjectOptions{MonthYear: "2024-02"})
	require.NoError(t, err)

	require.Equal(t, "01:00", sheet.Tasks[0].TaskLogged)
	require.Len(t, sheet.Tasks[0].TimeLogs, 2)
}

// "invoiced" filters like "closed".
func TestProjectTimesheetInvoicedAlias(t *testing.T) {
	agg := newTestAggregator(newTestStore())

	sheet, err := agg.ProjectTimesheet(context.Background(), 100, ProjectOptions{TaskStatus: "invoiced"})
	require.NoError(t, err)

	require.Len(t, sheet.Tasks, 1)
	require.Equal(t, model.TaskStatusClosed, sheet.Tasks[0].TaskStatus)
}

// Client callers see logs only when the project enables client view.
func TestProjectTimesheetClientView(t *testing.T) {
	store := newTestStore()
	agg := newTestAggregator(store)

	sheet, err := agg.ProjectTimesheet(context.Background(), 100, ProjectOptions{ForClient: true})
	require.NoError(t, err)
	require.Empty(t, sheet.Tasks[0].TimeLogs)
	// Roll-ups stay visible even when logs are hidden.
	require.Equal(t, "02:00", sheet.Tasks[0].TaskLogged)

	store.projects[0].ClientView = true
	sheet, err = agg.ProjectTimesheet(context.Background(), 100, ProjectOptions{ForClient: true})
	require.NoError(t, err)
	require.Len(t, sheet.Tasks[0].TimeLogs, 3)
}
