package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timesheet-service/internal/model"
)

// fakeLogStore is an in-memory LogStore recording writes.
type fakeLogStore struct {
	projects []model.Project
	tasks    []model.Task
	inserted []model.TimeLog
	updated  map[uint]model.TimeLog
}

func (s *fakeLogStore) FindProjectForLogging(_ context.Context, tenantID, projectID uint) (*model.Project, error) {
	for i := range s.projects {
		if s.projects[i].ID == projectID && s.projects[i].TenantID == tenantID {
			project := s.projects[i]
			return &project, nil
		}
	}
	return nil, nil
}

func (s *fakeLogStore) FindTaskForLogging(_ context.Context, projectID, taskID uint) (*model.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == taskID && s.tasks[i].ProjectID == projectID {
			task := s.tasks[i]
			return &task, nil
		}
	}
	return nil, nil
}

func (s *fakeLogStore) InsertTimeLog(_ context.Context, taskID uint, log *model.TimeLog) error {
	s.inserted = append(s.inserted, *log)
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks[i].Status = model.TaskStatusInProgress
			s.tasks[i].TimeLogs = append(s.tasks[i].TimeLogs, *log)
		}
	}
	return nil
}

func (s *fakeLogStore) UpdateTimeLog(_ context.Context, taskID, logID uint, log *model.TimeLog) error {
	if s.updated == nil {
		s.updated = map[uint]model.TimeLog{}
	}
	s.updated[logID] = *log
	return nil
}

func newLogFixture() *fakeLogStore {
	return &fakeLogStore{
		projects: []model.Project{
			{ID: 100, TenantID: 1, Title: "Website", AddTasks: true, Active: true},
			{ID: 101, TenantID: 1, Title: "Archive", AddTasks: true, Active: false},
			{ID: 102, TenantID: 1, Title: "Locked", AddTasks: false, Active: true},
		},
		tasks: []model.Task{
			{
				ID: 1000, TenantID: 1, ProjectID: 100, CreatorID: 1, BillableMinutes: 120,
				Status:    model.TaskStatusOpen,
				Assignees: []model.Member{{ID: 1}},
				TimeLogs: []model.TimeLog{
					{ID: 1, TaskID: 1000, ActualMinutes: 60, BillableMinutes: 60, CreatorID: 1},
				},
			},
			{ID: 1001, TenantID: 1, ProjectID: 100, CreatorID: 99, BillableMinutes: 60, Status: model.TaskStatusClosed},
			{ID: 1002, TenantID: 1, ProjectID: 102, CreatorID: 99, BillableMinutes: 60, Status: model.TaskStatusOpen},
		},
	}
}

func logInput() LogInput {
	return LogInput{
		TenantID:        1,
		ProjectID:       100,
		TaskID:          1000,
		Date:            time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		ActualHours:     "1:30",
		BillableMinutes: 30,
		Note:            "styling",
		LoggedBy:        model.CreatorTypeMember,
		CreatorID:       1,
	}
}

func TestLogWriterInsert(t *testing.T) {
	store := newLogFixture()
	writer := NewLogWriter(store, Converter{})

	err := writer.Save(context.Background(), logInput(), 0)
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	require.Equal(t, 90, store.inserted[0].ActualMinutes)
	require.Equal(t, 30, store.inserted[0].BillableMinutes)
	require.Equal(t, model.CreatorTypeMember, store.inserted[0].LoggedBy)

	// Logging work moves the task to in progress.
	require.Equal(t, model.TaskStatusInProgress, store.tasks[0].Status)
}

func TestLogWriterUnknownProject(t *testing.T) {
	writer := NewLogWriter(newLogFixture(), Converter{})

	in := logInput()
	in.ProjectID = 999
	require.ErrorIs(t, writer.Save(context.Background(), in, 0), ErrInvalidProjectID)

	// A project of another tenant is just as invisible.
	in = logInput()
	in.TenantID = 2
	require.ErrorIs(t, writer.Save(context.Background(), in, 0), ErrInvalidProjectID)
}

func TestLogWriterInactiveProject(t *testing.T) {
	writer := NewLogWriter(newLogFixture(), Converter{})

	in := logInput()
	in.ProjectID = 101
	require.ErrorIs(t, writer.Save(context.Background(), in, 0), ErrProjectInactive)
}

// Members cannot log on projects that do not allow task additions;
// admins can.
func TestLogWriterMemberNotAllowed(t *testing.T) {
	store := newLogFixture()
	writer := NewLogWriter(store, Converter{})

	in := logInput()
	in.ProjectID = 102
	in.TaskID = 1002
	require.ErrorIs(t, writer.Save(context.Background(), in, 0), ErrMemberCannotAddLog)

	in.LoggedBy = model.CreatorTypeAdmin
	in.CreatorID = 99
	require.NoError(t, writer.Save(context.Background(), in, 0))
}

func TestLogWriterUnknownTask(t *testing.T) {
	writer := NewLogWriter(newLogFixture(), Converter{})

	in := logInput()
	in.TaskID = 999
	require.ErrorIs(t, writer.Save(context.Background(), in, 0), ErrInvalidTaskID)

	// A task under a different project does not match either.
	in = logInput()
	in.TaskID = 1002
	require.ErrorIs(t, writer.Save(context.Background(), in, 0), ErrInvalidTaskID)
}

func TestLogWriterClosedTask(t *testing.T) {
	writer := NewLogWriter(newLogFixture(), Converter{})

	in := logInput()
	in.TaskID = 1001
	require.ErrorIs(t, writer.Save(context.Background(), in, 0), ErrTaskClosed)
}

// Members must be assigned to the task or have created it.
func TestLogWriterMemberNotOnTask(t *testing.T) {
	store := newLogFixture()
	writer := NewLogWriter(store, Converter{})

	in := logInput()
	in.CreatorID = 7
	require.ErrorIs(t, writer.Save(context.Background(), in, 0), ErrInvalidMemberID)

	// The task creator may log without being an assignee.
	store.tasks[0].Assignees = nil
	require.NoError(t, writer.Save(context.Background(), logInput(), 0))
}

func TestLogWriterBillableCap(t *testing.T) {
	store := newLogFixture()
	writer := NewLogWriter(store, Converter{})

	// 60 already logged against a 120 cap leaves room for 60, not 61.
	in := logInput()
	in.BillableMinutes = 61
	require.ErrorIs(t, writer.Save(context.Background(), in, 0), ErrBillableExceedsTask)

	in.BillableMinutes = 60
	require.NoError(t, writer.Save(context.Background(), in, 0))
}

// Edits bypass the cap; historical over-runs are not recomputed.
func TestLogWriterUpdateSkipsCap(t *testing.T) {
	store := newLogFixture()
	writer := NewLogWriter(store, Converter{})

	in := logInput()
	in.BillableMinutes = 500
	require.NoError(t, writer.Save(context.Background(), in, 1))

	require.Empty(t, store.inserted)
	require.Equal(t, 500, store.updated[1].BillableMinutes)
}

func TestLogWriterBadActualHours(t *testing.T) {
	writer := NewLogWriter(newLogFixture(), Converter{})

	in := logInput()
	in.ActualHours = "ninety"
	require.ErrorIs(t, writer.Save(context.Background(), in, 0), ErrInvalidTimeFormat)
}
