package timesheet

import (
	"context"
	"sort"
	"strings"

	"timesheet-service/internal/model"
)

const dateLayout = "2006-01-02"

// Initials shown for task creators that cannot be resolved to a member
// record (admin-created tasks).
const fallbackInitials = "ID"

// Status filter alias: invoiced tasks are closed tasks.
const statusInvoiced = "invoiced"

// Aggregator rolls raw time logs up into per-member, per-project and
// per-tenant summaries. It is stateless and request-scoped: every call
// reads through the store and derives everything else in memory.
type Aggregator struct {
	store Store
	conv  Converter
	calc  Calculator
}

// NewAggregator wires the aggregator with its store and the conversion
// and calculation collaborators.
func NewAggregator(store Store, conv Converter, calc Calculator) *Aggregator {
	return &Aggregator{store: store, conv: conv, calc: calc}
}

// ProjectOptions are the recognized knobs of the single-project view.
type ProjectOptions struct {
	// TaskStatus keeps only tasks in the given status; "invoiced" is an
	// alias for "closed". Empty keeps all statuses.
	TaskStatus string
	// MonthYear windows time logs to one "YYYY-MM" month. Empty runs
	// unwindowed over all logs.
	MonthYear string
	// ForClient marks the caller as the project's client; time logs are
	// then included only when the project has client view enabled.
	ForClient bool
}

// MemberHeader computes the summary header for one member: totals over
// all projects the member is on the team of, counting only tasks the
// member is assigned to and only logs inside the month window. The
// member's target hours are taken once, not once per project row.
func (a *Aggregator) MemberHeader(ctx context.Context, memberID uint, monthYear, taskStatus string) (*Header, error) {
	window, err := ResolveMonthWindow(monthYear)
	if err != nil {
		return nil, err
	}

	member, err := a.store.FindMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrInvalidMemberID
	}

	projects, err := a.store.FindProjectsByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	status := normalizeTaskStatus(taskStatus)
	var logged, memberBillable, taskBillable, tasksCount int
	for i := range projects {
		tasks, err := a.store.FindTasksByProject(ctx, projects[i].ID, status)
		if err != nil {
			return nil, err
		}
		for j := range tasks {
			task := &tasks[j]
			if !task.HasAssignee(memberID) {
				continue
			}
			tasksCount++
			taskBillable += task.BillableMinutes
			for _, log := range task.TimeLogs {
				if !window.Contains(log.Date) {
					continue
				}
				logged += log.ActualMinutes
				memberBillable += log.BillableMinutes
			}
		}
	}

	return &Header{
		TotalTargetHours:         a.conv.MinutesToDisplay(member.TargetHours * 60),
		TotalLoggedHours:         a.conv.MinutesToDisplay(logged),
		TotalMemberBillableHours: a.conv.MinutesToDisplay(memberBillable),
		TotalTaskBillableHours:   a.conv.MinutesToDisplay(taskBillable),
		ProjectsCount:            len(projects),
		TasksCount:               tasksCount,
		UnderOver:                a.calc.UnderOver(member.TargetHours, memberBillable),
		BillableHoursPercentage:  a.calc.BillablePercent(memberBillable, member.TargetHours),
		LoggedHoursPercentage:    a.calc.LoggedPercent(logged, memberBillable),
	}, nil
}

// MemberTimesheet builds the member-scope tree: every project the
// member is on, grouped by client name, with the member's tasks and
// their month-windowed logs. Client groups are ordered by client name
// and projects by title, both case-insensitive; the result is one page
// of client groups.
func (a *Aggregator) MemberTimesheet(ctx context.Context, memberID uint, monthYear string, page int, taskStatus string) (*MemberTimesheet, error) {
	window, err := ResolveMonthWindow(monthYear)
	if err != nil {
		return nil, err
	}

	member, err := a.store.FindMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrInvalidMemberID
	}

	projects, err := a.store.FindProjectsByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	status := normalizeTaskStatus(taskStatus)
	projectTasks := make(map[uint][]model.Task, len(projects))
	var allTasks []model.Task
	for i := range projects {
		tasks, err := a.store.FindTasksByProject(ctx, projects[i].ID, status)
		if err != nil {
			return nil, err
		}
		assigned := tasks[:0]
		for j := range tasks {
			if tasks[j].HasAssignee(memberID) {
				assigned = append(assigned, tasks[j])
			}
		}
		projectTasks[projects[i].ID] = assigned
		allTasks = append(allTasks, assigned...)
	}

	approvalNames, err := a.approvalNames(ctx, member.TenantID)
	if err != nil {
		return nil, err
	}
	creators, err := a.creatorIndex(ctx, allTasks)
	if err != nil {
		return nil, err
	}

	// Client ID tiebreaks the name sort so distinct clients sharing a
	// name keep their projects adjacent without merging.
	sort.SliceStable(projects, func(i, j int) bool {
		ci, cj := strings.ToLower(projects[i].Client.Name), strings.ToLower(projects[j].Client.Name)
		if ci != cj {
			return ci < cj
		}
		if projects[i].ClientID != projects[j].ClientID {
			return projects[i].ClientID < projects[j].ClientID
		}
		return strings.ToLower(projects[i].Title) < strings.ToLower(projects[j].Title)
	})

	groups := []ClientGroup{}
	var lastClientID uint
	for i := range projects {
		project := &projects[i]
		sheet := ProjectSheet{
			ProjectID:        project.ID,
			ProjectTitle:     project.Title,
			ProjectType:      project.ProjectType,
			ApprovalTypeName: lookupApprovalName(approvalNames, project.ApprovalTypeID),
			Estimate:         project.Estimate,
			Invoice:          project.Invoice,
			IsActive:         project.Active,
			AddTasks:         project.AddTasks,
			TeamMembers:      teamMemberInfo(project.TeamMembers),
			Tasks:            a.taskSheets(projectTasks[project.ID], &window, approvalNames, creators, true, false),
		}

		if n := len(groups); n > 0 && lastClientID == project.ClientID {
			groups[n-1].Projects = append(groups[n-1].Projects, sheet)
		} else {
			groups = append(groups, ClientGroup{
				ClientName: project.Client.Name,
				Projects:   []ProjectSheet{sheet},
			})
			lastClientID = project.ClientID
		}
	}

	return &MemberTimesheet{
		FirstName:    member.FirstName,
		Surname:      member.Surname,
		ProjectsList: Page(groups, page, DefaultPageSize),
	}, nil
}

// ProjectHeader computes the summary header for one project. Target
// hours are summed over the project's team members, unlike the member
// scope where they are taken once.
func (a *Aggregator) ProjectHeader(ctx context.Context, projectID uint, taskStatus, monthYear string) (*Header, error) {
	window, err := optionalWindow(monthYear)
	if err != nil {
		return nil, err
	}

	project, err := a.store.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrInvalidProjectID
	}

	tasks, err := a.store.FindTasksByProject(ctx, projectID, normalizeTaskStatus(taskStatus))
	if err != nil {
		return nil, err
	}

	targetHours := 0
	for i := range project.TeamMembers {
		targetHours += project.TeamMembers[i].TargetHours
	}

	var logged, memberBillable, taskBillable int
	for i := range tasks {
		taskBillable += tasks[i].BillableMinutes
		for _, log := range tasks[i].TimeLogs {
			if window != nil && !window.Contains(log.Date) {
				continue
			}
			logged += log.ActualMinutes
			memberBillable += log.BillableMinutes
		}
	}

	return &Header{
		TotalTargetHours:         a.conv.MinutesToDisplay(targetHours * 60),
		TotalLoggedHours:         a.conv.MinutesToDisplay(logged),
		TotalMemberBillableHours: a.conv.MinutesToDisplay(memberBillable),
		TotalTaskBillableHours:   a.conv.MinutesToDisplay(taskBillable),
		TeamMembersCount:         len(project.TeamMembers),
		UnderOver:                a.calc.UnderOver(targetHours, memberBillable),
		BillableHoursPercentage:  a.calc.BillablePercent(memberBillable, targetHours),
		LoggedHoursPercentage:    a.calc.LoggedPercent(logged, memberBillable),
	}, nil
}

// ProjectTimesheet builds the single-project tree: the project with its
// client context, team and tasks in ascending task ID order.
func (a *Aggregator) ProjectTimesheet(ctx context.Context, projectID uint, opts ProjectOptions) (*ProjectTimesheet, error) {
	window, err := optionalWindow(opts.MonthYear)
	if err != nil {
		return nil, err
	}

	project, err := a.store.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrInvalidProjectID
	}

	tasks, err := a.store.FindTasksByProject(ctx, projectID, normalizeTaskStatus(opts.TaskStatus))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	approvalNames, err := a.approvalNames(ctx, project.TenantID)
	if err != nil {
		return nil, err
	}
	creators, err := a.creatorIndex(ctx, tasks)
	if err != nil {
		return nil, err
	}

	includeLogs := !opts.ForClient || project.ClientView

	return &ProjectTimesheet{
		ClientID:          project.ClientID,
		ClientName:        project.Client.Name,
		ClientLinkCode:    project.Client.LinkCode,
		ProjectID:         project.ID,
		ProjectTitle:      project.Title,
		ProjectType:       project.ProjectType,
		ApprovalTypeName:  lookupApprovalName(approvalNames, project.ApprovalTypeID),
		Estimate:          project.Estimate,
		Invoice:           project.Invoice,
		DefaultHourlyRate: project.DefaultHourlyRate,
		IsActive:          project.Active,
		AddTasks:          project.AddTasks,
		ClientView:        project.ClientView,
		TeamMembers:       teamMemberInfo(project.TeamMembers),
		Tasks:             a.taskSheets(tasks, window, approvalNames, creators, includeLogs, true),
	}, nil
}

// taskSheets derives the per-task roll-ups from the (window-filtered)
// logs of each task.
func (a *Aggregator) taskSheets(tasks []model.Task, window *MonthWindow, approvalNames map[uint]string, creators map[uint]*model.Member, includeLogs, withLogBillable bool) []TaskSheet {
	sheets := make([]TaskSheet, 0, len(tasks))
	for i := range tasks {
		task := &tasks[i]
		logs := filterLogs(task.TimeLogs, window)

		var logged, logBillable int
		for _, log := range logs {
			logged += log.ActualMinutes
			logBillable += log.BillableMinutes
		}

		sheet := TaskSheet{
			TaskID:               task.ID,
			Description:          task.Description,
			TaskStatus:           task.Status,
			TaskApprovalTypeName: lookupApprovalName(approvalNames, task.ApprovalTypeID),
			TimeSheetInitials:    creatorInitials(creators, task.CreatorID),
			TaskLogged:           a.conv.MinutesToDisplay(logged),
			TaskBillable:         a.conv.MinutesToDisplay(task.BillableMinutes),
			Variance:             a.conv.MinutesToDisplay(a.calc.Variance(task.BillableMinutes, logged)),
		}
		if withLogBillable {
			sheet.TotalLogBillable = a.conv.MinutesToDisplay(logBillable)
		}
		if includeLogs {
			sheet.TimeLogs = a.logEntries(logs, creators)
		}
		sheets = append(sheets, sheet)
	}
	return sheets
}

func (a *Aggregator) logEntries(logs []model.TimeLog, creators map[uint]*model.Member) []LogEntry {
	entries := make([]LogEntry, 0, len(logs))
	for _, log := range logs {
		entry := LogEntry{
			LogID:         log.ID,
			Date:          log.Date.Format(dateLayout),
			ActualHours:   a.conv.MinutesToDisplay(log.ActualMinutes),
			BillableHours: a.conv.MinutesToDisplay(log.BillableMinutes),
			Variance:      a.conv.MinutesToDisplay(a.calc.Variance(log.BillableMinutes, log.ActualMinutes)),
			Note:          log.Note,
			LoggedBy:      log.LoggedBy,
			CreatorID:     log.CreatorID,
		}
		if creator, ok := creators[log.CreatorID]; ok {
			entry.TimeSheetInitials = creator.TimeSheetInitials
			entry.IsMemberDeleted = creator.IsDeleted()
		}
		entries = append(entries, entry)
	}
	return entries
}

// creatorIndex resolves every task and log creator to a member record,
// soft-deleted members included so historical attribution is preserved.
// Admin creators have no member record and simply stay unresolved.
func (a *Aggregator) creatorIndex(ctx context.Context, tasks []model.Task) (map[uint]*model.Member, error) {
	seen := map[uint]bool{}
	var ids []uint
	add := func(id uint) {
		if id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for i := range tasks {
		add(tasks[i].CreatorID)
		for _, log := range tasks[i].TimeLogs {
			add(log.CreatorID)
		}
	}

	index := make(map[uint]*model.Member, len(ids))
	if len(ids) == 0 {
		return index, nil
	}

	members, err := a.store.FindMembersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range members {
		index[members[i].ID] = &members[i]
	}
	return index, nil
}

func (a *Aggregator) approvalNames(ctx context.Context, tenantID uint) (map[uint]string, error) {
	types, err := a.store.FindApprovalTypes(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(types))
	for _, t := range types {
		names[t.ID] = t.Value
	}
	return names, nil
}

// teamMemberInfo lists a project's team for display. Soft-deleted
// members stay listed and are flagged.
func teamMemberInfo(members []model.Member) []TeamMemberInfo {
	info := make([]TeamMemberInfo, 0, len(members))
	for i := range members {
		info = append(info, TeamMemberInfo{
			MemberID:          members[i].ID,
			Name:              members[i].FullName(),
			TimeSheetInitials: members[i].TimeSheetInitials,
			IsDeleted:         members[i].IsDeleted(),
		})
	}
	return info
}

func creatorInitials(creators map[uint]*model.Member, creatorID uint) string {
	if creator, ok := creators[creatorID]; ok && creator.TimeSheetInitials != "" {
		return creator.TimeSheetInitials
	}
	return fallbackInitials
}

func lookupApprovalName(names map[uint]string, id *uint) string {
	if id == nil {
		return ""
	}
	// Dangling references resolve to an omitted name, not an error.
	return names[*id]
}

func filterLogs(logs []model.TimeLog, window *MonthWindow) []model.TimeLog {
	if window == nil {
		return logs
	}
	filtered := make([]model.TimeLog, 0, len(logs))
	for _, log := range logs {
		if window.Contains(log.Date) {
			filtered = append(filtered, log)
		}
	}
	return filtered
}

func normalizeTaskStatus(status string) string {
	if status == statusInvoiced {
		return model.TaskStatusClosed
	}
	return status
}

func optionalWindow(monthYear string) (*MonthWindow, error) {
	if monthYear == "" {
		return nil, nil
	}
	window, err := ResolveMonthWindow(monthYear)
	if err != nil {
		return nil, err
	}
	return &window, nil
}
