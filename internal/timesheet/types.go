package timesheet

// Header is the summary object at the top of every timesheet view. All
// hour fields are "HH:MM" display strings; percentages are numeric
// strings with two decimals. Count fields appear only for the scopes
// that define them.
type Header struct {
	TotalTargetHours         string `json:"totalTargetHours"`
	TotalLoggedHours         string `json:"totalLoggedHours"`
	TotalMemberBillableHours string `json:"totalMemberBillableHours"`
	TotalTaskBillableHours   string `json:"totalTaskBillableHours"`
	ProjectsCount            int    `json:"projectsCount,omitempty"`
	TasksCount               int    `json:"tasksCount,omitempty"`
	TeamMembersCount         int    `json:"teamMembersCount,omitempty"`
	UnderOver                string `json:"underOver"`
	BillableHoursPercentage  string `json:"billableHoursPercentage"`
	LoggedHoursPercentage    string `json:"loggedHoursPercentage"`
}

// LogEntry is one time log in aggregated output. Deleted creators stay
// visible and are flagged rather than hidden.
type LogEntry struct {
	LogID             uint   `json:"logId"`
	Date              string `json:"date"`
	ActualHours       string `json:"actualHours"`
	BillableHours     string `json:"billableHours"`
	Variance          string `json:"variance"`
	Note              string `json:"note,omitempty"`
	LoggedBy          string `json:"loggedBy"`
	CreatorID         uint   `json:"creatorId"`
	TimeSheetInitials string `json:"timeSheetInitials,omitempty"`
	IsMemberDeleted   bool   `json:"isMemberDeleted"`
}

// TaskSheet is one task with its per-task roll-up. TaskBillable is the
// task's billable cap; TaskLogged sums the (window-filtered) log
// minutes; Variance is cap minus logged.
type TaskSheet struct {
	TaskID               uint       `json:"taskId"`
	Description          string     `json:"description"`
	TaskStatus           string     `json:"taskStatus"`
	TaskApprovalTypeName string     `json:"taskApprovalTypeName,omitempty"`
	TimeSheetInitials    string     `json:"timeSheetInitials"`
	TaskLogged           string     `json:"taskLogged"`
	TaskBillable         string     `json:"taskBillable"`
	TotalLogBillable     string     `json:"totalLogBillable,omitempty"`
	Variance             string     `json:"variance"`
	TimeLogs             []LogEntry `json:"timeLogs,omitempty"`
}

// TeamMemberInfo identifies a project team member for display.
type TeamMemberInfo struct {
	MemberID          uint   `json:"memberId"`
	Name              string `json:"name"`
	TimeSheetInitials string `json:"timeSheetInitials,omitempty"`
	IsDeleted         bool   `json:"isDeleted"`
}

// ProjectSheet is one project inside a client group.
type ProjectSheet struct {
	ProjectID        uint             `json:"projectId"`
	ProjectTitle     string           `json:"projectTitle"`
	ProjectType      string           `json:"projectType,omitempty"`
	ApprovalTypeName string           `json:"approvalTypeName,omitempty"`
	Estimate         float64          `json:"estimate"`
	Invoice          float64          `json:"invoice"`
	IsActive         bool             `json:"isActive"`
	AddTasks         bool             `json:"addTasks"`
	TeamMembers      []TeamMemberInfo `json:"teamMembers"`
	Tasks            []TaskSheet      `json:"tasks"`
}

// ClientGroup groups a member timesheet's projects by client.
type ClientGroup struct {
	ClientName string         `json:"clientName"`
	Projects   []ProjectSheet `json:"projects"`
}

// MemberTimesheet is the member-scope tree: client groups ordered by
// client name, projects ordered by title, tasks with their logs.
type MemberTimesheet struct {
	FirstName    string        `json:"firstName"`
	Surname      string        `json:"surname"`
	ProjectsList []ClientGroup `json:"projectsList"`
}

// ProjectTimesheet is the single-project view with its client context
// and tasks in ascending task ID order.
type ProjectTimesheet struct {
	ClientID          uint             `json:"clientId"`
	ClientName        string           `json:"clientName"`
	ClientLinkCode    string           `json:"clientLinkCode,omitempty"`
	ProjectID         uint             `json:"projectId"`
	ProjectTitle      string           `json:"projectTitle"`
	ProjectType       string           `json:"projectType"`
	ApprovalTypeName  string           `json:"projectApprovalType,omitempty"`
	Estimate          float64          `json:"estimate"`
	Invoice           float64          `json:"invoice"`
	DefaultHourlyRate float64          `json:"defaultHourlyRate"`
	IsActive          bool             `json:"isActive"`
	AddTasks          bool             `json:"addTasks"`
	ClientView        bool             `json:"clientView"`
	TeamMembers       []TeamMemberInfo `json:"teamMembers"`
	Tasks             []TaskSheet      `json:"tasks"`
}

// DayEntry is one day of the daily breakdown series.
type DayEntry struct {
	Day      int    `json:"day"`
	Date     string `json:"date"`
	Logged   string `json:"logged"`
	Billable string `json:"billable"`
	Variance string `json:"variance"`
}

// DailySeries is the complete per-day series for one month. Days always
// holds exactly daysInMonth entries; days without activity are zero.
type DailySeries struct {
	DailyBillableAverage string     `json:"dailyBillableAverage"`
	TotalBillable        string     `json:"totalBillable"`
	TotalLogged          string     `json:"totalLogged"`
	TotalVariance        string     `json:"totalVariance"`
	Days                 []DayEntry `json:"days"`
}
