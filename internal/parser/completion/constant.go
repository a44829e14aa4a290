package completion

const (
	// SystemPrompt is sent as the system message of every parse request.
	SystemPrompt = "You are a precise task parsing assistant. Always return valid JSON."

	// ProbePrompt is the user message of a connectivity probe.
	ProbePrompt = "Test"

	// logPreviewLen bounds how much of the model reply is logged.
	logPreviewLen = 500
)

// Required task fields, in validation order.
const (
	FieldTasks    = "tasks"
	FieldTaskName = "taskName"
	FieldAssignee = "assignee"
	FieldDueDate  = "dueDate"
	FieldDueTime  = "dueTime"
	FieldPriority = "priority"
)

var requiredFields = []string{FieldTaskName, FieldAssignee, FieldDueDate, FieldDueTime, FieldPriority}
