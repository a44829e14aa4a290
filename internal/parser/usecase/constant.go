package usecase

// Field defaults.
const (
	DefaultDueTime = "17:00"

	PlaceholderTaskName = "Task from natural language input"
	PlaceholderAssignee = "Unassigned"
)

// logTextPreviewLen bounds how much of the user text is logged.
const logTextPreviewLen = 100

// Completion outcomes used as metric labels.
const (
	outcomeSuccess         = "success"
	outcomeUpstreamError   = "upstream_error"
	outcomeInvalidResponse = "invalid_response"
	outcomeSchemaViolation = "schema_violation"
	outcomeOther           = "other"
)

const pathRejected = "rejected"
