package model

// TaskStatus is the workflow state of a support ticket or task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskReview     TaskStatus = "REVIEW"
	TaskDone       TaskStatus = "DONE"
)

// TaskPriority ranks a ticket or task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// AllTaskStatuses returns the statuses in workflow order.
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{TaskTodo, TaskInProgress, TaskReview, TaskDone}
}

// AllTaskPriorities returns the priorities from lowest to highest.
func AllTaskPriorities() []TaskPriority {
	return []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Ticket is a support request shown in the support center.
type Ticket struct {
	ID        string       `json:"id"`
	Subject   string       `json:"subject"`
	Requester string       `json:"requester"`
	Status    TaskStatus   `json:"status"`
	Priority  TaskPriority `json:"priority"`
}
