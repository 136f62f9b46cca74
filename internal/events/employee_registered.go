package events

import "time"

const (
	EmployeeRegisteredTopic     = "hr.employee.lifecycle.v1"
	EmployeeRegisteredEventType = "employee.registered"
)

type EmployeeRegisteredEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}
