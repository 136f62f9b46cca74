package events

import (
	"strings"
	"time"
)

const LeaveDecisionTopic = "hr.leave.decision.v1"

type LeaveDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	Status     string    `json:"status"`
	Feedback   *string   `json:"feedback,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LeaveDecidedEventType maps a decision status to its event name, e.g.
// APPROVED becomes "leave.approved".
func LeaveDecidedEventType(status string) string {
	return "leave." + strings.ToLower(status)
}
