package audit

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one immutable row in the leave decision audit trail. The unique
// index on (leave_id, event_type) makes replayed messages idempotent.
type Entry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_audit_leave_event"`
	EventType  string    `gorm:"type:varchar(60);not null;uniqueIndex:uq_audit_leave_event"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null"`
	Status     string    `gorm:"type:varchar(20);not null"`
	Feedback   *string   `gorm:"type:text"`
	OccurredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

func (Entry) TableName() string {
	return "leave_decision_audit"
}
