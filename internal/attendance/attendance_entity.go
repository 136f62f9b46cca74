package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	SwipeIn  = "IN"
	SwipeOut = "OUT"
)

// Event is one clock swipe. The log is append-only and deliberately
// permissive: pairing problems are resolved at read time, never at write
// time.
type Event struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_events_employee_ts"`
	Type       string    `gorm:"type:varchar(5);not null"`
	Timestamp  time.Time `gorm:"type:timestamptz;not null;index:idx_attendance_events_employee_ts"`
	CreatedAt  time.Time
}

func (Event) TableName() string {
	return "attendance_events"
}
