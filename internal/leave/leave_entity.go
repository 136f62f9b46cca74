package leave

import (
	"time"

	"github.com/google/uuid"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null"`
	// Duration is the working-day count captured at submission time. It is
	// never recomputed, even if the holiday configuration changes later.
	Duration int    `gorm:"type:int;not null"`
	Reason   string `gorm:"type:text;not null"`

	Status    string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_status"`
	Feedback  *string    `gorm:"type:text"`
	DecidedBy *uuid.UUID `gorm:"type:uuid"`
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

type EmployeeRef struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"column:name"`
	ManagerID *uuid.UUID `gorm:"column:manager_id;type:uuid"`
}

func (EmployeeRef) TableName() string {
	return "users"
}
