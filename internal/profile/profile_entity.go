package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the mutable personal attributes of an account, one row per
// employee. Rows are created lazily with empty fields on first read.
type Profile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_profiles_employee"`

	Phone            string     `gorm:"type:varchar(30)"`
	Address          string     `gorm:"type:varchar(255)"`
	DateOfBirth      *time.Time `gorm:"type:date"`
	JoinDate         *time.Time `gorm:"type:date"`
	Department       string     `gorm:"type:varchar(120)"`
	Position         string     `gorm:"type:varchar(120)"`
	EmergencyContact string     `gorm:"type:varchar(120)"`
	EmergencyPhone   string     `gorm:"type:varchar(30)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Profile) TableName() string {
	return "profiles"
}
