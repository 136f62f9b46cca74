package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleEmployee = "EMPLOYEE"
	RoleManager  = "MANAGER"
)

// Employee is the account record. Role and the manager link are fixed at
// registration; profile attributes live in their own table.
type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"type:varchar(120);not null"`
	Email    string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Password string    `gorm:"type:varchar(100);not null"`
	Role     string    `gorm:"type:varchar(20);not null"`

	ManagerID *uuid.UUID `gorm:"type:uuid;index"`
	Manager   *Employee  `gorm:"foreignKey:ManagerID;references:ID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "users"
}
