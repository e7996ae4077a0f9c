package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName string    `gorm:"column:full_name;type:varchar(150);not null"`
	Email    string    `gorm:"column:email;type:varchar(150);not null;uniqueIndex:uq_employee_email"`

	// Zero means leave tracking is disabled for this employee.
	MonthlyLeaveAllowanceMinutes int `gorm:"column:monthly_leave_allowance_minutes;not null;default:0"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}
