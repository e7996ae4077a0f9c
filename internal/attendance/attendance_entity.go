package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Status values derived by the calculator. Callers never set these
// directly; every write path recomputes them from the raw punches.
const (
	StatusAbsent  = "ABSENT"
	StatusPartial = "PARTIAL"
	StatusOnLeave = "ON_LEAVE"
	StatusPresent = "PRESENT"
)

// Record is one attendance row per (employee, Gregorian date). The raw
// punches are stored as H:M strings exactly as entered (Persian or
// Arabic-Indic digits included); the calculator normalizes them at
// read time. A nil half of the leave pair means "no leave interval",
// not a zero-length one.
type Record struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	RecordDate time.Time `gorm:"column:record_date;type:date;not null;uniqueIndex:uq_attendance_employee_date;index"`

	TimeIn     *string `gorm:"column:time_in;type:varchar(10)"`
	TimeOut    *string `gorm:"column:time_out;type:varchar(10)"`
	LeaveStart *string `gorm:"column:leave_start;type:varchar(10)"`
	LeaveEnd   *string `gorm:"column:leave_end;type:varchar(10)"`

	// Derived fields, written only by the calculator.
	DurationMinutes       int    `gorm:"column:duration_minutes;not null;default:0"`
	LunchOverlapMinutes   int    `gorm:"column:lunch_overlap_minutes;not null;default:0"`
	LeaveMinutes          int    `gorm:"column:leave_minutes;not null;default:0"`
	TardinessMinutes      int    `gorm:"column:tardiness_minutes;not null;default:0"`
	EarlyDepartureMinutes int    `gorm:"column:early_departure_minutes;not null;default:0"`
	MainWorkMinutes       int    `gorm:"column:main_work_minutes;not null;default:0"`
	OvertimeMinutes       int    `gorm:"column:overtime_minutes;not null;default:0"`
	Status                string `gorm:"column:status;type:varchar(20);not null;default:'ABSENT';index"`

	Note      *string   `gorm:"column:note;type:text"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null"`

	// Archived records stay for audit but drop out of listing and
	// leave aggregation. Unarchiving is the only reverse transition.
	// Deletion is the hard path: the row goes away and the
	// (employee, date) slot reopens for a fresh record.
	IsArchived bool `gorm:"column:is_archived;not null;default:false;index"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Record) TableName() string {
	return "attendance_records"
}

func (r *Record) applyDerived(d Derived) {
	r.DurationMinutes = d.DurationMinutes
	r.LunchOverlapMinutes = d.LunchOverlapMinutes
	r.LeaveMinutes = d.LeaveMinutes
	r.TardinessMinutes = d.TardinessMinutes
	r.EarlyDepartureMinutes = d.EarlyDepartureMinutes
	r.MainWorkMinutes = d.MainWorkMinutes
	r.OvertimeMinutes = d.OvertimeMinutes
	r.Status = d.Status
}
