package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// Filter narrows List queries. Nil fields are not applied. Archived
// rows are excluded unless IncludeArchived is set.
type Filter struct {
	EmployeeID      *string
	From            *time.Time
	To              *time.Time
	Statuses        []string
	IncludeArchived bool
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *Record) error
	FindByID(ctx context.Context, id string) (*Record, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)
	Find(ctx context.Context, f Filter) ([]Record, error)
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id string) error

	// SumLeaveMinutes totals leave over non-archived records in the
	// inclusive date range, optionally excluding one record id so an
	// edited record does not count against itself.
	SumLeaveMinutes(ctx context.Context, employeeID string, from, to time.Time, excludeID *string) (int, error)
	CountByStatusOnDate(ctx context.Context, date time.Time, status string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	return &rec, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("record_date = ?", date.Format("2006-01-02")).
		First(&rec).Error
	return &rec, err
}

func (r *repository) Find(ctx context.Context, f Filter) ([]Record, error) {
	db := r.db.WithContext(ctx).Model(&Record{})

	if f.EmployeeID != nil {
		db = db.Where("employee_id = ?", *f.EmployeeID)
	}
	if f.From != nil {
		db = db.Where("record_date >= ?", f.From.Format("2006-01-02"))
	}
	if f.To != nil {
		db = db.Where("record_date <= ?", f.To.Format("2006-01-02"))
	}
	if len(f.Statuses) > 0 {
		db = db.Where("status IN ?", f.Statuses)
	}
	if !f.IncludeArchived {
		db = db.Where("is_archived = ?", false)
	}

	var rows []Record
	err := db.Order("record_date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// Delete removes the row outright so the (employee_id, record_date)
// unique slot can be filled again. Archival is the retention path.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Record{}, "id = ?", id).Error
}

func (r *repository) SumLeaveMinutes(ctx context.Context, employeeID string, from, to time.Time, excludeID *string) (int, error) {
	db := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("employee_id = ?", employeeID).
		Where("record_date >= ?", from.Format("2006-01-02")).
		Where("record_date <= ?", to.Format("2006-01-02")).
		Where("is_archived = ?", false)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var total sql.NullInt64
	err := db.Select("SUM(leave_minutes)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total.Int64), nil
}

func (r *repository) CountByStatusOnDate(ctx context.Context, date time.Time, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("record_date = ?", date.Format("2006-01-02")).
		Where("status = ?", status).
		Where("is_archived = ?", false).
		Count(&count).Error
	return count, err
}
