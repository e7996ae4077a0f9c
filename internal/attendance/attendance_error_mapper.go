package attendance

import (
	"errors"
	"strings"

	attendanceerrors "go-attend/internal/attendance/errors"
	"go-attend/internal/leave"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_employee_date" {
			return attendanceerrors.ErrRecordExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_employee_date") {
		return attendanceerrors.ErrRecordExists
	}

	return err
}

func mapLedgerError(err error) error {
	var exceeded *leave.ExceededError
	if errors.As(err, &exceeded) {
		return attendanceerrors.LeaveExceeded(exceeded.AllowanceMinutes, exceeded.UsedMinutes)
	}
	return err
}
