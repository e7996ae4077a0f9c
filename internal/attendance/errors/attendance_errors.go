package attendanceerrors

import (
	"fmt"
	"net/http"

	"go-attend/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidRecordID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid record id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"from_date must be before or equal to_date",
		http.StatusBadRequest,
	)
	ErrRecordExists = apperror.New(
		apperror.CodeConflict,
		"an attendance record for this employee and date already exists",
		http.StatusConflict,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"already clocked in for today",
		http.StatusConflict,
	)
	ErrNotClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"no clock-in found for today",
		http.StatusConflict,
	)
	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeInvalidState,
		"already clocked out for today",
		http.StatusConflict,
	)
)

// LeaveExceeded interpolates the allowance and the minutes already
// taken this fiscal month so the client can show an actionable
// message.
func LeaveExceeded(allowanceMinutes, usedMinutes int) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf(
			"monthly leave allowance exceeded: %d of %d minutes already taken this period",
			usedMinutes, allowanceMinutes,
		),
		http.StatusConflict,
	)
}
