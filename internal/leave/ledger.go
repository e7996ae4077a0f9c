// Package leave enforces the monthly leave allowance against the
// fiscal (29th-to-28th) local-calendar month.
package leave

import (
	"context"
	"fmt"
	"time"

	"go-attend/internal/calendar"

	"go.uber.org/zap"
)

// Store is the slice of the record store the ledger reads: leave
// minutes summed over a Gregorian date range for one employee, with an
// optional record id left out of the sum.
type Store interface {
	SumLeaveMinutes(ctx context.Context, employeeID string, from, to time.Time, excludeID *string) (int, error)
}

// AllowanceDirectory resolves an employee's monthly allowance in
// minutes. Zero means tracking is disabled for that employee.
type AllowanceDirectory interface {
	AllowanceMinutes(ctx context.Context, employeeID string) (int, error)
}

// ExceededError reports a rejected leave amount together with the
// numbers a client needs for an actionable message.
type ExceededError struct {
	AllowanceMinutes int
	UsedMinutes      int
}

func (e *ExceededError) Error() string {
	return fmt.Sprintf(
		"leave allowance exceeded: %d of %d minutes already taken",
		e.UsedMinutes, e.AllowanceMinutes,
	)
}

type Ledger struct {
	store     Store
	employees AllowanceDirectory
	conv      calendar.Converter
	logger    *zap.Logger
}

func NewLedger(store Store, employees AllowanceDirectory, conv calendar.Converter, logger ...*zap.Logger) *Ledger {
	l := zap.L().Named("leave.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.ledger")
	}
	return &Ledger{store: store, employees: employees, conv: conv, logger: l}
}

// MonthlyTaken sums the leave minutes already recorded for the
// employee inside the fiscal month containing date.
func (l *Ledger) MonthlyTaken(ctx context.Context, employeeID string, date time.Time) (int, error) {
	period := calendar.PeriodFor(l.conv, date)
	return l.store.SumLeaveMinutes(ctx, employeeID, period.Start, period.End, nil)
}

// Validate checks a proposed leave amount against the employee's
// allowance for the fiscal month containing date. On edit the caller
// passes excludeRecordID so the record's prior leave does not count
// against itself. A zero allowance always passes.
func (l *Ledger) Validate(ctx context.Context, employeeID string, date time.Time, proposedMinutes int, excludeRecordID *string) error {
	allowance, err := l.employees.AllowanceMinutes(ctx, employeeID)
	if err != nil {
		return err
	}
	if allowance <= 0 {
		return nil
	}

	period := calendar.PeriodFor(l.conv, date)
	taken, err := l.store.SumLeaveMinutes(ctx, employeeID, period.Start, period.End, excludeRecordID)
	if err != nil {
		return err
	}

	if taken+proposedMinutes > allowance {
		l.logger.Warn("leave allowance exceeded",
			zap.String("employee_id", employeeID),
			zap.Int("allowance_minutes", allowance),
			zap.Int("taken_minutes", taken),
			zap.Int("proposed_minutes", proposedMinutes),
		)
		return &ExceededError{AllowanceMinutes: allowance, UsedMinutes: taken}
	}
	return nil
}
