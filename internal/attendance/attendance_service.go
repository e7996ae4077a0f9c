package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	attendanceerrors "go-attend/internal/attendance/errors"
	"go-attend/internal/events"
	"go-attend/internal/leave"
	"go-attend/internal/messaging/kafka"
	"go-attend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Directory is the slice of the employee module the service needs for
// the daily summary complement.
type Directory interface {
	Count(ctx context.Context) (int64, error)
}

type Service interface {
	AddManual(ctx context.Context, actorID string, req AddManualRequest) (RecordResponse, error)
	Update(ctx context.Context, recordID string, req UpdateRecordRequest) (RecordResponse, error)
	ClockIn(ctx context.Context, employeeID string) (RecordResponse, error)
	ClockOut(ctx context.Context, employeeID string) (RecordResponse, error)
	Delete(ctx context.Context, recordID string) error
	SetArchived(ctx context.Context, recordID string, archived bool) (RecordResponse, error)
	List(ctx context.Context, req ListRequest) ([]RecordResponse, error)
	DailySummary(ctx context.Context, date string) (DailySummaryResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	ledger    *leave.Ledger
	employees Directory
	outbox    kafka.OutboxRepository
	policy    TimePolicy
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	ledger *leave.Ledger,
	employees Directory,
	policy TimePolicy,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		ledger:    ledger,
		employees: employees,
		policy:    policy,
		now:       time.Now,
		logger:    l,
	}
}

// NewServiceWithOutbox additionally enqueues an attendance.recorded
// outbox event inside every mutating transaction.
func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	ledger *leave.Ledger,
	employees Directory,
	outbox kafka.OutboxRepository,
	policy TimePolicy,
	logger ...*zap.Logger,
) Service {
	s := NewService(db, repo, ledger, employees, policy, logger...).(*service)
	s.outbox = outbox
	return s
}

func (s *service) AddManual(ctx context.Context, actorID string, req AddManualRequest) (RecordResponse, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return RecordResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RecordResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return RecordResponse{}, err
	}

	s.logger.Debug("add manual record requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("add manual begin tx failed", zap.Error(err))
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, err = qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err == nil {
		return RecordResponse{}, attendanceerrors.ErrRecordExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RecordResponse{}, err
	}

	rec := &Record{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		RecordDate: date,
		TimeIn:     req.TimeIn,
		TimeOut:    req.TimeOut,
		LeaveStart: req.LeaveStart,
		LeaveEnd:   req.LeaveEnd,
		Note:       req.Note,
		CreatedBy:  actorUUID,
	}
	rec.applyDerived(Calculate(rec, s.policy, s.logger))

	if rec.LeaveMinutes > 0 {
		if err := s.ledger.Validate(ctx, req.EmployeeID, date, rec.LeaveMinutes, nil); err != nil {
			s.logger.Warn("add manual leave validation failed",
				zap.String("employee_id", req.EmployeeID),
				zap.Error(err),
			)
			return RecordResponse{}, mapLedgerError(err)
		}
	}

	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("add manual persist failed", zap.Error(err))
		return RecordResponse{}, mapRepositoryError(err)
	}
	if err := s.enqueueRecorded(ctx, tx, rec); err != nil {
		return RecordResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("add manual record success",
		zap.String("record_id", rec.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("status", rec.Status),
	)
	return mapToResponse(*rec), nil
}

func (s *service) Update(ctx context.Context, recordID string, req UpdateRecordRequest) (RecordResponse, error) {
	if _, err := uuid.Parse(recordID); err != nil {
		return RecordResponse{}, attendanceerrors.ErrInvalidRecordID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update record begin tx failed", zap.Error(err))
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByID(ctx, recordID)
	if err != nil {
		return RecordResponse{}, mapRepositoryError(err)
	}

	rec.TimeIn = patch(rec.TimeIn, req.TimeIn)
	rec.TimeOut = patch(rec.TimeOut, req.TimeOut)
	rec.LeaveStart = patch(rec.LeaveStart, req.LeaveStart)
	rec.LeaveEnd = patch(rec.LeaveEnd, req.LeaveEnd)
	rec.Note = patch(rec.Note, req.Note)

	// Never patched incrementally: the whole derived set is recomputed.
	rec.applyDerived(Calculate(rec, s.policy, s.logger))

	if rec.LeaveMinutes > 0 {
		if err := s.ledger.Validate(ctx, rec.EmployeeID.String(), rec.RecordDate, rec.LeaveMinutes, &recordID); err != nil {
			s.logger.Warn("update leave validation failed",
				zap.String("record_id", recordID),
				zap.Error(err),
			)
			return RecordResponse{}, mapLedgerError(err)
		}
	}

	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("update record persist failed",
			zap.String("record_id", recordID),
			zap.Error(err),
		)
		return RecordResponse{}, mapRepositoryError(err)
	}
	if err := s.enqueueRecorded(ctx, tx, rec); err != nil {
		return RecordResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("update record success",
		zap.String("record_id", recordID),
		zap.String("status", rec.Status),
	)
	return mapToResponse(*rec), nil
}

func (s *service) ClockIn(ctx context.Context, employeeID string) (RecordResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return RecordResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Live punches read the policy wall clock so a shift crossing
	// local midnight stays on the calendar day the roster uses.
	now := s.now().In(s.policy.location())
	today := dateOnly(now)
	punch := now.Format("15:04")

	rec, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	switch {
	case err == nil:
		if rec.TimeIn != nil && rec.TimeOut == nil {
			return RecordResponse{}, attendanceerrors.ErrAlreadyClockedIn
		}
		rec.TimeIn = &punch
		rec.applyDerived(Calculate(rec, s.policy, s.logger))
		if err := qtx.Update(ctx, rec); err != nil {
			return RecordResponse{}, mapRepositoryError(err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = &Record{
			ID:         uuid.New(),
			EmployeeID: employeeUUID,
			RecordDate: today,
			TimeIn:     &punch,
			CreatedBy:  employeeUUID,
		}
		rec.applyDerived(Calculate(rec, s.policy, s.logger))
		if err := qtx.Create(ctx, rec); err != nil {
			return RecordResponse{}, mapRepositoryError(err)
		}
	default:
		return RecordResponse{}, err
	}

	if err := s.enqueueRecorded(ctx, tx, rec); err != nil {
		return RecordResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("clock in success",
		zap.String("employee_id", employeeID),
		zap.String("time_in", punch),
	)
	return mapToResponse(*rec), nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string) (RecordResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return RecordResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	now := s.now().In(s.policy.location())
	today := dateOnly(now)

	rec, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, attendanceerrors.ErrNotClockedIn
		}
		return RecordResponse{}, err
	}
	if rec.TimeIn == nil {
		return RecordResponse{}, attendanceerrors.ErrNotClockedIn
	}
	if rec.TimeOut != nil {
		return RecordResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	punch := now.Format("15:04")
	rec.TimeOut = &punch
	rec.applyDerived(Calculate(rec, s.policy, s.logger))

	if err := qtx.Update(ctx, rec); err != nil {
		return RecordResponse{}, mapRepositoryError(err)
	}
	if err := s.enqueueRecorded(ctx, tx, rec); err != nil {
		return RecordResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("clock out success",
		zap.String("employee_id", employeeID),
		zap.String("time_out", punch),
	)
	return mapToResponse(*rec), nil
}

func (s *service) Delete(ctx context.Context, recordID string) error {
	if _, err := uuid.Parse(recordID); err != nil {
		return attendanceerrors.ErrInvalidRecordID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByID(ctx, recordID); err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, recordID); err != nil {
		return mapRepositoryError(err)
	}
	return tx.Commit()
}

func (s *service) SetArchived(ctx context.Context, recordID string, archived bool) (RecordResponse, error) {
	if _, err := uuid.Parse(recordID); err != nil {
		return RecordResponse{}, attendanceerrors.ErrInvalidRecordID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rec, err := qtx.FindByID(ctx, recordID)
	if err != nil {
		return RecordResponse{}, mapRepositoryError(err)
	}

	rec.IsArchived = archived
	if err := qtx.Update(ctx, rec); err != nil {
		return RecordResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("record archival changed",
		zap.String("record_id", recordID),
		zap.Bool("archived", archived),
	)
	return mapToResponse(*rec), nil
}

func (s *service) List(ctx context.Context, req ListRequest) ([]RecordResponse, error) {
	if req.EmployeeID != nil {
		if _, err := uuid.Parse(*req.EmployeeID); err != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
	}

	var from, to *time.Time
	if req.FromDate != nil {
		d, err := parseDate(*req.FromDate)
		if err != nil {
			return nil, err
		}
		from = &d
	}
	if req.ToDate != nil {
		d, err := parseDate(*req.ToDate)
		if err != nil {
			return nil, err
		}
		to = &d
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}

	synthesize := req.EmployeeID != nil && from != nil && to != nil

	f := Filter{
		EmployeeID:      req.EmployeeID,
		From:            from,
		To:              to,
		IncludeArchived: req.IncludeArchived,
	}
	// With synthesis the status filter applies after placeholder rows
	// exist, so the store query must not pre-filter.
	if !synthesize {
		f.Statuses = req.Statuses
	}

	rows, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, err
	}

	if !synthesize {
		res := make([]RecordResponse, len(rows))
		for i, rec := range rows {
			res[i] = mapToResponse(rec)
		}
		return res, nil
	}

	byDate := make(map[string]*Record, len(rows))
	for i := range rows {
		byDate[rows[i].RecordDate.Format("2006-01-02")] = &rows[i]
	}

	var entries []RecordResponse
	for day := *to; !day.Before(*from); day = day.AddDate(0, 0, -1) {
		if rec, ok := byDate[day.Format("2006-01-02")]; ok {
			entries = append(entries, mapToResponse(*rec))
		} else {
			entries = append(entries, syntheticAbsence(*req.EmployeeID, day))
		}
	}

	if len(req.Statuses) == 0 {
		return entries, nil
	}
	wanted := make(map[string]struct{}, len(req.Statuses))
	for _, st := range req.Statuses {
		wanted[st] = struct{}{}
	}
	filtered := entries[:0]
	for _, e := range entries {
		if _, ok := wanted[e.Status]; ok {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *service) DailySummary(ctx context.Context, date string) (DailySummaryResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return DailySummaryResponse{}, err
	}

	present, err := s.repo.CountByStatusOnDate(ctx, day, StatusPresent)
	if err != nil {
		return DailySummaryResponse{}, err
	}
	total, err := s.employees.Count(ctx)
	if err != nil {
		return DailySummaryResponse{}, err
	}

	// Deliberately coarse: everyone without a PRESENT record counts as
	// absent, including partial and on-leave days.
	return DailySummaryResponse{
		Date:    day.Format("2006-01-02"),
		Present: present,
		Absent:  total - present,
	}, nil
}

func (s *service) enqueueRecorded(ctx context.Context, tx *sql.Tx, rec *Record) error {
	if s.outbox == nil {
		return nil
	}

	evt := events.AttendanceRecordedEvent{
		EventType:  "attendance.recorded",
		RecordID:   rec.ID.String(),
		EmployeeID: rec.EmployeeID.String(),
		RecordDate: rec.RecordDate.Format("2006-01-02"),
		Status:     rec.Status,
		OccurredAt: s.now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "attendance_record",
		AggregateID:   rec.ID.String(),
		EventType:     evt.EventType,
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// patch applies the nil=unchanged / empty=clear convention.
func patch(current, override *string) *string {
	if override == nil {
		return current
	}
	if *override == "" {
		return nil
	}
	return override
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// dateOnly keeps t's calendar day, in t's own location, as the
// UTC-midnight value record_date is stored as.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func syntheticAbsence(employeeID string, day time.Time) RecordResponse {
	return RecordResponse{
		EmployeeID: employeeID,
		Date:       day.Format("2006-01-02"),
		Status:     StatusAbsent,
		Synthetic:  true,
	}
}

func mapToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:         rec.ID.String(),
		EmployeeID: rec.EmployeeID.String(),
		Date:       rec.RecordDate.Format("2006-01-02"),
		TimeIn:     rec.TimeIn,
		TimeOut:    rec.TimeOut,
		LeaveStart: rec.LeaveStart,
		LeaveEnd:   rec.LeaveEnd,

		DurationMinutes:       rec.DurationMinutes,
		LunchOverlapMinutes:   rec.LunchOverlapMinutes,
		LeaveMinutes:          rec.LeaveMinutes,
		TardinessMinutes:      rec.TardinessMinutes,
		EarlyDepartureMinutes: rec.EarlyDepartureMinutes,
		MainWorkMinutes:       rec.MainWorkMinutes,
		OvertimeMinutes:       rec.OvertimeMinutes,
		Status:                rec.Status,

		Note:       rec.Note,
		CreatedBy:  rec.CreatedBy.String(),
		IsArchived: rec.IsArchived,
	}
}
