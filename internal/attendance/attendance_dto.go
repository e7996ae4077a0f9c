package attendance

type AddManualRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	TimeIn     *string `json:"time_in"`
	TimeOut    *string `json:"time_out"`
	LeaveStart *string `json:"leave_start"`
	LeaveEnd   *string `json:"leave_end"`
	Note       *string `json:"note"`
}

// UpdateRecordRequest patches raw inputs only; every derived field is
// recomputed from scratch afterwards. A nil field is left unchanged,
// an empty string clears the punch.
type UpdateRecordRequest struct {
	TimeIn     *string `json:"time_in"`
	TimeOut    *string `json:"time_out"`
	LeaveStart *string `json:"leave_start"`
	LeaveEnd   *string `json:"leave_end"`
	Note       *string `json:"note"`
}

type ListRequest struct {
	EmployeeID      *string  `form:"employee_id"`
	FromDate        *string  `form:"from_date"`
	ToDate          *string  `form:"to_date"`
	Statuses        []string `form:"status"`
	IncludeArchived bool     `form:"include_archived"`
}

type RecordResponse struct {
	ID         string  `json:"id,omitempty"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	TimeIn     *string `json:"time_in,omitempty"`
	TimeOut    *string `json:"time_out,omitempty"`
	LeaveStart *string `json:"leave_start,omitempty"`
	LeaveEnd   *string `json:"leave_end,omitempty"`

	DurationMinutes       int    `json:"duration_minutes"`
	LunchOverlapMinutes   int    `json:"lunch_overlap_minutes"`
	LeaveMinutes          int    `json:"leave_minutes"`
	TardinessMinutes      int    `json:"tardiness_minutes"`
	EarlyDepartureMinutes int    `json:"early_departure_minutes"`
	MainWorkMinutes       int    `json:"main_work_minutes"`
	OvertimeMinutes       int    `json:"overtime_minutes"`
	Status                string `json:"status"`

	Note       *string `json:"note,omitempty"`
	CreatedBy  string  `json:"created_by,omitempty"`
	IsArchived bool    `json:"is_archived"`

	// Synthetic marks a gap-filler row materialized by List for a date
	// with no stored record. It never exists in storage.
	Synthetic bool `json:"synthetic,omitempty"`
}

type DailySummaryResponse struct {
	Date    string `json:"date"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
}
