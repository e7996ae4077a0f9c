package events

import "time"

const AttendanceRecordedTopic = "ta.attendance.record.v1"

// AttendanceRecordedEvent is emitted whenever a record is created or
// its punches change, after recalculation.
type AttendanceRecordedEvent struct {
	EventType  string    `json:"event_type"`
	RecordID   string    `json:"record_id"`
	EmployeeID string    `json:"employee_id"`
	RecordDate string    `json:"record_date"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
