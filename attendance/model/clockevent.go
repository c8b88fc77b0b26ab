package model

const (
	ModeClockIn  = "출근"
	ModeClockOut = "퇴근"
)

// Required columns of a clock-event export.
const (
	ColumnEventDate  = "발생일자"
	ColumnEventTime  = "발생시각"
	ColumnOccurredAt = "일시"
	ColumnEmployeeID = "사원번호"
	ColumnName       = "이름"
	ColumnMode       = "모드"
)

var RequiredColumns = []string{ColumnEventDate, ColumnEventTime, ColumnOccurredAt, ColumnEmployeeID, ColumnName, ColumnMode}

// ClockEvent is one row of an uploaded clock-event export.
type ClockEvent struct {
	EventDate  string
	EventTime  string
	OccurredAt string
	EmployeeID string
	Name       string
	Mode       string
	Department string
}

// Timestamp combines the event date and time, the value stored as the attendance date.
func (e ClockEvent) Timestamp() string {
	return e.EventDate + " " + e.EventTime
}
