package report

import (
	"time"
)

// UserRow is the directory projection a report joins against. Department,
// designation and contact fields come from LEFT JOINs and may be absent.
type UserRow struct {
	UserID   string
	UserName string
	DeptName *string
	DesgName *string
	Email    *string
	PhoneNo  *string
	UserType string
}

// AttendanceRecord is one clock-in/clock-out row. At most one record per
// user per day is assumed upstream; this subsystem does not enforce it.
type AttendanceRecord struct {
	UserID        string
	OrgID         string
	TimeIn        *time.Time
	TimeOut       *time.Time
	Status        string
	LateMinutes   *int
	OvertimeHours *float64
}

// DetailedRow is an attendance record joined to its user and department,
// as returned by the detailed report query (ordered by time_in).
type DetailedRow struct {
	UserName string
	DeptName *string
	TimeIn   *time.Time
	TimeOut  *time.Time
	Status   string
}

// SummaryRow is the grouped per-user aggregate for the summary report.
type SummaryRow struct {
	UserName     string
	DeptName     *string
	TotalRecords int
	PresentDays  int
}

// LatenessRow is a record with late minutes or overtime, joined to its user.
type LatenessRow struct {
	UserName      string
	DeptName      *string
	TimeIn        *time.Time
	LateMinutes   *int
	OvertimeHours *float64
}
