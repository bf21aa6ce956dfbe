package report

import "context"

// ReportRepository defines the read-only queries reports are built from.
// Every query is scoped to one organization; limit <= 0 means no limit.
type ReportRepository interface {
	// ListUsers returns org users with department/designation joined,
	// optionally narrowed to a single user.
	ListUsers(ctx context.Context, orgID, targetUserID string, limit int) ([]UserRow, error)

	// ListRecords returns raw attendance records whose time_in date
	// falls inside the window.
	ListRecords(ctx context.Context, orgID string, window DateRange) ([]AttendanceRecord, error)

	// ListDetailed returns record-per-row data joined to users,
	// ordered by time_in ascending.
	ListDetailed(ctx context.Context, orgID string, window DateRange, limit int) ([]DetailedRow, error)

	// ListSummary returns per-user grouped totals for the window.
	ListSummary(ctx context.Context, orgID string, window DateRange, limit int) ([]SummaryRow, error)

	// ListLateness returns records with late minutes or overtime.
	ListLateness(ctx context.Context, orgID string, window DateRange, limit int) ([]LatenessRow, error)
}
