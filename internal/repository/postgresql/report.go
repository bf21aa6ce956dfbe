package postgresql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stafflog/attendance-backend-go/internal/domain/report"
	"github.com/stafflog/attendance-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// ListUsers implements report.ReportRepository.
func (r *reportRepositoryImpl) ListUsers(ctx context.Context, orgID, targetUserID string, limit int) ([]report.UserRow, error) {
	query := `
		SELECT u.user_id, u.user_name, d.dept_name, dg.desg_name,
			   u.email, u.phone_no, u.user_type
		FROM users u
		LEFT JOIN departments d ON u.dept_id = d.dept_id
		LEFT JOIN designations dg ON u.desg_id = dg.desg_id
		WHERE u.org_id = $1
	`
	args := []interface{}{orgID}
	if targetUserID != "" {
		query += ` AND u.user_id = $2`
		args = append(args, targetUserID)
	}
	query += ` ORDER BY u.user_name ASC`
	if limit > 0 {
		query += ` LIMIT ` + strconv.Itoa(limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []report.UserRow
	for rows.Next() {
		var u report.UserRow
		if err := rows.Scan(
			&u.UserID, &u.UserName, &u.DeptName, &u.DesgName,
			&u.Email, &u.PhoneNo, &u.UserType,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return users, nil
}

// ListRecords implements report.ReportRepository.
func (r *reportRepositoryImpl) ListRecords(ctx context.Context, orgID string, window report.DateRange) ([]report.AttendanceRecord, error) {
	query := `
		SELECT user_id, org_id, time_in, time_out, status,
			   late_minutes, overtime_hours
		FROM attendance_records
		WHERE org_id = $1
		  AND time_in::date >= $2
		  AND time_in::date <= $3
	`

	rows, err := r.db.Query(ctx, query, orgID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []report.AttendanceRecord
	for rows.Next() {
		var rec report.AttendanceRecord
		if err := rows.Scan(
			&rec.UserID, &rec.OrgID, &rec.TimeIn, &rec.TimeOut, &rec.Status,
			&rec.LateMinutes, &rec.OvertimeHours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return records, nil
}

// ListDetailed implements report.ReportRepository.
func (r *reportRepositoryImpl) ListDetailed(ctx context.Context, orgID string, window report.DateRange, limit int) ([]report.DetailedRow, error) {
	query := `
		SELECT u.user_name, d.dept_name, ar.time_in, ar.time_out, ar.status
		FROM attendance_records ar
		JOIN users u ON ar.user_id = u.user_id
		LEFT JOIN departments d ON u.dept_id = d.dept_id
		WHERE ar.org_id = $1
		  AND ar.time_in::date >= $2
		  AND ar.time_in::date <= $3
		ORDER BY ar.time_in ASC
	`
	if limit > 0 {
		query += ` LIMIT ` + strconv.Itoa(limit)
	}

	rows, err := r.db.Query(ctx, query, orgID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query detailed attendance: %w", err)
	}
	defer rows.Close()

	var result []report.DetailedRow
	for rows.Next() {
		var row report.DetailedRow
		if err := rows.Scan(&row.UserName, &row.DeptName, &row.TimeIn, &row.TimeOut, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan detailed row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

// ListSummary implements report.ReportRepository.
func (r *reportRepositoryImpl) ListSummary(ctx context.Context, orgID string, window report.DateRange, limit int) ([]report.SummaryRow, error) {
	query := `
		SELECT u.user_name, d.dept_name,
			   COUNT(*) AS total_records,
			   SUM(CASE WHEN ar.status = 'PRESENT' THEN 1 ELSE 0 END) AS present_days
		FROM attendance_records ar
		JOIN users u ON ar.user_id = u.user_id
		LEFT JOIN departments d ON u.dept_id = d.dept_id
		WHERE ar.org_id = $1
		  AND ar.time_in::date >= $2
		  AND ar.time_in::date <= $3
		GROUP BY u.user_id, u.user_name, d.dept_name
		ORDER BY u.user_name ASC
	`
	if limit > 0 {
		query += ` LIMIT ` + strconv.Itoa(limit)
	}

	rows, err := r.db.Query(ctx, query, orgID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance summary: %w", err)
	}
	defer rows.Close()

	var result []report.SummaryRow
	for rows.Next() {
		var row report.SummaryRow
		if err := rows.Scan(&row.UserName, &row.DeptName, &row.TotalRecords, &row.PresentDays); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

// ListLateness implements report.ReportRepository.
func (r *reportRepositoryImpl) ListLateness(ctx context.Context, orgID string, window report.DateRange, limit int) ([]report.LatenessRow, error) {
	query := `
		SELECT u.user_name, d.dept_name, ar.time_in, ar.late_minutes, ar.overtime_hours
		FROM attendance_records ar
		JOIN users u ON ar.user_id = u.user_id
		LEFT JOIN departments d ON u.dept_id = d.dept_id
		WHERE ar.org_id = $1
		  AND ar.time_in::date >= $2
		  AND ar.time_in::date <= $3
		  AND (ar.late_minutes > 0 OR ar.overtime_hours > 0)
		ORDER BY ar.time_in ASC
	`
	if limit > 0 {
		query += ` LIMIT ` + strconv.Itoa(limit)
	}

	rows, err := r.db.Query(ctx, query, orgID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query lateness report: %w", err)
	}
	defer rows.Close()

	var result []report.LatenessRow
	for rows.Next() {
		var row report.LatenessRow
		if err := rows.Scan(&row.UserName, &row.DeptName, &row.TimeIn, &row.LateMinutes, &row.OvertimeHours); err != nil {
			return nil, fmt.Errorf("failed to scan lateness row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}
