package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/stafflog/attendance-backend-go/internal/domain/report"
	"github.com/stafflog/attendance-backend-go/internal/pkg/document"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
	}
}

// identityFromContext extracts the caller's user and org ids from JWT claims.
func (s *ReportServiceImpl) identityFromContext(ctx context.Context) (userID, orgID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}
	orgID, ok = claims["org_id"].(string)
	if !ok || orgID == "" {
		return "", "", fmt.Errorf("org_id claim is missing or invalid")
	}

	return userID, orgID, nil
}

// Preview assembles the row-limited report payload for on-screen display.
func (s *ReportServiceImpl) Preview(ctx context.Context, req report.PreviewRequest) (report.ReportData, error) {
	if err := req.Validate(); err != nil {
		return report.ReportData{}, err
	}

	_, orgID, err := s.identityFromContext(ctx)
	if err != nil {
		return report.ReportData{}, err
	}

	window, err := report.ResolveDateRange(req.Type, req.Month, req.Date)
	if err != nil {
		return report.ReportData{}, err
	}

	return s.assemble(ctx, req.Type, orgID, "", window, true)
}

// Export renders the full report as a document the handler can stream.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (report.Document, error) {
	userID, orgID, err := s.identityFromContext(ctx)
	if err != nil {
		return report.Document{}, err
	}

	// The self-service route always exports the caller's own data,
	// whatever user_id the query string carried.
	if req.SelfService {
		req.TargetUserID = userID
	}

	if err := req.Validate(); err != nil {
		return report.Document{}, err
	}

	var window report.DateRange
	if req.SelfService && req.Type != report.TypeEmployeeMaster {
		window, err = report.ResolveMonthRange(req.Month)
	} else {
		window, err = report.ResolveDateRange(req.Type, req.Month, req.Date)
	}
	if err != nil {
		return report.Document{}, err
	}

	if req.Format == report.FormatPDF {
		return s.exportPDF(ctx, req, orgID, window)
	}
	return s.exportSpreadsheet(ctx, req, orgID, window)
}

func (s *ReportServiceImpl) exportPDF(ctx context.Context, req report.ExportRequest, orgID string, window report.DateRange) (report.Document, error) {
	data, err := s.assemble(ctx, req.Type, orgID, req.TargetUserID, window, false)
	if err != nil {
		return report.Document{}, err
	}

	title := fmt.Sprintf("Attendance Report - %s to %s", window.StartDate(), window.EndDate())
	if req.Type == report.TypeEmployeeMaster {
		title = "Employee Master Data"
	}

	table := document.Table{Title: title, Columns: data.Columns, Rows: data.Rows}
	var buf bytes.Buffer
	if err := table.WritePDF(&buf); err != nil {
		return report.Document{}, fmt.Errorf("failed to render pdf: %w", err)
	}

	return report.Document{
		FileName:    "report.pdf",
		ContentType: "application/pdf",
		Content:     buf.Bytes(),
	}, nil
}

func (s *ReportServiceImpl) exportSpreadsheet(ctx context.Context, req report.ExportRequest, orgID string, window report.DateRange) (report.Document, error) {
	var sheet document.Sheet
	var err error

	// Multi-day matrix exports pivot into a calendar grid; every other
	// type reuses the shared per-type shaping with typed columns.
	if req.Type == report.TypeMatrixWeekly || req.Type == report.TypeMatrixMonthly {
		sheet, err = s.assembleMatrixGrid(ctx, orgID, req.TargetUserID, window)
	} else {
		var data report.ReportData
		data, err = s.assemble(ctx, req.Type, orgID, req.TargetUserID, window, false)
		if err == nil {
			sheet = sheetFor(req.Type, data)
		}
	}
	if err != nil {
		return report.Document{}, err
	}

	var buf bytes.Buffer
	if req.Format == report.FormatCSV {
		if err := sheet.WriteCSV(&buf); err != nil {
			return report.Document{}, fmt.Errorf("failed to render csv: %w", err)
		}
		return report.Document{
			FileName:    fmt.Sprintf("Report_%s.csv", req.Type),
			ContentType: "text/csv",
			Content:     buf.Bytes(),
		}, nil
	}

	if err := sheet.WriteXLSX(&buf); err != nil {
		return report.Document{}, fmt.Errorf("failed to render workbook: %w", err)
	}
	return report.Document{
		FileName:    fmt.Sprintf("Report_%s.xlsx", req.Type),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buf.Bytes(),
	}, nil
}

// assemble runs the queries for one report type and shapes them into the
// shared {columns, rows} payload. Preview applies the row limits; export
// passes preview=false and is unlimited.
func (s *ReportServiceImpl) assemble(ctx context.Context, t report.Type, orgID, targetUserID string, window report.DateRange, preview bool) (report.ReportData, error) {
	attendanceLimit, userLimit := 0, 0
	if preview {
		attendanceLimit = report.PreviewLimitAttendance
		userLimit = report.PreviewLimitEmployees
	}

	switch t {
	case report.TypeMatrixDaily, report.TypeMatrixWeekly, report.TypeMatrixMonthly:
		users, err := s.reportRepo.ListUsers(ctx, orgID, targetUserID, attendanceLimit)
		if err != nil {
			return report.ReportData{}, fmt.Errorf("failed to get users: %w", err)
		}
		records, err := s.reportRepo.ListRecords(ctx, orgID, window)
		if err != nil {
			return report.ReportData{}, fmt.Errorf("failed to get attendance records: %w", err)
		}
		if t == report.TypeMatrixDaily {
			return dailyMatrixData(users, records), nil
		}
		return rangeMatrixData(users, records), nil

	case report.TypeAttendanceDetailed:
		rows, err := s.reportRepo.ListDetailed(ctx, orgID, window, attendanceLimit)
		if err != nil {
			return report.ReportData{}, fmt.Errorf("failed to get detailed attendance: %w", err)
		}
		return detailedData(rows), nil

	case report.TypeAttendanceSummary:
		rows, err := s.reportRepo.ListSummary(ctx, orgID, window, attendanceLimit)
		if err != nil {
			return report.ReportData{}, fmt.Errorf("failed to get attendance summary: %w", err)
		}
		return summaryData(rows), nil

	case report.TypeLatenessReport:
		rows, err := s.reportRepo.ListLateness(ctx, orgID, window, attendanceLimit)
		if err != nil {
			return report.ReportData{}, fmt.Errorf("failed to get lateness report: %w", err)
		}
		return latenessData(rows), nil

	case report.TypeEmployeeMaster:
		users, err := s.reportRepo.ListUsers(ctx, orgID, targetUserID, userLimit)
		if err != nil {
			return report.ReportData{}, fmt.Errorf("failed to get users: %w", err)
		}
		return employeeMasterData(users), nil
	}

	return report.ReportData{}, report.ErrUnknownType
}

// assembleMatrixGrid builds the pivoted calendar grid for multi-day
// matrix spreadsheet exports.
func (s *ReportServiceImpl) assembleMatrixGrid(ctx context.Context, orgID, targetUserID string, window report.DateRange) (document.Sheet, error) {
	users, err := s.reportRepo.ListUsers(ctx, orgID, targetUserID, 0)
	if err != nil {
		return document.Sheet{}, fmt.Errorf("failed to get users: %w", err)
	}
	records, err := s.reportRepo.ListRecords(ctx, orgID, window)
	if err != nil {
		return document.Sheet{}, fmt.Errorf("failed to get attendance records: %w", err)
	}
	return matrixGridSheet(users, records, window), nil
}
