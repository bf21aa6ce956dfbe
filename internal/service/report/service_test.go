package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/stafflog/attendance-backend-go/internal/domain/report"
	"github.com/stafflog/attendance-backend-go/internal/pkg/validator"
)

const (
	testOrgID   = "0190b2a0-0000-7000-8000-000000000001"
	testAdminID = "0190b2a0-0000-7000-8000-00000000aaaa"
	testAliceID = "0190b2a0-0000-7000-8000-00000000a11c"
	testBobID   = "0190b2a0-0000-7000-8000-00000000b0b0"
)

// fakeReportRepo serves canned fixtures and records the arguments of
// the last ListUsers call.
type fakeReportRepo struct {
	users    []report.UserRow
	records  []report.AttendanceRecord
	detailed []report.DetailedRow
	summary  []report.SummaryRow
	lateness []report.LatenessRow

	lastTargetUserID string
	lastUserLimit    int
}

func (f *fakeReportRepo) ListUsers(ctx context.Context, orgID, targetUserID string, limit int) ([]report.UserRow, error) {
	f.lastTargetUserID = targetUserID
	f.lastUserLimit = limit

	users := f.users
	if targetUserID != "" {
		users = nil
		for _, u := range f.users {
			if u.UserID == targetUserID {
				users = append(users, u)
			}
		}
	}
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (f *fakeReportRepo) ListRecords(ctx context.Context, orgID string, window report.DateRange) ([]report.AttendanceRecord, error) {
	var records []report.AttendanceRecord
	for _, rec := range f.records {
		if rec.TimeIn != nil && window.Contains(*rec.TimeIn) {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (f *fakeReportRepo) ListDetailed(ctx context.Context, orgID string, window report.DateRange, limit int) ([]report.DetailedRow, error) {
	return f.detailed, nil
}

func (f *fakeReportRepo) ListSummary(ctx context.Context, orgID string, window report.DateRange, limit int) ([]report.SummaryRow, error) {
	return f.summary, nil
}

func (f *fakeReportRepo) ListLateness(ctx context.Context, orgID string, window report.DateRange, limit int) ([]report.LatenessRow, error) {
	return f.lateness, nil
}

func strptr(s string) *string { return &s }
func intptr(n int) *int { return &n }

func tsptr(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &t
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":   userID,
		"org_id":    testOrgID,
		"user_type": "admin",
		"type":      "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func fixtureRepo() *fakeReportRepo {
	engineering := strptr("Engineering")
	return &fakeReportRepo{
		users: []report.UserRow{
			{
				UserID:   testAliceID,
				UserName: "Alice Chen",
				DeptName: engineering,
				DesgName: strptr("Senior Engineer"),
				Email:    strptr("alice@example.com"),
				PhoneNo:  strptr("0811111111"),
				UserType: "employee",
			},
			{
				UserID:   testBobID,
				UserName: "Bob Okafor",
				UserType: "employee",
			},
		},
		records: []report.AttendanceRecord{
			{
				UserID:      testAliceID,
				OrgID:       testOrgID,
				TimeIn:      tsptr("2024-03-01T09:00:00Z"),
				TimeOut:     tsptr("2024-03-01T17:30:00Z"),
				Status:      "PRESENT",
				LateMinutes: intptr(10),
			},
			{
				UserID:  testAliceID,
				OrgID:   testOrgID,
				TimeIn:  tsptr("2024-03-04T09:00:00Z"),
				TimeOut: tsptr("2024-03-04T17:00:00Z"),
				Status:  "PRESENT",
			},
		},
		detailed: []report.DetailedRow{
			{
				UserName: "Alice Chen",
				DeptName: engineering,
				TimeIn:   tsptr("2024-03-01T09:00:00Z"),
				TimeOut:  tsptr("2024-03-01T17:30:00Z"),
				Status:   "PRESENT",
			},
		},
		summary: []report.SummaryRow{
			{UserName: "Alice Chen", DeptName: engineering, TotalRecords: 2, PresentDays: 2},
		},
		lateness: []report.LatenessRow{
			{UserName: "Alice Chen", DeptName: engineering, TimeIn: tsptr("2024-03-01T09:00:00Z"), LateMinutes: intptr(10)},
		},
	}
}

// ===== PREVIEW TESTS =====

func TestPreview_MatrixDaily(t *testing.T) {
	svc := NewReportService(fixtureRepo())
	ctx := authedContext(t, testAdminID)

	data, err := svc.Preview(ctx, report.PreviewRequest{Type: report.TypeMatrixDaily, Date: "2024-03-01"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Dept", "Time In", "Time Out", "Work Hrs", "Status"}, data.Columns)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"Alice Chen", "Engineering", "09:00", "17:30", "8.50", "PRESENT"}, data.Rows[0])
	// No record in the window: absent with dashed times.
	assert.Equal(t, []string{"Bob Okafor", "-", "-", "-", "0.00", "Absent"}, data.Rows[1])
}

func TestPreview_MatrixWeeklyAggregates(t *testing.T) {
	svc := NewReportService(fixtureRepo())
	ctx := authedContext(t, testAdminID)

	data, err := svc.Preview(ctx, report.PreviewRequest{Type: report.TypeMatrixWeekly, Date: "2024-03-01"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Dept", "Present Days", "Total Hrs", "Late Count"}, data.Columns)
	require.Len(t, data.Rows, 2)
	// 8.50 + 8.00 across the two records, one of them late.
	assert.Equal(t, []string{"Alice Chen", "Engineering", "2", "16.50", "1"}, data.Rows[0])
	assert.Equal(t, []string{"Bob Okafor", "-", "0", "0.00", "0"}, data.Rows[1])
}

func TestPreview_RowLengthInvariant(t *testing.T) {
	svc := NewReportService(fixtureRepo())
	ctx := authedContext(t, testAdminID)

	cases := []report.PreviewRequest{
		{Type: report.TypeMatrixDaily, Date: "2024-03-01"},
		{Type: report.TypeMatrixWeekly, Date: "2024-03-01"},
		{Type: report.TypeMatrixMonthly, Month: "2024-03"},
		{Type: report.TypeAttendanceDetailed, Month: "2024-03"},
		{Type: report.TypeAttendanceSummary, Month: "2024-03"},
		{Type: report.TypeLatenessReport, Month: "2024-03"},
		{Type: report.TypeEmployeeMaster},
	}

	for _, req := range cases {
		data, err := svc.Preview(ctx, req)
		require.NoError(t, err, "type %s", req.Type)
		assert.NotEmpty(t, data.Columns, "type %s", req.Type)
		for i, row := range data.Rows {
			assert.Len(t, row, len(data.Columns), "type %s row %d", req.Type, i)
		}
	}
}

func TestPreview_EmployeeMaster(t *testing.T) {
	repo := fixtureRepo()
	svc := NewReportService(repo)
	ctx := authedContext(t, testAdminID)

	data, err := svc.Preview(ctx, report.PreviewRequest{Type: report.TypeEmployeeMaster})
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "Name", "Email", "Phone", "Dept", "Designation", "Role"}, data.Columns)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{testAliceID, "Alice Chen", "alice@example.com", "0811111111", "Engineering", "Senior Engineer", "employee"}, data.Rows[0])
	assert.Equal(t, []string{testBobID, "Bob Okafor", "-", "-", "-", "-", "employee"}, data.Rows[1])
	assert.Equal(t, report.PreviewLimitEmployees, repo.lastUserLimit)
}

func TestPreview_AppliesAttendanceLimit(t *testing.T) {
	repo := fixtureRepo()
	svc := NewReportService(repo)
	ctx := authedContext(t, testAdminID)

	_, err := svc.Preview(ctx, report.PreviewRequest{Type: report.TypeMatrixDaily, Date: "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, report.PreviewLimitAttendance, repo.lastUserLimit)
}

func TestPreview_MissingType(t *testing.T) {
	svc := NewReportService(fixtureRepo())
	ctx := authedContext(t, testAdminID)

	_, err := svc.Preview(ctx, report.PreviewRequest{})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "type")
}

func TestPreview_UnknownType(t *testing.T) {
	svc := NewReportService(fixtureRepo())
	ctx := authedContext(t, testAdminID)

	_, err := svc.Preview(ctx, report.PreviewRequest{Type: report.Type("quarterly"), Month: "2024-03"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestPreview_NoClaims(t *testing.T) {
	svc := NewReportService(fixtureRepo())

	_, err := svc.Preview(context.Background(), report.PreviewRequest{Type: report.TypeEmployeeMaster})
	assert.Error(t, err)
}

// ===== EXPORT TESTS =====

func TestExport_MatrixGridCellCount(t *testing.T) {
	svc := NewReportService(fixtureRepo())
	ctx := authedContext(t, testAdminID)

	doc, err := svc.Export(ctx, report.ExportRequest{
		Type:   report.TypeMatrixWeekly,
		Date:   "2024-03-01",
		Format: report.FormatCSV,
	})
	require.NoError(t, err)
	assert.Equal(t, "Report_matrix_weekly.csv", doc.FileName)
	assert.Equal(t, "text/csv", doc.ContentType)

	records, err := csv.NewReader(bytes.NewReader(doc.Content)).ReadAll()
	require.NoError(t, err)

	// Header plus one data row per user; each row has 4 identity
	// columns, 3 time/late columns, 7 day columns, 4 summary columns.
	const wantCells = 4 + 3 + 7 + 4
	require.Len(t, records, 3)
	for i, row := range records {
		assert.Len(t, row, wantCells, "row %d", i)
	}

	alice := records[1]
	assert.Equal(t, "1", alice[0])
	assert.Equal(t, "Alice Chen", alice[1])
	assert.Equal(t, "Senior Engineer", alice[2])
	assert.Equal(t, "Engineering", alice[3])
	// Present on the 1st and 4th of the window.
	assert.Equal(t, "1.0", alice[7])
	assert.Equal(t, "0.0", alice[8])
	assert.Equal(t, "1.0", alice[10])
	// Summary: present days, total hours, zeroed late columns.
	assert.Equal(t, []string{"2", "16.50", "0", "0"}, alice[14:])

	bob := records[2]
	assert.Equal(t, []string{"0", "0.00", "0", "0"}, bob[14:])
}

func TestExport_MatrixMonthlyGridXLSX(t *testing.T) {
	svc := NewReportService(fixtureRepo())
	ctx := authedContext(t, testAdminID)

	doc, err := svc.Export(ctx, report.ExportRequest{
		Type:   report.TypeMatrixMonthly,
		Month:  "2024-03",
		Format: report.FormatXLSX,
	})
	require.NoError(t, err)
	assert.Equal(t, "Report_matrix_monthly.xlsx", doc.FileName)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", doc.ContentType)

	file, err := excelize.OpenReader(bytes.NewReader(doc.Content))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Report")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// March has 31 days.
	assert.Len(t, rows[0], 4+3+31+4)
}

func TestExport_DailyXLSXSharesPreviewShaping(t *testing.T) {
	svc := NewReportService(fixtureRepo())
	ctx := authedContext(t, testAdminID)

	doc, err := svc.Export(ctx, report.ExportRequest{
		Type:   report.TypeMatrixDaily,
		Date:   "2024-03-01",
		Format: report.FormatXLSX,
	})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(doc.Content))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Report")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Dept", "Time In", "Time Out", "Work Hrs", "Status"}, rows[0])
	assert.Equal(t, []string{"Alice Chen", "Engineering", "09:00", "17:30", "8.50", "PRESENT"}, rows[1])
	assert.Equal(t, []string{"Bob Okafor", "-", "-", "-", "0.00", "Absent"}, rows[2])
}

func TestExport_PDF(t *testing.T) {
	svc := NewReportService(fixtureRepo())
	ctx := authedContext(t, testAdminID)

	doc, err := svc.Export(ctx, report.ExportRequest{
		Type:   report.TypeMatrixWeekly,
		Date:   "2024-03-01",
		Format: report.FormatPDF,
	})
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", doc.FileName)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")))
}

func TestExport_SelfServiceForcesTarget(t *testing.T) {
	repo := fixtureRepo()
	svc := NewReportService(repo)
	ctx := authedContext(t, testAliceID)

	_, err := svc.Export(ctx, report.ExportRequest{
		Type:   report.TypeMatrixMonthly,
		Month:  "2024-03",
		Format: report.FormatXLSX,
		// A forged user_id must not widen the export.
		TargetUserID: testBobID,
		SelfService:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, testAliceID, repo.lastTargetUserID)
}

func TestExport_SelfServiceRequiresMonth(t *testing.T) {
	svc := NewReportService(fixtureRepo())
	ctx := authedContext(t, testAliceID)

	_, err := svc.Export(ctx, report.ExportRequest{
		Type:        report.TypeMatrixWeekly,
		Date:        "2024-03-01",
		Format:      report.FormatXLSX,
		SelfService: true,
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "month")
}

func TestExport_TargetUserFiltersUsers(t *testing.T) {
	repo := fixtureRepo()
	svc := NewReportService(repo)
	ctx := authedContext(t, testAdminID)

	doc, err := svc.Export(ctx, report.ExportRequest{
		Type:         report.TypeMatrixDaily,
		Date:         "2024-03-01",
		Format:       report.FormatCSV,
		TargetUserID: testAliceID,
	})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(doc.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alice Chen", records[1][0])
}

func TestExport_UnknownFormat(t *testing.T) {
	svc := NewReportService(fixtureRepo())
	ctx := authedContext(t, testAdminID)

	_, err := svc.Export(ctx, report.ExportRequest{
		Type:   report.TypeMatrixDaily,
		Date:   "2024-03-01",
		Format: report.Format("docx"),
	})
	require.Error(t, err)
}
