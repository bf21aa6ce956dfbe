package report

import (
	"github.com/google/uuid"

	"github.com/stafflog/attendance-backend-go/internal/pkg/validator"
)

// Type identifies one of the supported report variants.
type Type string

const (
	TypeEmployeeMaster     Type = "employee_master"
	TypeMatrixMonthly      Type = "matrix_monthly"
	TypeMatrixWeekly       Type = "matrix_weekly"
	TypeMatrixDaily        Type = "matrix_daily"
	TypeAttendanceSummary  Type = "attendance_summary"
	TypeAttendanceDetailed Type = "attendance_detailed"
	TypeLatenessReport     Type = "lateness_report"
)

// Valid reports whether t is one of the supported report types.
func (t Type) Valid() bool {
	switch t {
	case TypeEmployeeMaster, TypeMatrixMonthly, TypeMatrixWeekly, TypeMatrixDaily,
		TypeAttendanceSummary, TypeAttendanceDetailed, TypeLatenessReport:
		return true
	}
	return false
}

// Matrix reports whether t is one of the calendar-grid variants.
func (t Type) Matrix() bool {
	return t == TypeMatrixDaily || t == TypeMatrixWeekly || t == TypeMatrixMonthly
}

// Monthly reports whether t resolves its window from a YYYY-MM month.
func (t Type) Monthly() bool {
	switch t {
	case TypeMatrixMonthly, TypeAttendanceSummary, TypeAttendanceDetailed, TypeLatenessReport:
		return true
	}
	return false
}

// Format identifies an export serialization.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

func (f Format) Valid() bool {
	return f == FormatXLSX || f == FormatCSV || f == FormatPDF
}

// Preview row limits. Export is not limited.
const (
	PreviewLimitAttendance = 20
	PreviewLimitEmployees  = 50
)

// ReportData is the {columns, rows} payload every report resolves to.
// Invariant: each row has exactly len(Columns) cells.
type ReportData struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type PreviewRequest struct {
	Type  Type
	Month string
	Date  string
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: ErrTypeRequired.Error(),
		})
	} else if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: ErrUnknownType.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExportRequest struct {
	Type   Type
	Month  string
	Date   string
	Format Format

	// TargetUserID narrows the export to a single user. On the
	// self-service route the service overwrites it with the
	// authenticated user id before anything else looks at it.
	TargetUserID string

	// SelfService marks the /attendance self-report path: the target
	// user is always the caller and the window always comes from Month.
	SelfService bool
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: ErrTypeRequired.Error(),
		})
	} else if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: ErrUnknownType.Error(),
		})
	}

	if !r.Format.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: ErrUnknownFormat.Error(),
		})
	}

	if r.TargetUserID != "" && !r.SelfService {
		if _, err := uuid.Parse(r.TargetUserID); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "user_id",
				Message: "user_id must be a valid UUID",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Document is a fully rendered export, built in memory before the
// handler writes any response headers.
type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}
