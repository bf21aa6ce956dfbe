package report

import (
	"fmt"
	"strconv"

	"github.com/stafflog/attendance-backend-go/internal/domain/report"
	"github.com/stafflog/attendance-backend-go/internal/pkg/document"
)

// Per-type row shaping. Each function is the single source of truth for
// its report's columns and cells; preview, spreadsheet and PDF all
// render from the same output.

// dailyMatrixData joins each user to at most one record in the window.
// Users with no record show as Absent with dashed times.
func dailyMatrixData(users []report.UserRow, records []report.AttendanceRecord) report.ReportData {
	data := report.ReportData{
		Columns: []string{"Name", "Dept", "Time In", "Time Out", "Work Hrs", "Status"},
		Rows:    [][]string{},
	}

	byUser := recordsByUser(records)
	for _, u := range users {
		row := []string{
			u.UserName,
			report.TextCell(u.DeptName),
			"-", "-",
			report.WorkHours(nil, nil),
			"Absent",
		}
		if recs := byUser[u.UserID]; len(recs) > 0 {
			rec := recs[0]
			row[2] = report.ClockCell(rec.TimeIn)
			row[3] = report.ClockCell(rec.TimeOut)
			row[4] = report.WorkHours(rec.TimeIn, rec.TimeOut)
			row[5] = rec.Status
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

// rangeMatrixData aggregates each user's records across the window for
// the weekly/monthly preview and PDF.
func rangeMatrixData(users []report.UserRow, records []report.AttendanceRecord) report.ReportData {
	data := report.ReportData{
		Columns: []string{"Name", "Dept", "Present Days", "Total Hrs", "Late Count"},
		Rows:    [][]string{},
	}

	byUser := recordsByUser(records)
	for _, u := range users {
		recs := byUser[u.UserID]
		var totalHrs float64
		lateCount := 0
		for _, rec := range recs {
			totalHrs += report.WorkHoursValue(rec.TimeIn, rec.TimeOut)
			if rec.LateMinutes != nil && *rec.LateMinutes > 0 {
				lateCount++
			}
		}
		data.Rows = append(data.Rows, []string{
			u.UserName,
			report.TextCell(u.DeptName),
			strconv.Itoa(len(recs)),
			fmt.Sprintf("%.2f", totalHrs),
			strconv.Itoa(lateCount),
		})
	}
	return data
}

// detailedData is one row per record, already ordered by time_in.
func detailedData(rows []report.DetailedRow) report.ReportData {
	data := report.ReportData{
		Columns: []string{"Date", "Name", "Dept", "Time In", "Time Out", "Status"},
		Rows:    [][]string{},
	}
	for _, r := range rows {
		data.Rows = append(data.Rows, []string{
			report.DateCell(r.TimeIn),
			r.UserName,
			report.TextCell(r.DeptName),
			report.ClockCell(r.TimeIn),
			report.ClockCell(r.TimeOut),
			r.Status,
		})
	}
	return data
}

func summaryData(rows []report.SummaryRow) report.ReportData {
	data := report.ReportData{
		Columns: []string{"Name", "Dept", "Total Records", "Present"},
		Rows:    [][]string{},
	}
	for _, r := range rows {
		data.Rows = append(data.Rows, []string{
			r.UserName,
			report.TextCell(r.DeptName),
			strconv.Itoa(r.TotalRecords),
			strconv.Itoa(r.PresentDays),
		})
	}
	return data
}

func latenessData(rows []report.LatenessRow) report.ReportData {
	data := report.ReportData{
		Columns: []string{"Name", "Dept", "Date", "Late (Mins)", "Overtime (Mins)"},
		Rows:    [][]string{},
	}
	for _, r := range rows {
		data.Rows = append(data.Rows, []string{
			r.UserName,
			report.TextCell(r.DeptName),
			report.DateCell(r.TimeIn),
			report.IntCell(r.LateMinutes),
			report.MinutesCell(r.OvertimeHours),
		})
	}
	return data
}

func employeeMasterData(users []report.UserRow) report.ReportData {
	data := report.ReportData{
		Columns: []string{"ID", "Name", "Email", "Phone", "Dept", "Designation", "Role"},
		Rows:    [][]string{},
	}
	for _, u := range users {
		data.Rows = append(data.Rows, []string{
			u.UserID,
			u.UserName,
			report.TextCell(u.Email),
			report.TextCell(u.PhoneNo),
			report.TextCell(u.DeptName),
			report.TextCell(u.DesgName),
			u.UserType,
		})
	}
	return data
}

// sheetWidths maps each simple report type to its export column widths,
// index-aligned with the shaping columns above.
var sheetWidths = map[report.Type][]float64{
	report.TypeMatrixDaily:        {25, 20, 15, 15, 12, 15},
	report.TypeAttendanceDetailed: {15, 25, 20, 15, 15, 15},
	report.TypeAttendanceSummary:  {25, 20, 15, 15},
	report.TypeLatenessReport:     {25, 20, 15, 12, 15},
	report.TypeEmployeeMaster:     {10, 25, 30, 15, 20, 20, 15},
}

// sheetFor wraps shaped report data into a worksheet with typed columns.
func sheetFor(t report.Type, data report.ReportData) document.Sheet {
	widths := sheetWidths[t]
	columns := make([]document.Column, len(data.Columns))
	for i, header := range data.Columns {
		col := document.Column{Header: header}
		if i < len(widths) {
			col.Width = widths[i]
		}
		columns[i] = col
	}
	return document.Sheet{Name: "Report", Columns: columns, Rows: data.Rows}
}

// matrixGridSheet pivots the window into one column per calendar day:
// identity columns, placeholder time columns, a presence cell per day,
// then trailing summary columns.
func matrixGridSheet(users []report.UserRow, records []report.AttendanceRecord, window report.DateRange) document.Sheet {
	days := window.Days()

	columns := []document.Column{
		{Header: "SR No.", Width: 8},
		{Header: "Name", Width: 25},
		{Header: "Position", Width: 20},
		{Header: "Dept", Width: 20},
		{Header: "Time In", Width: 12},
		{Header: "Time Out", Width: 12},
		{Header: "Late Hours", Width: 12},
	}
	for _, d := range days {
		columns = append(columns, document.Column{
			Header: fmt.Sprintf("%d\n%s", d.Day(), d.Format("Mon")),
			Width:  6,
		})
	}
	columns = append(columns,
		document.Column{Header: "Present Days", Width: 12},
		document.Column{Header: "Total Hrs", Width: 10},
		document.Column{Header: "Late Count", Width: 10},
		document.Column{Header: "Late Mins", Width: 10},
	)

	byUser := recordsByUser(records)
	sheet := document.Sheet{Name: "Report", Columns: columns, Rows: [][]string{}}
	for i, u := range users {
		recs := byUser[u.UserID]

		byDate := make(map[string]report.AttendanceRecord, len(recs))
		for _, rec := range recs {
			if rec.TimeIn != nil {
				byDate[rec.TimeIn.Format("2006-01-02")] = rec
			}
		}

		row := []string{
			strconv.Itoa(i + 1),
			u.UserName,
			report.TextCell(u.DesgName),
			report.TextCell(u.DeptName),
			"-", "-", "0",
		}
		var totalHrs float64
		for _, d := range days {
			rec, ok := byDate[d.Format("2006-01-02")]
			if ok {
				row = append(row, "1.0")
				totalHrs += report.WorkHoursValue(rec.TimeIn, rec.TimeOut)
			} else {
				row = append(row, "0.0")
			}
		}
		// Late count/minutes aggregation for the grid summary is not
		// defined yet; the columns stay zero until it is.
		row = append(row,
			strconv.Itoa(len(recs)),
			fmt.Sprintf("%.2f", totalHrs),
			"0", "0",
		)
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

func recordsByUser(records []report.AttendanceRecord) map[string][]report.AttendanceRecord {
	byUser := make(map[string][]report.AttendanceRecord)
	for _, rec := range records {
		byUser[rec.UserID] = append(byUser[rec.UserID], rec)
	}
	return byUser
}
