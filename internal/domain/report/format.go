package report

import (
	"strconv"
	"time"
)

// Cell rendering defaults for optional fields. Every report goes
// through these helpers so a missing value always renders the same way.

const absentCell = "-"

// TextCell renders an optional text field, "-" when absent or blank.
func TextCell(s *string) string {
	if s == nil || *s == "" {
		return absentCell
	}
	return *s
}

// ClockCell renders the time of day of an optional timestamp, "-" when absent.
func ClockCell(t *time.Time) string {
	if t == nil {
		return absentCell
	}
	return t.Format("15:04")
}

// DateCell renders the calendar date of an optional timestamp, "-" when absent.
func DateCell(t *time.Time) string {
	if t == nil {
		return absentCell
	}
	return t.Format(dateLayout)
}

// IntCell renders an optional count, 0 when absent.
func IntCell(n *int) string {
	if n == nil {
		return "0"
	}
	return strconv.Itoa(*n)
}

// MinutesCell renders optional fractional minutes, 0 when absent.
func MinutesCell(f *float64) string {
	if f == nil {
		return "0"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
