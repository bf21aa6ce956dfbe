package report

import (
	"fmt"
	"math"
	"time"
)

// WorkHours returns the elapsed hours between timeIn and timeOut as a
// fixed two-decimal string. Missing input or a time-out before time-in
// yields "0.00". Pure: identical inputs always produce identical output.
func WorkHours(timeIn, timeOut *time.Time) string {
	return fmt.Sprintf("%.2f", WorkHoursValue(timeIn, timeOut))
}

// WorkHoursValue is the numeric form of WorkHours, rounded to two
// decimals with standard half-away-from-zero rounding. Used where the
// per-record values are summed before formatting.
func WorkHoursValue(timeIn, timeOut *time.Time) float64 {
	if timeIn == nil || timeOut == nil {
		return 0
	}
	diff := timeOut.Sub(*timeIn)
	if diff < 0 {
		return 0
	}
	return math.Round(diff.Hours()*100) / 100
}

// WorkHoursFromStrings parses RFC3339 timestamps and delegates to
// WorkHours. Unparsable input counts as missing.
func WorkHoursFromStrings(timeIn, timeOut string) string {
	in, errIn := time.Parse(time.RFC3339, timeIn)
	out, errOut := time.Parse(time.RFC3339, timeOut)
	if errIn != nil || errOut != nil {
		return "0.00"
	}
	return WorkHours(&in, &out)
}
