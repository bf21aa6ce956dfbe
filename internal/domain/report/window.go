package report

import (
	"time"

	"github.com/stafflog/attendance-backend-go/internal/pkg/validator"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// DateRange is an inclusive [Start, End] calendar window, Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) StartDate() string { return r.Start.Format(dateLayout) }
func (r DateRange) EndDate() string   { return r.End.Format(dateLayout) }

// Days returns every calendar date from Start to End inclusive.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether t falls on a date inside the window.
func (r DateRange) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(r.Start) && !d.After(r.End)
}

// ResolveDateRange computes the window a report of type t covers.
// Month is YYYY-MM, date is YYYY-MM-DD; which one is required depends
// on the type. An unrecognized type is rejected here rather than
// resolving to an empty window.
func ResolveDateRange(t Type, month, date string) (DateRange, error) {
	switch {
	case t == TypeEmployeeMaster:
		now := time.Now().UTC()
		return DateRange{
			Start: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		}, nil

	case t.Monthly():
		return ResolveMonthRange(month)

	case t == TypeMatrixWeekly:
		start, err := parseDateParam(date)
		if err != nil {
			return DateRange{}, err
		}
		return DateRange{Start: start, End: start.AddDate(0, 0, 6)}, nil

	case t == TypeMatrixDaily:
		start, err := parseDateParam(date)
		if err != nil {
			return DateRange{}, err
		}
		return DateRange{Start: start, End: start}, nil
	}

	return DateRange{}, validator.ValidationErrors{{
		Field:   "type",
		Message: ErrUnknownType.Error(),
	}}
}

// ResolveMonthRange computes [first day, last day] of a YYYY-MM month.
// The end date is day zero of the following month.
func ResolveMonthRange(month string) (DateRange, error) {
	if validator.IsEmpty(month) {
		return DateRange{}, validator.ValidationErrors{{
			Field:   "month",
			Message: ErrMonthRequired.Error(),
		}}
	}
	first, err := time.Parse(monthLayout, month)
	if err != nil {
		return DateRange{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}
	return DateRange{Start: first, End: first.AddDate(0, 1, -1)}, nil
}

func parseDateParam(date string) (time.Time, error) {
	if validator.IsEmpty(date) {
		return time.Time{}, validator.ValidationErrors{{
			Field:   "date",
			Message: ErrDateRequired.Error(),
		}}
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	return d, nil
}
