package report

import "errors"

var (
	ErrTypeRequired  = errors.New("report type is required")
	ErrUnknownType   = errors.New("unknown report type")
	ErrMonthRequired = errors.New("month is required")
	ErrDateRequired  = errors.New("date is required")
	ErrUnknownFormat = errors.New("unknown export format")
	ErrAccessDenied  = errors.New("access denied")
)
