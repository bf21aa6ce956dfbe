package response

import (
	"errors"
	"net/http"

	"github.com/stafflog/attendance-backend-go/internal/domain/report"
	"github.com/stafflog/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Input-shape failures all surface as 400 with a message.
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	switch {
	case errors.Is(err, report.ErrTypeRequired),
		errors.Is(err, report.ErrUnknownType),
		errors.Is(err, report.ErrMonthRequired),
		errors.Is(err, report.ErrDateRequired),
		errors.Is(err, report.ErrUnknownFormat):
		BadRequest(w, err.Error())

	case errors.Is(err, report.ErrAccessDenied):
		Forbidden(w, "Access denied")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
