package response

import (
	"errors"
	"net/http"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/employee"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/ingest"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/report"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/upload"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/tabular"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Not-found
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, upload.ErrUploadNotFound):
		NotFound(w, "Upload not found")

	// Bad input
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, "Invalid report period", nil)
	case errors.Is(err, report.ErrInvalidDate):
		BadRequest(w, "Invalid report date", nil)
	case errors.Is(err, ingest.ErrTooManyRows):
		BadRequest(w, "Upload exceeds the row limit", nil)

	// Oversized upload
	case errors.Is(err, tabular.ErrFileTooLarge):
		PayloadTooLarge(w, "Upload exceeds the size limit")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
