package employee

import (
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/validator"
)

type UpdateEmployeeRequest struct {
	ID            string  `json:"-"`
	Name          string  `json:"name"`
	DefaultInTime *string `json:"default_in_time,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee id must be alphanumeric or hyphen, at most 20 characters",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if !validator.IsValidEmployeeName(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name contains invalid characters or is too long",
		})
	}

	if r.DefaultInTime != nil && !validator.IsValidClockTime(*r.DefaultInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_in_time",
			Message: "default in-time must be a valid HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	DefaultInTime *string `json:"default_in_time,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
