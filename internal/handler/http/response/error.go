package response

import (
	"errors"
	"net/http"

	"github.com/nominamx/payroll-backend-go/internal/domain/auth"
	"github.com/nominamx/payroll-backend-go/internal/domain/employee"
	"github.com/nominamx/payroll-backend-go/internal/domain/payroll"
	"github.com/nominamx/payroll-backend-go/internal/domain/role"
	"github.com/nominamx/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "An active payroll record already exists for this employee and period")

	// Catalog domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
