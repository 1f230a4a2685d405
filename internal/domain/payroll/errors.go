package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("an active payroll record already exists for this employee and period")
)
