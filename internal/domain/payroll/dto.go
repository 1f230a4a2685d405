package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nominamx/payroll-backend-go/internal/pkg/period"
	"github.com/nominamx/payroll-backend-go/internal/pkg/validator"
)

type CreatePayrollRequest struct {
	EmployeeID  string           `json:"employee_id"`
	Month       string           `json:"month"`
	Year        int              `json:"year"`
	Deliveries  int              `json:"deliveries"`
	HoursWorked *decimal.Decimal `json:"hours_worked,omitempty"`
}

func (r CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}
	errs = append(errs, validatePeriod(r.Month, r.Year)...)
	if r.Deliveries < 0 {
		errs = append(errs, validator.ValidationError{Field: "deliveries", Message: "deliveries must not be negative"})
	}
	if r.HoursWorked != nil && r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "hours_worked must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayrollRequest struct {
	Deliveries *int `json:"deliveries"`
}

func (r UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Deliveries == nil {
		errs = append(errs, validator.ValidationError{Field: "deliveries", Message: "deliveries is required"})
	} else if *r.Deliveries < 0 {
		errs = append(errs, validator.ValidationError{Field: "deliveries", Message: "deliveries must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkItem struct {
	EmployeeID string `json:"employee_id"`
	Deliveries int    `json:"deliveries"`
}

type BulkGenerateRequest struct {
	Month string     `json:"month"`
	Year  int        `json:"year"`
	Items []BulkItem `json:"items"`
}

func (r BulkGenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validatePeriod(r.Month, r.Year)...)
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "items must not be empty"})
	}
	for i, item := range r.Items {
		if validator.IsEmpty(item.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("items[%d].employee_id", i),
				Message: "employee_id is required",
			})
		}
		if item.Deliveries < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("items[%d].deliveries", i),
				Message: "deliveries must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(month string, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !period.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a valid month name"})
	}
	if year < 2000 || year > time.Now().Year()+1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	return errs
}

type PayrollFilter struct {
	EmployeeID *string
	Month      *string
	Year       *int
	Active     *bool
}

// Bulk item outcomes.
const (
	BulkStatusCreated             = "created"
	BulkStatusSkippedExisting     = "skipped_existing"
	BulkStatusSkippedNoDeliveries = "skipped_no_deliveries"
	BulkStatusError               = "error"
)

type BulkItemResult struct {
	EmployeeID string                 `json:"employee_id"`
	Status     string                 `json:"status"`
	Error      *string                `json:"error,omitempty"`
	Record     *PayrollRecordResponse `json:"record,omitempty"`
}

type BulkGenerateResponse struct {
	Month        string           `json:"month"`
	Year         int              `json:"year"`
	CreatedCount int              `json:"created_count"`
	ErrorCount   int              `json:"error_count"`
	SkippedCount int              `json:"skipped_count"`
	Results      []BulkItemResult `json:"results"`
}

type PayrollRecordResponse struct {
	ID             string           `json:"id"`
	EmployeeID     string           `json:"employee_id"`
	EmployeeNumber *string          `json:"employee_number,omitempty"`
	EmployeeName   *string          `json:"employee_name,omitempty"`
	RoleName       *string          `json:"role_name,omitempty"`
	Month          string           `json:"month"`
	Year           int              `json:"year"`
	Deliveries     int              `json:"deliveries"`
	HoursWorked    *decimal.Decimal `json:"hours_worked,omitempty"`
	BaseSalary     decimal.Decimal  `json:"base_salary"`
	HourBonus      decimal.Decimal  `json:"hour_bonus"`
	DeliveryBonus  decimal.Decimal  `json:"delivery_bonus"`
	GrossSalary    decimal.Decimal  `json:"gross_salary"`
	ISR            decimal.Decimal  `json:"isr"`
	FoodVouchers   decimal.Decimal  `json:"food_vouchers"`
	NetSalary      decimal.Decimal  `json:"net_salary"`
	Active         bool             `json:"status_payroll"`
	CreatedBy      string           `json:"user_creation"`
	UpdatedBy      *string          `json:"user_update,omitempty"`
	CreatedAt      time.Time        `json:"date_creation"`
	UpdatedAt      *time.Time       `json:"date_update,omitempty"`
}

// ToResponse maps the entity to its API shape.
func ToResponse(r PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeNumber: r.EmployeeNumber,
		EmployeeName:   r.EmployeeName,
		RoleName:       r.RoleName,
		Month:          r.Month,
		Year:           r.Year,
		Deliveries:     r.Deliveries,
		HoursWorked:    r.HoursWorked,
		BaseSalary:     r.BaseSalary,
		HourBonus:      r.HourBonus,
		DeliveryBonus:  r.DeliveryBonus,
		GrossSalary:    r.GrossSalary,
		ISR:            r.ISR,
		FoodVouchers:   r.FoodVouchers,
		NetSalary:      r.NetSalary,
		Active:         r.Active,
		CreatedBy:      r.CreatedBy,
		UpdatedBy:      r.UpdatedBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// MonthBucketResponse is one of the twelve fixed month buckets. Months with
// no records still appear, with an empty slice and zero total.
type MonthBucketResponse struct {
	Month    string                  `json:"month"`
	Payrolls []PayrollRecordResponse `json:"payrolls"`
	TotalNet decimal.Decimal         `json:"total_net"`
}
