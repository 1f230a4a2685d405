package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nominamx/payroll-backend-go/internal/domain/payroll"
	"github.com/nominamx/payroll-backend-go/internal/pkg/database"
	"github.com/nominamx/payroll-backend-go/internal/pkg/period"
)

type PayrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &PayrollRepository{db: db}
}

// uk_payroll_employee_period is a partial unique index on
// (employee_id, month, year) WHERE status_payroll, so soft-deleted records
// never block a new one.
const uniquePeriodConstraint = "uk_payroll_employee_period"

func isDuplicatePeriod(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == uniquePeriodConstraint
	}
	return false
}

const payrollColumns = `
	p.id, p.employee_id, p.month, p.year, p.deliveries, p.hours_worked,
	p.base_salary, p.role_bonus, p.delivery_rate, p.hour_bonus, p.delivery_bonus,
	p.gross_salary, p.isr, p.food_vouchers, p.net_salary,
	p.status_payroll, p.created_by, p.updated_by, p.created_at, p.updated_at,
	e.employee_number, e.name_employee, r.name_role`

const payrollJoins = `
	FROM payroll_records p
	JOIN employees e ON e.id = p.employee_id
	JOIN roles r ON r.id = e.role_id`

func scanPayroll(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Month,
		&rec.Year,
		&rec.Deliveries,
		&rec.HoursWorked,
		&rec.BaseSalary,
		&rec.RoleBonus,
		&rec.DeliveryRate,
		&rec.HourBonus,
		&rec.DeliveryBonus,
		&rec.GrossSalary,
		&rec.ISR,
		&rec.FoodVouchers,
		&rec.NetSalary,
		&rec.Active,
		&rec.CreatedBy,
		&rec.UpdatedBy,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.EmployeeNumber,
		&rec.EmployeeName,
		&rec.RoleName,
	)
	return rec, err
}

func (r *PayrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	query := `
		INSERT INTO payroll_records (
			id, employee_id, month, year, deliveries, hours_worked,
			base_salary, role_bonus, delivery_rate, hour_bonus, delivery_bonus,
			gross_salary, isr, food_vouchers, net_salary,
			status_payroll, created_by, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15,
			true, $16, $17
		)
		RETURNING id, created_at`

	record.ID = uuid.NewString()
	record.Active = true
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Month,
		record.Year,
		record.Deliveries,
		record.HoursWorked,
		record.BaseSalary,
		record.RoleBonus,
		record.DeliveryRate,
		record.HourBonus,
		record.DeliveryBonus,
		record.GrossSalary,
		record.ISR,
		record.FoodVouchers,
		record.NetSalary,
		record.CreatedBy,
		time.Now(),
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		if isDuplicatePeriod(err) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

func (r *PayrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	query := `SELECT` + payrollColumns + payrollJoins + `
		WHERE p.id = $1`

	rec, err := scanPayroll(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *PayrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, error) {
	query := `SELECT` + payrollColumns + payrollJoins + `
		WHERE 1=1`

	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND p.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Month != nil {
		query += fmt.Sprintf(" AND p.month = $%d", argPos)
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND p.year = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}
	if filter.Active != nil {
		query += fmt.Sprintf(" AND p.status_payroll = $%d", argPos)
		args = append(args, *filter.Active)
		argPos++
	}

	query += fmt.Sprintf(
		" ORDER BY p.year, array_position($%d::text[], p.month), e.employee_number", argPos)
	args = append(args, period.Months[:])

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	records := make([]payroll.PayrollRecord, 0)
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, nil
}

func (r *PayrollRepository) UpdateDerived(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	query := `
		UPDATE payroll_records SET
			deliveries = $2,
			hour_bonus = $3,
			delivery_bonus = $4,
			gross_salary = $5,
			isr = $6,
			food_vouchers = $7,
			net_salary = $8,
			updated_by = $9,
			updated_at = $10
		WHERE id = $1 AND status_payroll = true
		RETURNING updated_at`

	now := time.Now()
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		record.ID,
		record.Deliveries,
		record.HourBonus,
		record.DeliveryBonus,
		record.GrossSalary,
		record.ISR,
		record.FoodVouchers,
		record.NetSalary,
		record.UpdatedBy,
		now,
	).Scan(&record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return record, nil
}

func (r *PayrollRepository) SetActive(ctx context.Context, id string, active bool, actor string) error {
	query := `
		UPDATE payroll_records SET
			status_payroll = $2,
			updated_by = $3,
			updated_at = $4
		WHERE id = $1
		RETURNING id`

	var returned string
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, id, active, actor, time.Now()).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrPayrollRecordNotFound
		}
		if isDuplicatePeriod(err) {
			return payroll.ErrPayrollRecordAlreadyExists
		}
		return fmt.Errorf("failed to set payroll record status: %w", err)
	}

	return nil
}

// Restore flips status_payroll back on and reads the record with its joined
// fields in one transaction, so the response cannot observe a concurrent
// mutation between the two statements.
func (r *PayrollRepository) Restore(ctx context.Context, id, actor string) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		if err := r.SetActive(txCtx, id, true, actor); err != nil {
			return err
		}
		var err error
		rec, err = r.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

func (r *PayrollRepository) MissingEmployeeNumbers(ctx context.Context, month string, year int) ([]string, error) {
	query := `
		SELECT e.employee_number
		FROM employees e
		JOIN roles r ON r.id = e.role_id
		WHERE e.status_employee = true
		  AND r.is_admin = false
		  AND NOT EXISTS (
			SELECT 1 FROM payroll_records p
			WHERE p.employee_id = e.id
			  AND p.month = $1 AND p.year = $2
			  AND p.status_payroll = true
		  )
		ORDER BY e.employee_number`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query missing employee numbers: %w", err)
	}
	defer rows.Close()

	numbers := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan employee number: %w", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee numbers: %w", err)
	}

	return numbers, nil
}
