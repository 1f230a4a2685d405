package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nominamx/payroll-backend-go/internal/domain/role"
	"github.com/nominamx/payroll-backend-go/internal/pkg/database"
)

type RoleRepository struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &RoleRepository{db: db}
}

const roleColumns = `
	id, name_role, salary_base, bonus_role, bonus_hours, bonus_deliveries,
	is_admin, status_role, created_by, updated_by, created_at, updated_at`

func scanRole(row pgx.Row) (role.Role, error) {
	var ro role.Role
	err := row.Scan(
		&ro.ID,
		&ro.Name,
		&ro.SalaryBase,
		&ro.BonusRole,
		&ro.BonusHours,
		&ro.BonusDeliveries,
		&ro.IsAdmin,
		&ro.Active,
		&ro.CreatedBy,
		&ro.UpdatedBy,
		&ro.CreatedAt,
		&ro.UpdatedAt,
	)
	return ro, err
}

func (r *RoleRepository) GetActiveByID(ctx context.Context, id string) (role.Role, error) {
	query := `SELECT` + roleColumns + `
		FROM roles
		WHERE id = $1 AND status_role = true`

	ro, err := scanRole(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, fmt.Errorf("failed to get role: %w", err)
	}

	return ro, nil
}

func (r *RoleRepository) ListActive(ctx context.Context) ([]role.Role, error) {
	query := `SELECT` + roleColumns + `
		FROM roles
		WHERE status_role = true
		ORDER BY name_role`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	roles := make([]role.Role, 0)
	for rows.Next() {
		ro, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, ro)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roles: %w", err)
	}

	return roles, nil
}
